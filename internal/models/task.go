package model

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	UserID      string                 `gorm:"size:36;not null;index" json:"-"`
	Title       string                 `gorm:"size:200;not null" json:"title"`
	Description *string                `gorm:"type:text" json:"description"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	StartDate   *time.Time             `json:"startDate"`
	DueDate     *time.Time             `json:"dueDate"`
	CreatedAt   time.Time              `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	CompletedAt *time.Time             `json:"completedAt"`

	Tags []Tag `gorm:"many2many:task_tags;constraint:OnDelete:CASCADE" json:"tags"`
}

// TaskTag is a row of the task_tags join table that gorm creates for Task.Tags.
type TaskTag struct {
	TaskID string `gorm:"primaryKey;size:36"`
	TagID  string `gorm:"primaryKey;size:36"`
}

func (TaskTag) TableName() string {
	return "task_tags"
}
