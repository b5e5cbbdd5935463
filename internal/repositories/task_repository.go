package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUnknownTag   = errors.New("unknown tag id")
)

// TaskRepository stores tasks. Every method takes the owner id and never
// reads or writes rows owned by anybody else.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, userID string, task *model.Task, tagIDs []string) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.UserID = userID
	task.Tags = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(task).Error; err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		return insertTaskTags(tx, task.ID, tagIDs)
	})
	if err != nil {
		return err
	}

	return r.loadTags(ctx, task)
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Tags", orderTagsByName).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}

	normalizeTags(&task)
	return &task, nil
}

// List returns the owner's tasks newest first. A nil status lists all of them.
func (r *TaskRepository) List(ctx context.Context, userID string, status *constants.TaskStatus) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Tags", orderTagsByName).
		Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	tasks := make([]model.Task, 0)
	if err := query.Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	for i := range tasks {
		normalizeTags(&tasks[i])
	}
	return tasks, nil
}

// Update writes every column of task. When tagIDs is not nil the task's
// associations are replaced by exactly that set.
func (r *TaskRepository) Update(ctx context.Context, userID string, task *model.Task, tagIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ? AND user_id = ?", task.ID, userID).
			Updates(map[string]interface{}{
				"title":        task.Title,
				"description":  task.Description,
				"status":       task.Status,
				"priority":     task.Priority,
				"start_date":   task.StartDate,
				"due_date":     task.DueDate,
				"updated_at":   task.UpdatedAt,
				"completed_at": task.CompletedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("updating task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTaskNotFound
		}

		if tagIDs == nil {
			return nil
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.TaskTag{}).Error; err != nil {
			return fmt.Errorf("clearing task tags: %w", err)
		}
		return insertTaskTags(tx, task.ID, tagIDs)
	})
	if err != nil {
		return err
	}

	return r.loadTags(ctx, task)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&model.Task{}).Select("id").Where("id = ? AND user_id = ?", id, userID)
		if err := tx.Where("task_id IN (?)", owned).Delete(&model.TaskTag{}).Error; err != nil {
			return fmt.Errorf("deleting task tags: %w", err)
		}

		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Task{})
		if res.Error != nil {
			return fmt.Errorf("deleting task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

func (r *TaskRepository) loadTags(ctx context.Context, task *model.Task) error {
	var tags []model.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN task_tags ON task_tags.tag_id = tags.id").
		Where("task_tags.task_id = ?", task.ID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return fmt.Errorf("loading task tags: %w", err)
	}

	task.Tags = tags
	normalizeTags(task)
	return nil
}

func insertTaskTags(tx *gorm.DB, taskID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	unique := make([]string, 0, len(tagIDs))
	seen := make(map[string]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, dup := seen[tagID]; dup {
			continue
		}
		seen[tagID] = struct{}{}
		unique = append(unique, tagID)
	}

	// TODO: restrict to the task owner's tags once cross-user tagging is ruled out.
	var found int64
	if err := tx.Model(&model.Tag{}).Where("id IN ?", unique).Count(&found).Error; err != nil {
		return fmt.Errorf("checking tags: %w", err)
	}
	if int(found) != len(unique) {
		return ErrUnknownTag
	}

	rows := make([]model.TaskTag, 0, len(unique))
	for _, tagID := range unique {
		rows = append(rows, model.TaskTag{TaskID: taskID, TagID: tagID})
	}

	if err := tx.Create(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUnknownTag
		}
		return fmt.Errorf("attaching tags: %w", err)
	}
	return nil
}

func orderTagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name")
}

func normalizeTags(task *model.Task) {
	if task.Tags == nil {
		task.Tags = []model.Tag{}
	}
}
