package model

import "time"

type Tag struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"-"`
	Name      string    `gorm:"size:30;not null" json:"name"`
	Color     *string   `gorm:"size:7" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
