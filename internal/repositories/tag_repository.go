package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
)

var ErrTagNotFound = errors.New("tag not found")

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, userID, name string, color *string) (*model.Tag, error) {
	tag := &model.Tag{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) List(ctx context.Context, userID string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&model.Tag{}).Select("id").Where("id = ? AND user_id = ?", id, userID)
		if err := tx.Where("tag_id IN (?)", owned).Delete(&model.TaskTag{}).Error; err != nil {
			return fmt.Errorf("deleting tag associations: %w", err)
		}

		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Tag{})
		if res.Error != nil {
			return fmt.Errorf("deleting tag: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTagNotFound
		}
		return nil
	})
}
