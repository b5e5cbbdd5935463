package services

import (
	"context"
	"errors"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type TagStore interface {
	Create(ctx context.Context, userID, name string, color *string) (*model.Tag, error)
	List(ctx context.Context, userID string) ([]model.Tag, error)
	Delete(ctx context.Context, userID, id string) error
}

type TagService struct {
	repo TagStore
}

func NewTagService(repo TagStore) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) ListTags(ctx context.Context, userID string) ([]model.Tag, error) {
	return s.repo.List(ctx, userID)
}

func (s *TagService) CreateTag(ctx context.Context, userID, name string, color *string) (*model.Tag, error) {
	return s.repo.Create(ctx, userID, name, color)
}

func (s *TagService) DeleteTag(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return apperrors.ErrTagNotFound
		}
		return err
	}
	return nil
}
