package services

import (
	"context"
	"errors"
	"time"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

// TaskStore is implemented by repository.TaskRepository. The owner id is a
// required argument of every method.
type TaskStore interface {
	CreateTask(ctx context.Context, userID string, task *model.Task, tagIDs []string) error
	FindByID(ctx context.Context, userID, id string) (*model.Task, error)
	List(ctx context.Context, userID string, status *constants.TaskStatus) ([]model.Task, error)
	Update(ctx context.Context, userID string, task *model.Task, tagIDs []string) error
	Delete(ctx context.Context, userID, id string) error
}

type NewTask struct {
	Title       string
	Description *string
	Status      constants.TaskStatus
	Priority    constants.TaskPriority
	StartDate   *time.Time
	DueDate     *time.Time
	TagIDs      []string
}

// TaskPatch holds the fields of a partial update. Nil pointers and unset
// optionals leave the stored value alone; a nil TagIDs keeps the tags.
type TaskPatch struct {
	Title       *string
	Description dto.Optional[string]
	Status      *constants.TaskStatus
	Priority    *constants.TaskPriority
	StartDate   dto.Optional[time.Time]
	DueDate     dto.Optional[time.Time]
	TagIDs      []string
}

type TaskService struct {
	repo TaskStore
	now  func() time.Time
}

func NewTaskService(repo TaskStore) *TaskService {
	return &TaskService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, in NewTask) (*model.Task, error) {
	if err := checkDates(in.StartDate, in.DueDate); err != nil {
		return nil, err
	}

	now := s.now()
	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == "" {
		task.Status = constants.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if task.Status == constants.StatusCompleted {
		task.CompletedAt = &now
	}

	if err := s.repo.CreateTask(ctx, userID, task, in.TagIDs); err != nil {
		return nil, translateTaskError(err)
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translateTaskError(err)
	}
	return task, nil
}

// ListTasks filters by status when it names a known status and ignores it otherwise.
func (s *TaskService) ListTasks(ctx context.Context, userID, status string) ([]model.Task, error) {
	var filter *constants.TaskStatus
	if st := constants.TaskStatus(status); st.Valid() {
		filter = &st
	}
	return s.repo.List(ctx, userID, filter)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, id string, patch TaskPatch) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translateTaskError(err)
	}

	now := s.now()
	previous := task.Status

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description.Set {
		task.Description = optionalPtr(patch.Description)
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.StartDate.Set {
		task.StartDate = optionalPtr(patch.StartDate)
	}
	if patch.DueDate.Set {
		task.DueDate = optionalPtr(patch.DueDate)
	}
	if patch.Status != nil {
		task.Status = *patch.Status
		switch {
		case task.Status == constants.StatusCompleted && previous != constants.StatusCompleted:
			task.CompletedAt = &now
		case task.Status != constants.StatusCompleted:
			task.CompletedAt = nil
		}
	}
	task.UpdatedAt = now

	if err := checkDates(task.StartDate, task.DueDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, userID, task, patch.TagIDs); err != nil {
		return nil, translateTaskError(err)
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return translateTaskError(err)
	}
	return nil
}

func checkDates(start, due *time.Time) error {
	if start != nil && due != nil && !due.After(*start) {
		return apperrors.NewValidationError([]apperrors.FieldError{
			{Field: "dueDate", Message: "Due date must be after start date"},
		})
	}
	return nil
}

func optionalPtr[T any](o dto.Optional[T]) *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

func translateTaskError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		return apperrors.ErrTaskNotFound
	case errors.Is(err, repository.ErrUnknownTag):
		return apperrors.NewValidationError([]apperrors.FieldError{
			{Field: "tagIds", Message: "Unknown tag id"},
		})
	}
	return err
}
