package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"task-manager.com/task-manager/internal/auth"
	"task-manager.com/task-manager/internal/constants"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
)

const (
	seedEmail    = "admin@example.com"
	seedPassword = "password123"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo user with sample tags and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
		if err != nil {
			return err
		}

		authService, err := services.NewAuthService(repository.NewUserRepository(db), auth.NewPasswordHasher(cfg.BcryptCost), tokens)
		if err != nil {
			return err
		}

		return seed(
			cmd.Context(),
			authService,
			services.NewTaskService(repository.NewTaskRepository(db)),
			services.NewTagService(repository.NewTagRepository(db)),
		)
	},
}

func seed(ctx context.Context, authService *services.AuthService, taskService *services.TaskService, tagService *services.TagService) error {
	user, err := authService.Register(ctx, seedEmail, seedPassword, "Admin User")
	if err != nil {
		return fmt.Errorf("seeding user: %w", err)
	}

	tagIDs := make(map[string]string)
	for _, t := range []struct{ name, color string }{
		{"Work", "#FF5733"},
		{"Personal", "#33FF57"},
		{"Urgent", "#3357FF"},
	} {
		color := t.color
		tag, err := tagService.CreateTag(ctx, user.ID, t.name, &color)
		if err != nil {
			return fmt.Errorf("seeding tag %s: %w", t.name, err)
		}
		tagIDs[t.name] = tag.ID
	}

	tasks := []services.NewTask{
		{
			Title:       "Complete project proposal",
			Description: strPtr("Write and finalize the Q4 project proposal document."),
			Status:      constants.StatusInProgress,
			Priority:    constants.PriorityHigh,
			DueDate:     datePtr(2025, time.December, 15),
			TagIDs:      []string{tagIDs["Work"], tagIDs["Urgent"]},
		},
		{
			Title:       "Buy groceries",
			Description: strPtr("Pick up milk, bread, and vegetables from the store."),
			Status:      constants.StatusTodo,
			Priority:    constants.PriorityMedium,
			DueDate:     datePtr(2025, time.December, 10),
			TagIDs:      []string{tagIDs["Personal"]},
		},
		{
			Title:       "Schedule dentist appointment",
			Description: strPtr("Call the dentist office to book a check-up."),
			Status:      constants.StatusTodo,
			Priority:    constants.PriorityLow,
		},
		{
			Title:       "Review code changes",
			Description: strPtr("Review the pull request for the new feature."),
			Status:      constants.StatusCompleted,
			Priority:    constants.PriorityHigh,
			DueDate:     datePtr(2025, time.December, 5),
			TagIDs:      []string{tagIDs["Work"]},
		},
	}
	for _, in := range tasks {
		if _, err := taskService.CreateTask(ctx, user.ID, in); err != nil {
			return fmt.Errorf("seeding task %q: %w", in.Title, err)
		}
	}

	slog.Info("database seeded", "user_id", user.ID, "email", seedEmail, "tags", len(tagIDs), "tasks", len(tasks))
	return nil
}

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
