package validators

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	"task-manager.com/task-manager/internal/services"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (services.NewTask, error) {
	var (
		c  collector
		in services.NewTask
	)

	title := ""
	if r.Title != nil {
		title = *r.Title
	}
	in.Title = c.text("title", "Title", title, constants.TitleMaxLength)

	if r.Description != nil && *r.Description != "" {
		in.Description = description(&c, *r.Description)
	}
	if r.Status != nil {
		in.Status = status(&c, *r.Status)
	}
	if r.Priority != nil {
		in.Priority = priority(&c, *r.Priority)
	}
	if r.StartDate != nil {
		in.StartDate = c.datetime("startDate", *r.StartDate)
	}
	if r.DueDate != nil {
		in.DueDate = c.datetime("dueDate", *r.DueDate)
	}
	dueAfterStart(&c, in.StartDate, in.DueDate)

	in.TagIDs = tagIDs(&c, r.TagIDs)

	return in, c.err()
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) (services.TaskPatch, error) {
	var (
		c     collector
		patch services.TaskPatch
	)

	if r.Title.Set {
		title := c.text("title", "Title", r.Title.Value, constants.TitleMaxLength)
		patch.Title = &title
	}
	if r.Description.Set {
		patch.Description.Set = true
		if r.Description.Null || r.Description.Value == "" {
			patch.Description.Null = true
		} else if d := description(&c, r.Description.Value); d != nil {
			patch.Description.Value = *d
		}
	}
	if r.Status.Set {
		if r.Status.Null {
			c.add("status", "Status must not be null")
		} else {
			s := status(&c, r.Status.Value)
			patch.Status = &s
		}
	}
	if r.Priority.Set {
		if r.Priority.Null {
			c.add("priority", "Priority must not be null")
		} else {
			p := priority(&c, r.Priority.Value)
			patch.Priority = &p
		}
	}
	patch.StartDate = optionalDatetime(&c, "startDate", r.StartDate)
	patch.DueDate = optionalDatetime(&c, "dueDate", r.DueDate)
	if patch.StartDate.Set && patch.DueDate.Set && !patch.StartDate.Null && !patch.DueDate.Null {
		dueAfterStart(&c, &patch.StartDate.Value, &patch.DueDate.Value)
	}

	if r.TagIDs.Set {
		patch.TagIDs = tagIDs(&c, r.TagIDs.Value)
		if patch.TagIDs == nil {
			patch.TagIDs = []string{}
		}
	}

	return patch, c.err()
}

func description(c *collector, value string) *string {
	if utf8.RuneCountInString(value) > constants.DescriptionMaxLength {
		c.add("description", "Description must be at most %d characters", constants.DescriptionMaxLength)
		return nil
	}
	return &value
}

func status(c *collector, value string) constants.TaskStatus {
	s := constants.TaskStatus(value)
	if !s.Valid() {
		c.add("status", "Status must be one of todo, in_progress, completed")
	}
	return s
}

func priority(c *collector, value string) constants.TaskPriority {
	p := constants.TaskPriority(value)
	if !p.Valid() {
		c.add("priority", "Priority must be one of low, medium, high")
	}
	return p
}

func optionalDatetime(c *collector, field string, o dto.Optional[string]) dto.Optional[time.Time] {
	out := dto.Optional[time.Time]{Set: o.Set, Null: o.Null}
	if !o.Set || o.Null {
		return out
	}

	t := c.datetime(field, o.Value)
	if t == nil {
		out.Null = true
		return out
	}
	out.Value = *t
	return out
}

func dueAfterStart(c *collector, start, due *time.Time) {
	if start != nil && due != nil && !due.After(*start) {
		c.add("dueDate", "Due date must be after start date")
	}
}

func tagIDs(c *collector, ids []string) []string {
	if ids == nil {
		return nil
	}

	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if err := uuid.Validate(id); err != nil {
			c.add("tagIds", "Tag id at index %d is not a valid id", i)
			continue
		}
		out = append(out, id)
	}
	return out
}
