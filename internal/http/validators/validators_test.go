package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	var exc *apperrors.Exception
	require.ErrorAs(t, err, &exc)
	require.Equal(t, 400, exc.StatusCode)

	out := make([]string, 0, len(exc.Details))
	for _, d := range exc.Details {
		out = append(out, d.Field)
	}
	return out
}

func str(s string) *string {
	return &s
}

func TestValidateRegisterRequest(t *testing.T) {
	ok := &dto.RegisterRequest{Email: "a@x.com", Password: "pw12345678", FullName: "  Alice  "}
	require.NoError(t, ValidateRegisterRequest(ok))
	assert.Equal(t, "Alice", ok.FullName)

	bad := &dto.RegisterRequest{Email: "not-an-email", Password: "short", FullName: " "}
	assert.ElementsMatch(t, []string{"email", "password", "fullName"}, fields(t, ValidateRegisterRequest(bad)))

	long := &dto.RegisterRequest{Email: "a@x.com", Password: strings.Repeat("p", 73), FullName: "A"}
	assert.Equal(t, []string{"password"}, fields(t, ValidateRegisterRequest(long)))

	named := &dto.RegisterRequest{Email: "Alice <a@x.com>", Password: "pw12345678", FullName: "A"}
	assert.Equal(t, []string{"email"}, fields(t, ValidateRegisterRequest(named)))
}

func TestValidateLoginRequest(t *testing.T) {
	require.NoError(t, ValidateLoginRequest(&dto.LoginRequest{Email: "a@x.com", Password: "x"}))
	assert.ElementsMatch(t, []string{"email", "password"}, fields(t, ValidateLoginRequest(&dto.LoginRequest{})))
}

func TestValidateCreateTaskRequest_Valid(t *testing.T) {
	tagID := uuid.NewString()
	in, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:     str(" T1 "),
		StartDate: str("2025-01-01T00:00:00Z"),
		DueDate:   str("2025-01-02T00:00:00+02:00"),
		TagIDs:    []string{tagID},
	})
	require.NoError(t, err)

	assert.Equal(t, "T1", in.Title)
	assert.Equal(t, constants.TaskStatus(""), in.Status, "defaults are applied by the service")
	require.NotNil(t, in.DueDate)
	assert.Equal(t, time.Date(2025, 1, 1, 22, 0, 0, 0, time.UTC), *in.DueDate)
	assert.Equal(t, []string{tagID}, in.TagIDs)
}

func TestValidateCreateTaskRequest_ReportsEveryField(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:       str(strings.Repeat("x", 201)),
		Description: str(strings.Repeat("d", 2001)),
		Status:      str("done"),
		Priority:    str("urgent"),
		StartDate:   str("yesterday"),
		TagIDs:      []string{"nope"},
	})

	assert.ElementsMatch(t,
		[]string{"title", "description", "status", "priority", "startDate", "tagIds"},
		fields(t, err),
	)
}

func TestValidateCreateTaskRequest_DueNotAfterStart(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:     str("T1"),
		StartDate: str("2025-01-02T00:00:00Z"),
		DueDate:   str("2025-01-02T00:00:00Z"),
	})
	assert.Equal(t, []string{"dueDate"}, fields(t, err))

	_, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{})
	assert.Equal(t, []string{"title"}, fields(t, err))
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	patch, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{
		Status:      dto.Optional[string]{Set: true, Value: "completed"},
		Description: dto.Optional[string]{Set: true, Null: true},
		DueDate:     dto.Optional[string]{Set: true, Value: "2025-01-02T00:00:00Z"},
		TagIDs:      dto.Optional[[]string]{Set: true, Null: true},
	})
	require.NoError(t, err)

	require.NotNil(t, patch.Status)
	assert.Equal(t, constants.StatusCompleted, *patch.Status)
	assert.Nil(t, patch.Title)
	assert.True(t, patch.Description.Set)
	assert.True(t, patch.Description.Null)
	assert.False(t, patch.StartDate.Set)
	assert.True(t, patch.DueDate.Set)
	assert.NotNil(t, patch.TagIDs)
	assert.Empty(t, patch.TagIDs)

	_, err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{
		Title:     dto.Optional[string]{Set: true, Value: ""},
		Status:    dto.Optional[string]{Set: true, Null: true},
		StartDate: dto.Optional[string]{Set: true, Value: "2025-01-03T00:00:00Z"},
		DueDate:   dto.Optional[string]{Set: true, Value: "2025-01-02T00:00:00Z"},
	})
	assert.ElementsMatch(t, []string{"title", "status", "dueDate"}, fields(t, err))
}

func TestValidateCreateTagRequest(t *testing.T) {
	req := &dto.CreateTagRequest{Name: "  Work ", Color: str("#FF5733")}
	require.NoError(t, ValidateCreateTagRequest(req))
	assert.Equal(t, "Work", req.Name)

	empty := &dto.CreateTagRequest{Name: "Home", Color: str("")}
	require.NoError(t, ValidateCreateTagRequest(empty))
	assert.Nil(t, empty.Color)

	bad := &dto.CreateTagRequest{Name: "   ", Color: str("red")}
	assert.ElementsMatch(t, []string{"name", "color"}, fields(t, ValidateCreateTagRequest(bad)))

	long := &dto.CreateTagRequest{Name: strings.Repeat("n", 31)}
	assert.Equal(t, []string{"name"}, fields(t, ValidateCreateTagRequest(long)))
}
