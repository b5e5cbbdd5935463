package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

type stubAuthenticator struct {
	users map[string]*model.User
	err   error
	calls int
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*model.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[token]
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func runAuth(t *testing.T, authenticator Authenticator, cookie *http.Cookie) (*model.User, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen *model.User
	h := RequireAuth(authenticator, "auth-token")(func(c echo.Context) error {
		seen = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	return seen, err
}

func TestRequireAuth_StoresResolvedUser(t *testing.T) {
	alice := &model.User{ID: "u-1", Email: "a@x.com"}
	authenticator := &stubAuthenticator{users: map[string]*model.User{"good": alice}}

	user, err := runAuth(t, authenticator, &http.Cookie{Name: "auth-token", Value: "good"})
	require.NoError(t, err)
	assert.Same(t, alice, user)
	assert.Equal(t, 1, authenticator.calls)
}

func TestRequireAuth_RejectsMissingCookie(t *testing.T) {
	authenticator := &stubAuthenticator{}

	for _, cookie := range []*http.Cookie{
		nil,
		{Name: "auth-token", Value: ""},
		{Name: "other", Value: "good"},
	} {
		user, err := runAuth(t, authenticator, cookie)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Nil(t, user)
	}
	assert.Zero(t, authenticator.calls, "no lookup without a cookie")
}

func TestRequireAuth_PropagatesAuthenticatorError(t *testing.T) {
	user, err := runAuth(t, &stubAuthenticator{}, &http.Cookie{Name: "auth-token", Value: "unknown"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Nil(t, user)

	storeErr := errors.New("db down")
	_, err = runAuth(t, &stubAuthenticator{err: storeErr}, &http.Cookie{Name: "auth-token", Value: "x"})
	assert.ErrorIs(t, err, storeErr)
}

func TestCurrentUser_EmptyContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name    string
		limiter stubLimiter
		wantErr error
	}{
		{name: "allowed", limiter: stubLimiter{allowed: true}},
		{name: "over limit", limiter: stubLimiter{allowed: false}, wantErr: apperrors.ErrRateLimited},
		{name: "limiter failure fails open", limiter: stubLimiter{err: errors.New("redis down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			err := RateLimiter(tt.limiter)(next)(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
