package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/services"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	authService *services.AuthService
	taskService *services.TaskService
	tagService  *services.TagService
	cookie      CookieConfig
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	tagService *services.TagService,
	cookie CookieConfig,
) *Handler {
	if cookie.Name == "" {
		cookie.Name = constants.AuthCookieName
	}

	return &Handler{
		authService: authService,
		taskService: taskService,
		tagService:  tagService,
		cookie:      cookie,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func bindJSON(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func (h *Handler) identityCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
	}
}

func (h *Handler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	}
}
