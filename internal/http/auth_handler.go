package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/http/validators"
	model "task-manager.com/task-manager/internal/models"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return err
	}

	resp := userResponse(user)
	resp.CreatedAt = user.CreatedAt.Format(time.RFC3339)

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		User:    resp,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.identityCookie(token, h.authService.TokenTTL()))

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    userResponse(user),
	})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.expiredCookie())
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.AuthResponse{User: userResponse(middleware.CurrentUser(c))})
}

func (h *Handler) DeleteMe(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if err := h.authService.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return err
	}

	c.SetCookie(h.expiredCookie())
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

func userResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
