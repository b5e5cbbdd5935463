package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/http/validators"
)

func (h *Handler) ListTags(c echo.Context) error {
	tags, err := h.tagService.ListTags(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tags)
}

func (h *Handler) CreateTag(c echo.Context) error {
	var req dto.CreateTagRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTagRequest(&req); err != nil {
		return err
	}

	tag, err := h.tagService.CreateTag(c.Request().Context(), middleware.CurrentUser(c).ID, req.Name, req.Color)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tag)
}

func (h *Handler) DeleteTag(c echo.Context) error {
	if err := h.tagService.DeleteTag(c.Request().Context(), middleware.CurrentUser(c).ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tag deleted successfully"})
}
