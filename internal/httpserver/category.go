package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/logging"
	"github.com/greenmart/pos/internal/service"
	"github.com/greenmart/pos/internal/transport"
	"github.com/greenmart/pos/internal/util"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	items, err := h.Svc.GetCategories(ctx)
	if err != nil {
		l.Error("get_categories_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list categories")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cat, err := h.Svc.CreateCategory(ctx, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_category_error", "status", 400, "reason", "missing name")
			return echo.NewHTTPError(http.StatusBadRequest, "Missing category name")
		}
		if errors.Is(err, service.ErrConflict) {
			l.Warn("create_category_error", "status", 400, "reason", "duplicate name")
			return echo.NewHTTPError(http.StatusBadRequest, "Category already exists")
		}
		l.Error("create_category_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create category")
	}

	l.Info("create_category_success", "category_id", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update_category")

	id, err := util.ParseUint(c.Param("id"))
	if err != nil {
		l.Warn("update_category_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not an integer")
	}

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cat, err := h.Svc.RenameCategory(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_category_error", "status", 404, "reason", "category not found")
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_category_error", "status", 400, "reason", "missing name")
			return echo.NewHTTPError(http.StatusBadRequest, "Missing category name")
		}
		l.Error("update_category_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update category")
	}

	l.Info("update_category_success", "category_id", cat.ID)
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	id, err := util.ParseUint(c.Param("id"))
	if err != nil {
		l.Warn("delete_category_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not an integer")
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_category_error", "status", 404, "reason", "category not found")
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		l.Error("delete_category_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete category")
	}

	l.Info("delete_category_success", "category_id", id)
	return c.JSON(http.StatusOK, map[string]string{"msg": "Category deleted successfully"})
}
