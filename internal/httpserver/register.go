package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/catalogview"
	"github.com/greenmart/pos/internal/checkout"
	"github.com/greenmart/pos/internal/logging"
	"github.com/greenmart/pos/internal/register"
	"github.com/greenmart/pos/internal/service"
	"github.com/greenmart/pos/internal/transport"
	"github.com/greenmart/pos/internal/util"
)

// RegisterHTTP drives the open tickets. It leans on the catalog service for
// product snapshots and on the order service at checkout.
type RegisterHTTP struct {
	Store   *register.Store
	Catalog *service.CatalogService
	Orders  *service.OrderService
}

func (h *RegisterHTTP) session(c echo.Context) (*register.Session, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}
	s, ok := h.Store.Get(id)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "register session not found")
	}
	return s, nil
}

func (h *RegisterHTTP) OpenSession(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "register.open_session")

	s := h.Store.Open()
	l.Info("session_opened", "session_id", s.ID)
	return c.JSON(http.StatusCreated, s.Snapshot())
}

func (h *RegisterHTTP) GetSession(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *RegisterHTTP) CloseSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}
	if !h.Store.Close(id) {
		return echo.NewHTTPError(http.StatusNotFound, "register session not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// BrowseCatalog returns the filtered product grid plus the category pills for
// this terminal's current view.
func (h *RegisterHTTP) BrowseCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "register.catalog")

	if _, err := h.session(c); err != nil {
		return err
	}

	products, err := h.Catalog.GetProducts(ctx)
	if err != nil {
		l.Error("catalog_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	category := c.QueryParam("category")
	query := c.QueryParam("q")

	return c.JSON(http.StatusOK, map[string]any{
		"products":   catalogview.Filter(products, category, query),
		"categories": catalogview.Categories(products),
	})
}

func (h *RegisterHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "register.add_item")

	s, err := h.session(c)
	if err != nil {
		return err
	}

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil || req.ProductID == 0 {
		l.Warn("add_item_error", "status", 400, "reason", "missing product_id")
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	prod, err := h.Catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("add_item_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		l.Error("add_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add item")
	}

	s.AddProduct(*prod)
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *RegisterHTTP) SetQuantity(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "register.set_quantity")

	s, err := h.session(c)
	if err != nil {
		return err
	}

	productID, err := util.ParseUint(c.Param("productID"))
	if err != nil {
		l.Warn("set_quantity_error", "status", 400, "reason", "product id not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "product id not an integer")
	}

	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	s.SetQuantity(productID, req.Quantity)
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *RegisterHTTP) RemoveItem(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}

	productID, err := util.ParseUint(c.Param("productID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product id not an integer")
	}

	s.RemoveProduct(productID)
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *RegisterHTTP) ClearItems(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}

	s.Clear()
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *RegisterHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "register.checkout")

	s, err := h.session(c)
	if err != nil {
		return err
	}

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	method, err := checkout.ParseMethod(req.PaymentMethod)
	if err != nil {
		l.Warn("checkout_error", "status", 400, "reason", "unknown payment method")
		return echo.NewHTTPError(http.StatusBadRequest, "unknown payment method")
	}

	tender := checkout.Tender{
		Method:       method,
		CashReceived: checkout.ParseCash(req.CashReceived),
	}

	result, err := s.Checkout(ctx, tender, h.Orders)
	if err != nil {
		switch {
		case errors.Is(err, register.ErrEmptyTicket):
			l.Warn("checkout_error", "status", 400, "reason", "empty ticket")
			return echo.NewHTTPError(http.StatusBadRequest, "ticket is empty")
		case errors.Is(err, register.ErrInvalidTender):
			l.Warn("checkout_error", "status", 400, "reason", "tender below total")
			return echo.NewHTTPError(http.StatusBadRequest, "tender does not cover the total")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("checkout_error", "status", 404, "reason", err.Error())
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("checkout_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("checkout_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot process payment")
		}
	}

	l.Info("checkout_success", "session_id", s.ID, "order_id", result.Order.ID, "change", result.Change)
	return c.JSON(http.StatusCreated, result)
}
