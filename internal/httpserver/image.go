package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenmart/pos/internal/imagegen"
	"github.com/greenmart/pos/internal/logging"
	"github.com/greenmart/pos/internal/transport"
)

type ImageHTTP struct {
	Finder *imagegen.Finder
}

// GenerateImage resolves an image URL for a product name. Scrape failures
// still answer 200 with a placeholder so the admin form never blocks on it.
func (h *ImageHTTP) GenerateImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.generate_image")

	var req transport.GenerateImageRequest
	if err := c.Bind(&req); err != nil || req.ProductName == "" {
		l.Warn("generate_image_error", "status", 400, "reason", "missing product_name")
		return echo.NewHTTPError(http.StatusBadRequest, "Missing product_name")
	}

	url, err := h.Finder.FindImage(ctx, req.ProductName)
	if err != nil {
		l.Warn("generate_image_fallback", "product_name", req.ProductName, "error", err)
		return c.JSON(http.StatusOK, transport.GenerateImageResponse{
			ImageURL: url,
			Msg:      "image lookup failed, placeholder returned",
		})
	}

	return c.JSON(http.StatusOK, transport.GenerateImageResponse{ImageURL: url})
}
