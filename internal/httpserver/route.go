package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenmart/pos/internal/auth"
)

type Deps struct {
	Products   *ProductHTTP
	Categories *CategoryHTTP
	Orders     *OrderHTTP
	Registers  *RegisterHTTP
	Images     *ImageHTTP
	Auth       *AuthHTTP
	AuthMW     *auth.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/register", d.Auth.RegisterUser)

	products := api.Group("/products")
	products.GET("", d.Products.GetProducts)
	products.GET("/search", d.Products.SearchProducts)
	products.GET("/:id", d.Products.GetProduct)

	adminProducts := products.Group("", d.AuthMW.RequireAdmin)
	adminProducts.POST("", d.Products.CreateProduct)
	adminProducts.PUT("/:id", d.Products.UpdateProduct)
	adminProducts.DELETE("/:id", d.Products.DeleteProduct)

	categories := api.Group("/categories")
	categories.GET("", d.Categories.GetCategories)

	adminCategories := categories.Group("", d.AuthMW.RequireAdmin)
	adminCategories.POST("", d.Categories.CreateCategory)
	adminCategories.PUT("/:id", d.Categories.UpdateCategory)
	adminCategories.DELETE("/:id", d.Categories.DeleteCategory)

	api.POST("/orders", d.Orders.CreateOrder)

	api.POST("/generate-image", d.Images.GenerateImage, d.AuthMW.RequireAdmin)

	registers := api.Group("/registers")
	registers.POST("", d.Registers.OpenSession)
	registers.GET("/:id", d.Registers.GetSession)
	registers.DELETE("/:id", d.Registers.CloseSession)
	registers.GET("/:id/catalog", d.Registers.BrowseCatalog)
	registers.POST("/:id/items", d.Registers.AddItem)
	registers.PUT("/:id/items/:productID", d.Registers.SetQuantity)
	registers.DELETE("/:id/items/:productID", d.Registers.RemoveItem)
	registers.DELETE("/:id/items", d.Registers.ClearItems)
	registers.POST("/:id/checkout", d.Registers.Checkout)
}
