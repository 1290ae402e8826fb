package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the register API and, behind pinGate, the dashboard.
func RegisterRoutes(router *gin.Engine, api *APIHandler, dashboard *DashboardHandler, pinGate gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r := router.Group("/api")
	{
		r.GET("/catalog/categories", api.ListCategories)
		r.GET("/catalog/categories/:id/subcategories", api.ListSubcategories)
		r.GET("/catalog/items", api.ListItems)
		r.GET("/payment-types", api.ListPaymentTypes)

		r.POST("/carts", api.CreateCart)
		r.GET("/carts/:cart_id", api.GetCart)
		r.DELETE("/carts/:cart_id", api.DiscardCart)
		r.POST("/carts/:cart_id/items", api.AddCartItem)
		r.DELETE("/carts/:cart_id/items/:item_id", api.RemoveCartItem)
		r.POST("/carts/:cart_id/clear", api.ClearCart)
		r.POST("/carts/:cart_id/quote", api.QuoteCart)
		r.POST("/carts/:cart_id/checkout", api.Checkout)

		r.GET("/transactions", api.ListTransactions)
		r.GET("/transactions/:id", api.GetTransaction)
		r.DELETE("/transactions/:id", api.DeleteTransaction)

		r.GET("/dashboard/pin", dashboard.PinStatus)
		r.POST("/dashboard/unlock", dashboard.Unlock)
	}

	gated := router.Group("/api/dashboard", pinGate)
	{
		gated.GET("", dashboard.GetDashboard)
		gated.POST("/payment-types", dashboard.CreatePaymentType)
		gated.DELETE("/payment-types/:id", dashboard.DeletePaymentType)
		gated.POST("/reset", dashboard.ResetData)
		gated.PUT("/pin", dashboard.SetPin)
		gated.DELETE("/pin", dashboard.RemovePin)
	}
}
