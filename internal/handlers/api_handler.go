package handlers

import (
	"net/http"

	"pos_terminal/internal/period"
	"pos_terminal/internal/repository"
	"pos_terminal/internal/services"
	"pos_terminal/pkg/money"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// APIHandler serves the register: catalog, carts, checkout and sales history.
type APIHandler struct {
	catalogService     services.CatalogService
	paymentTypeService services.PaymentTypeService
	cartService        services.CartService
	checkoutService    services.CheckoutService
	transactionService services.TransactionService
	views              views
	logger             *zap.Logger
}

func NewAPIHandler(
	catalogService services.CatalogService,
	paymentTypeService services.PaymentTypeService,
	cartService services.CartService,
	checkoutService services.CheckoutService,
	transactionService services.TransactionService,
	formatter money.Formatter,
	logger *zap.Logger,
) *APIHandler {
	return &APIHandler{
		catalogService:     catalogService,
		paymentTypeService: paymentTypeService,
		cartService:        cartService,
		checkoutService:    checkoutService,
		transactionService: transactionService,
		views:              views{money: formatter},
		logger:             logger,
	}
}

type addItemRequest struct {
	ItemID uint             `json:"item_id" binding:"required"`
	Price  *decimal.Decimal `json:"price" binding:"required"`
	Qty    *int             `json:"qty"`
}

type tenderRequest struct {
	Cash          decimal.Decimal `json:"cash"`
	PaymentTypeID *uint           `json:"payment_type_id"`
}

// Catalog endpoints
func (h *APIHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *APIHandler) ListSubcategories(c *gin.Context) {
	categoryID, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "Invalid category ID")
		return
	}

	subcategories, err := h.catalogService.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (h *APIHandler) ListItems(c *gin.Context) {
	var filter repository.ItemFilter
	var err error

	if filter.CategoryID, err = parseOptionalID(c, "category_id"); err != nil {
		badRequest(c, "Invalid category_id")
		return
	}
	if filter.SubcategoryID, err = parseOptionalID(c, "subcategory_id"); err != nil {
		badRequest(c, "Invalid subcategory_id")
		return
	}

	items, err := h.catalogService.ListItems(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *APIHandler) ListPaymentTypes(c *gin.Context) {
	paymentTypes, err := h.paymentTypeService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, paymentTypes)
}

// Cart endpoints
func (h *APIHandler) CreateCart(c *gin.Context) {
	cartID, cart, err := h.cartService.Create(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, h.views.cart(cartID, cart))
}

func (h *APIHandler) GetCart(c *gin.Context) {
	cartID := c.Param("cart_id")

	cart, err := h.cartService.Get(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.cart(cartID, cart))
}

func (h *APIHandler) DiscardCart(c *gin.Context) {
	cartID := c.Param("cart_id")

	if err := h.cartService.Discard(c.Request.Context(), cartID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_id": cartID, "status": "discarded"})
}

func (h *APIHandler) AddCartItem(c *gin.Context) {
	cartID := c.Param("cart_id")

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cartID, req.ItemID, *req.Price, qty)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.cart(cartID, cart))
}

// RemoveCartItem takes one unit off the item, or every line of it with ?all=true.
func (h *APIHandler) RemoveCartItem(c *gin.Context) {
	cartID := c.Param("cart_id")

	itemID, err := parseID(c, "item_id")
	if err != nil {
		badRequest(c, "Invalid item ID")
		return
	}

	remove := h.cartService.RemoveOne
	if c.Query("all") == "true" {
		remove = h.cartService.RemoveAll
	}

	cart, err := remove(c.Request.Context(), cartID, itemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.cart(cartID, cart))
}

func (h *APIHandler) ClearCart(c *gin.Context) {
	cartID := c.Param("cart_id")

	cart, err := h.cartService.Clear(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.cart(cartID, cart))
}

// Checkout endpoints
func (h *APIHandler) QuoteCart(c *gin.Context) {
	var req tenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	quote, err := h.checkoutService.Quote(c.Request.Context(), c.Param("cart_id"), req.Cash, req.PaymentTypeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.quote(quote))
}

func (h *APIHandler) Checkout(c *gin.Context) {
	var req tenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	receipt, err := h.checkoutService.Charge(c.Request.Context(), c.Param("cart_id"), req.Cash, req.PaymentTypeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, h.views.receipt(receipt))
}

// Transaction endpoints
func (h *APIHandler) ListTransactions(c *gin.Context) {
	p, err := period.Parse(c.Query("period"), period.All)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	records, err := h.transactionService.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.transactions(records))
}

func (h *APIHandler) GetTransaction(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "Invalid transaction ID")
		return
	}

	detail, err := h.transactionService.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.transactionDetail(detail))
}

func (h *APIHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "deleted"})
}
