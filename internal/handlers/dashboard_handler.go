package handlers

import (
	"errors"
	"net/http"

	"pos_terminal/internal/middleware"
	"pos_terminal/internal/period"
	"pos_terminal/internal/services"
	"pos_terminal/pkg/money"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the PIN-protected owner screens.
type DashboardHandler struct {
	dashboardService   services.DashboardService
	paymentTypeService services.PaymentTypeService
	pinService         services.PinService
	dataService        services.DataService
	views              views
	logger             *zap.Logger
}

func NewDashboardHandler(
	dashboardService services.DashboardService,
	paymentTypeService services.PaymentTypeService,
	pinService services.PinService,
	dataService services.DataService,
	formatter money.Formatter,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		paymentTypeService: paymentTypeService,
		pinService:         pinService,
		dataService:        dataService,
		views:              views{money: formatter},
		logger:             logger,
	}
}

type summaryView struct {
	TotalRevenue        string `json:"total_revenue"`
	TotalRevenueDisplay string `json:"total_revenue_display"`
	TotalQty            int64  `json:"total_qty"`
	TotalTransactions   int64  `json:"total_transactions"`
	AverageOrder        string `json:"average_order"`
	AverageOrderDisplay string `json:"average_order_display"`
}

type topItemView struct {
	ItemID              uint   `json:"item_id"`
	Name                string `json:"name"`
	TotalQty            int64  `json:"total_qty"`
	TotalRevenue        string `json:"total_revenue"`
	TotalRevenueDisplay string `json:"total_revenue_display"`
	BarPercent          string `json:"bar_percent"`
}

type paymentView struct {
	PaymentTypeID *uint  `json:"payment_type_id"`
	Label         string `json:"label"`
	Count         int64  `json:"count"`
	Total         string `json:"total"`
	TotalDisplay  string `json:"total_display"`
	SharePercent  string `json:"share_percent"`
}

type dailyView struct {
	Day            string `json:"day"`
	Revenue        string `json:"revenue"`
	RevenueDisplay string `json:"revenue_display"`
}

type dashboardView struct {
	Period   period.Period `json:"period"`
	Summary  summaryView   `json:"summary"`
	TopItems []topItemView `json:"top_items"`
	Payments []paymentView `json:"payments"`
	Daily    []dailyView   `json:"daily"`
}

func (v views) dashboard(d *services.Dashboard) dashboardView {
	view := dashboardView{
		Period: d.Period,
		Summary: summaryView{
			TotalRevenue:        fixed(d.Summary.TotalRevenue),
			TotalRevenueDisplay: v.money.Format(d.Summary.TotalRevenue),
			TotalQty:            d.Summary.TotalQty,
			TotalTransactions:   d.Summary.TotalTransactions,
			AverageOrder:        fixed(d.AverageOrder),
			AverageOrderDisplay: v.money.Format(d.AverageOrder),
		},
		TopItems: make([]topItemView, 0, len(d.TopItems)),
		Payments: make([]paymentView, 0, len(d.Payments)),
		Daily:    make([]dailyView, 0, len(d.Daily)),
	}

	for _, item := range d.TopItems {
		view.TopItems = append(view.TopItems, topItemView{
			ItemID:              item.ItemID,
			Name:                item.Name,
			TotalQty:            item.TotalQty,
			TotalRevenue:        fixed(item.TotalRevenue),
			TotalRevenueDisplay: v.money.Format(item.TotalRevenue),
			BarPercent:          item.BarPercent.StringFixed(1),
		})
	}
	for _, p := range d.Payments {
		view.Payments = append(view.Payments, paymentView{
			PaymentTypeID: p.PaymentTypeID,
			Label:         p.Label,
			Count:         p.Count,
			Total:         fixed(p.Total),
			TotalDisplay:  v.money.Format(p.Total),
			SharePercent:  p.SharePercent.StringFixed(1),
		})
	}
	for _, day := range d.Daily {
		view.Daily = append(view.Daily, dailyView{
			Day:            day.Day,
			Revenue:        fixed(day.Revenue),
			RevenueDisplay: v.money.Format(day.Revenue),
		})
	}
	return view
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	p, err := period.Parse(c.Query("period"), period.Today)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	dashboard, err := h.dashboardService.Get(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.views.dashboard(dashboard))
}

func (h *DashboardHandler) CreatePaymentType(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	paymentType, err := h.paymentTypeService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, paymentType)
}

func (h *DashboardHandler) DeletePaymentType(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "Invalid payment type ID")
		return
	}

	if err := h.paymentTypeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "deleted"})
}

func (h *DashboardHandler) ResetData(c *gin.Context) {
	if err := h.dataService.ClearAllData(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// PIN endpoints
func (h *DashboardHandler) PinStatus(c *gin.Context) {
	set, err := h.pinService.IsSet(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pin_set": set})
}

func (h *DashboardHandler) Unlock(c *gin.Context) {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	if err := h.pinService.Verify(c.Request.Context(), req.Pin); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unlocked": true})
}

func (h *DashboardHandler) SetPin(c *gin.Context) {
	var req struct {
		Pin        string `json:"pin"`
		CurrentPin string `json:"current_pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	if err := h.pinService.Set(c.Request.Context(), req.Pin, req.CurrentPin); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pin_set": true})
}

func (h *DashboardHandler) RemovePin(c *gin.Context) {
	err := h.pinService.Remove(c.Request.Context(), c.GetHeader(middleware.PinHeader))
	if errors.Is(err, services.ErrIncorrectPin) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Dashboard PIN required"})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pin_set": false})
}
