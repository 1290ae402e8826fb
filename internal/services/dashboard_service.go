package services

import (
	"context"
	"fmt"

	"pos_terminal/internal/models"
	"pos_terminal/internal/period"
	"pos_terminal/internal/repository"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RankedItem is a top seller with its revenue relative to the best seller.
type RankedItem struct {
	models.TopItem
	BarPercent decimal.Decimal `json:"bar_percent"`
}

// PaymentShare is a payment type bucket with its share of total revenue.
type PaymentShare struct {
	models.PaymentBreakdown
	Label        string          `json:"label"`
	SharePercent decimal.Decimal `json:"share_percent"`
}

type Dashboard struct {
	Period       period.Period         `json:"period"`
	Range        models.DateRange      `json:"range"`
	Summary      models.SalesSummary   `json:"summary"`
	AverageOrder decimal.Decimal       `json:"average_order"`
	TopItems     []RankedItem          `json:"top_items"`
	Payments     []PaymentShare        `json:"payments"`
	Daily        []models.DailyRevenue `json:"daily"`
}

type DashboardService interface {
	Get(ctx context.Context, p period.Period) (*Dashboard, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	clock         period.Clock
	topItemsLimit int
}

func NewDashboardService(dashboardRepo repository.DashboardRepository, clock period.Clock, topItemsLimit int) DashboardService {
	if topItemsLimit <= 0 {
		topItemsLimit = 8
	}
	return &dashboardService{dashboardRepo: dashboardRepo, clock: clock, topItemsLimit: topItemsLimit}
}

func (s *dashboardService) Get(ctx context.Context, p period.Period) (*Dashboard, error) {
	dateRange := p.Range(s.clock.Now())

	summary, err := s.dashboardRepo.Summary(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales summary: %w", err)
	}

	topItems, err := s.dashboardRepo.TopItems(ctx, dateRange, s.topItemsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top items: %w", err)
	}

	breakdown, err := s.dashboardRepo.PaymentBreakdown(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment breakdown: %w", err)
	}

	daily, err := s.dashboardRepo.DailyRevenue(ctx, dateRange, s.clock.Location())
	if err != nil {
		return nil, fmt.Errorf("failed to load daily revenue: %w", err)
	}
	if daily == nil {
		daily = []models.DailyRevenue{}
	}

	dashboard := &Dashboard{
		Period:       p,
		Range:        dateRange,
		Summary:      *summary,
		AverageOrder: decimal.Zero,
		TopItems:     make([]RankedItem, 0, len(topItems)),
		Payments:     make([]PaymentShare, 0, len(breakdown)),
		Daily:        daily,
	}
	if summary.TotalTransactions > 0 {
		dashboard.AverageOrder = summary.TotalRevenue.
			Div(decimal.NewFromInt(summary.TotalTransactions)).
			Round(2)
	}

	for _, item := range topItems {
		dashboard.TopItems = append(dashboard.TopItems, RankedItem{
			TopItem:    item,
			BarPercent: percent(item.TotalRevenue, topItems[0].TotalRevenue),
		})
	}

	for _, row := range breakdown {
		dashboard.Payments = append(dashboard.Payments, PaymentShare{
			PaymentBreakdown: row,
			Label:            row.Label(),
			SharePercent:     percent(row.Total, summary.TotalRevenue),
		})
	}

	return dashboard, nil
}

// percent is part/whole*100 to one decimal place, zero when whole is not positive.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(1)
}
