package repository

import (
	"context"
	"pos_terminal/internal/models"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository runs read-only aggregates over transactions.
type DashboardRepository interface {
	Summary(ctx context.Context, r models.DateRange) (*models.SalesSummary, error)
	TopItems(ctx context.Context, r models.DateRange, limit int) ([]models.TopItem, error)
	PaymentBreakdown(ctx context.Context, r models.DateRange) ([]models.PaymentBreakdown, error)
	DailyRevenue(ctx context.Context, r models.DateRange, loc *time.Location) ([]models.DailyRevenue, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Summary(ctx context.Context, dateRange models.DateRange) (*models.SalesSummary, error) {
	var summary models.SalesSummary
	err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select(`COALESCE(SUM(t.total_price), 0) AS total_revenue,
			COALESCE(SUM(t.total_qty), 0) AS total_qty,
			COUNT(t.id) AS total_transactions`).
		Scopes(inRange("t.date", dateRange)).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	summary.TotalRevenue = summary.TotalRevenue.Round(2)
	return &summary, nil
}

// TopItems ranks by revenue, ties broken by item id. Items no longer in the
// catalog are left out.
func (r *dashboardRepository) TopItems(ctx context.Context, dateRange models.DateRange, limit int) ([]models.TopItem, error) {
	var items []models.TopItem
	err := r.db.WithContext(ctx).
		Table("transaction_items AS ti").
		Select(`ti.item_id AS item_id,
			i.name AS name,
			COALESCE(SUM(ti.qty), 0) AS total_qty,
			COALESCE(SUM(ti.total), 0) AS total_revenue`).
		Joins("JOIN transactions t ON t.id = ti.transaction_id").
		Joins("JOIN items i ON i.id = ti.item_id").
		Scopes(inRange("t.date", dateRange)).
		Group("ti.item_id, i.name").
		Order("total_revenue DESC").
		Order("ti.item_id ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].TotalRevenue = items[i].TotalRevenue.Round(2)
	}
	return items, nil
}

// PaymentBreakdown puts every transaction whose payment type is gone into a
// single bucket with nil id and name.
func (r *dashboardRepository) PaymentBreakdown(ctx context.Context, dateRange models.DateRange) ([]models.PaymentBreakdown, error) {
	var rows []models.PaymentBreakdown
	err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select(`pt.id AS payment_type_id,
			pt.name AS payment_name,
			COUNT(t.id) AS count,
			COALESCE(SUM(t.total_price), 0) AS total`).
		Joins("LEFT JOIN payment_types pt ON pt.id = t.payment_type_id").
		Scopes(inRange("t.date", dateRange)).
		Group("pt.id, pt.name").
		Order("total DESC").
		Order("payment_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Total = rows[i].Total.Round(2)
	}
	return rows, nil
}

type saleStamp struct {
	Date       time.Time
	TotalPrice decimal.Decimal
}

// DailyRevenue buckets by calendar day in loc. Day truncation differs between
// Postgres and SQLite, so it is done here instead of in SQL.
func (r *dashboardRepository) DailyRevenue(ctx context.Context, dateRange models.DateRange, loc *time.Location) ([]models.DailyRevenue, error) {
	var stamps []saleStamp
	err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.date, t.total_price").
		Scopes(inRange("t.date", dateRange)).
		Scan(&stamps).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, s := range stamps {
		day := s.Date.In(loc).Format(time.DateOnly)
		totals[day] = totals[day].Add(s.TotalPrice)
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]models.DailyRevenue, 0, len(days))
	for _, day := range days {
		series = append(series, models.DailyRevenue{Day: day, Revenue: totals[day].Round(2)})
	}
	return series, nil
}
