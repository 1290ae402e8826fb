package models

import "github.com/shopspring/decimal"

type SalesSummary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalQty          int64           `json:"total_qty"`
	TotalTransactions int64           `json:"total_transactions"`
}

type TopItem struct {
	ItemID       uint            `json:"item_id"`
	Name         string          `json:"name"`
	TotalQty     int64           `json:"total_qty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// PaymentBreakdown groups transactions by payment type. PaymentTypeID and
// PaymentName are nil for the bucket of deleted payment types.
type PaymentBreakdown struct {
	PaymentTypeID *uint           `json:"payment_type_id"`
	PaymentName   *string         `json:"payment_name"`
	Count         int64           `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

func (p PaymentBreakdown) Label() string {
	if p.PaymentName == nil {
		return UnknownPaymentType
	}
	return *p.PaymentName
}

type DailyRevenue struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}
