package handlers

import (
	"time"

	"pos_terminal/internal/cart"
	"pos_terminal/internal/checkout"
	"pos_terminal/internal/models"
	"pos_terminal/internal/services"
	"pos_terminal/pkg/money"

	"github.com/shopspring/decimal"
)

// Amounts go out as fixed two-decimal strings next to a display string.

type cartLineView struct {
	ItemID       uint   `json:"item_id"`
	Name         string `json:"name"`
	Label        string `json:"label"`
	Price        string `json:"price"`
	PriceDisplay string `json:"price_display"`
	Qty          int    `json:"qty"`
	Total        string `json:"total"`
	TotalDisplay string `json:"total_display"`
}

type cartView struct {
	CartID            string         `json:"cart_id"`
	Items             []cartLineView `json:"items"`
	TotalQty          int            `json:"total_qty"`
	TotalPrice        string         `json:"total_price"`
	TotalPriceDisplay string         `json:"total_price_display"`
}

type quoteView struct {
	AmountDue        string `json:"amount_due"`
	AmountDueDisplay string `json:"amount_due_display"`
	Cash             string `json:"cash"`
	Change           string `json:"change"`
	ChangeDisplay    string `json:"change_display"`
	Shortfall        string `json:"shortfall"`
	ShortfallDisplay string `json:"shortfall_display"`
	Insufficient     bool   `json:"insufficient"`
	PaymentTypeID    *uint  `json:"payment_type_id"`
	CanCharge        bool   `json:"can_charge"`
	Blocker          string `json:"blocker,omitempty"`
}

type receiptView struct {
	TransactionID    uint           `json:"transaction_id"`
	PaymentTypeID    uint           `json:"payment_type_id"`
	Date             time.Time      `json:"date"`
	Items            []cartLineView `json:"items"`
	TotalQty         int            `json:"total_qty"`
	AmountDue        string         `json:"amount_due"`
	AmountDueDisplay string         `json:"amount_due_display"`
	Cash             string         `json:"cash"`
	CashDisplay      string         `json:"cash_display"`
	Change           string         `json:"change"`
	ChangeDisplay    string         `json:"change_display"`
}

type transactionView struct {
	ID                uint      `json:"id"`
	PaymentTypeID     *uint     `json:"payment_type_id"`
	PaymentType       string    `json:"payment_type"`
	Date              time.Time `json:"date"`
	TotalQty          int       `json:"total_qty"`
	TotalPrice        string    `json:"total_price"`
	TotalPriceDisplay string    `json:"total_price_display"`
}

type transactionItemView struct {
	ID           uint   `json:"id"`
	ItemID       *uint  `json:"item_id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	PriceDisplay string `json:"price_display"`
	Qty          int    `json:"qty"`
	Total        string `json:"total"`
	TotalDisplay string `json:"total_display"`
}

type transactionDetailView struct {
	transactionView
	Items []transactionItemView `json:"items"`
}

type views struct {
	money money.Formatter
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (v views) lines(lines []cart.Line) []cartLineView {
	out := make([]cartLineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineView{
			ItemID:       l.ItemID,
			Name:         l.Name,
			Label:        l.Labels.String(),
			Price:        fixed(l.Price),
			PriceDisplay: v.money.Format(l.Price),
			Qty:          l.Qty,
			Total:        fixed(l.Total()),
			TotalDisplay: v.money.Format(l.Total()),
		})
	}
	return out
}

func (v views) cart(cartID string, c *cart.Cart) cartView {
	total := c.TotalPrice()
	return cartView{
		CartID:            cartID,
		Items:             v.lines(c.Lines()),
		TotalQty:          c.TotalQty(),
		TotalPrice:        fixed(total),
		TotalPriceDisplay: v.money.Format(total),
	}
}

func (v views) quote(q *checkout.Quote) quoteView {
	view := quoteView{
		AmountDue:        fixed(q.AmountDue),
		AmountDueDisplay: v.money.Format(q.AmountDue),
		Cash:             fixed(q.Cash),
		Change:           fixed(q.Change),
		ChangeDisplay:    v.money.Format(q.Change),
		Shortfall:        fixed(q.Shortfall),
		ShortfallDisplay: v.money.Format(q.Shortfall),
		Insufficient:     q.Insufficient,
		PaymentTypeID:    q.PaymentTypeID,
		CanCharge:        q.CanCharge,
	}
	if err := q.Blocker(); err != nil {
		view.Blocker = err.Error()
	}
	return view
}

func (v views) receipt(r *services.Receipt) receiptView {
	return receiptView{
		TransactionID:    r.TransactionID,
		PaymentTypeID:    r.PaymentTypeID,
		Date:             r.Date,
		Items:            v.lines(r.Lines),
		TotalQty:         r.TotalQty,
		AmountDue:        fixed(r.AmountDue),
		AmountDueDisplay: v.money.Format(r.AmountDue),
		Cash:             fixed(r.Cash),
		CashDisplay:      v.money.Format(r.Cash),
		Change:           fixed(r.Change),
		ChangeDisplay:    v.money.Format(r.Change),
	}
}

func (v views) transaction(r models.TransactionRecord) transactionView {
	return transactionView{
		ID:                r.ID,
		PaymentTypeID:     r.PaymentTypeID,
		PaymentType:       r.PaymentLabel(),
		Date:              r.Date,
		TotalQty:          r.TotalQty,
		TotalPrice:        fixed(r.TotalPrice),
		TotalPriceDisplay: v.money.Format(r.TotalPrice),
	}
}

func (v views) transactions(records []models.TransactionRecord) []transactionView {
	out := make([]transactionView, 0, len(records))
	for _, r := range records {
		out = append(out, v.transaction(r))
	}
	return out
}

func (v views) transactionDetail(d *services.TransactionDetail) transactionDetailView {
	items := make([]transactionItemView, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, transactionItemView{
			ID:           item.ID,
			ItemID:       item.ItemID,
			Name:         item.ItemLabel(),
			Price:        fixed(item.Price),
			PriceDisplay: v.money.Format(item.Price),
			Qty:          item.Qty,
			Total:        fixed(item.Total),
			TotalDisplay: v.money.Format(item.Total),
		})
	}
	return transactionDetailView{transactionView: v.transaction(d.Transaction), Items: items}
}
