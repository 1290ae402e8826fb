package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeletedItemLabel stands in for the name of an item removed from the catalog.
const DeletedItemLabel = "Deleted item"

type Transaction struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	PaymentTypeID *uint           `json:"payment_type_id" gorm:"index"`
	Date          time.Time       `json:"date" gorm:"column:date;not null;index"`
	TotalQty      int             `json:"total_qty" gorm:"not null"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
}

type TransactionItem struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	TransactionID uint            `json:"transaction_id" gorm:"not null;index"`
	ItemID        *uint           `json:"item_id" gorm:"index"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Qty           int             `json:"qty" gorm:"not null"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
}

// TransactionRecord is a Transaction read back with its payment type name.
// PaymentTypeName is nil when the payment type no longer exists.
type TransactionRecord struct {
	ID              uint            `json:"id"`
	PaymentTypeID   *uint           `json:"payment_type_id"`
	PaymentTypeName *string         `json:"payment_type_name"`
	Date            time.Time       `json:"date"`
	TotalQty        int             `json:"total_qty"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// PaymentLabel applies the fallback label for deleted payment types.
func (r TransactionRecord) PaymentLabel() string {
	if r.PaymentTypeName == nil {
		return UnknownPaymentType
	}
	return *r.PaymentTypeName
}

// TransactionItemRecord is a TransactionItem read back with the item name.
type TransactionItemRecord struct {
	ID       uint            `json:"id"`
	ItemID   *uint           `json:"item_id"`
	ItemName *string         `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	Qty      int             `json:"qty"`
	Total    decimal.Decimal `json:"total"`
}

func (r TransactionItemRecord) ItemLabel() string {
	if r.ItemName == nil {
		return DeletedItemLabel
	}
	return *r.ItemName
}
