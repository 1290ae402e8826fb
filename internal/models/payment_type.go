package models

import "time"

// UnknownPaymentType labels transactions whose payment type was deleted.
const UnknownPaymentType = "Unknown"

type PaymentType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
