package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Subcategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	Name       string    `json:"name" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// Item is catalog reference data. It carries no price: the unit price is
// entered when the item is rung up.
type Item struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CategoryID    *uint     `json:"category_id" gorm:"index"`
	SubcategoryID *uint     `json:"subcategory_id" gorm:"index"`
	Name          string    `json:"name" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

// CatalogItem is an Item joined with its category and subcategory names.
type CatalogItem struct {
	ID              uint    `json:"id"`
	CategoryID      *uint   `json:"category_id"`
	CategoryName    *string `json:"category_name"`
	SubcategoryID   *uint   `json:"subcategory_id"`
	SubcategoryName *string `json:"subcategory_name"`
	Name            string  `json:"name"`
}
