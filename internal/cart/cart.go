// Package cart holds the lines of one in-progress order.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Labels is the catalog placement of an item captured when it was added, so
// the receipt shows what the catalog said at that moment.
type Labels struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// String renders "Category > Subcategory", "Category", or "".
func (l Labels) String() string {
	if l.Category == "" {
		return ""
	}
	if l.Subcategory == "" {
		return l.Category
	}
	return l.Category + " > " + l.Subcategory
}

// Product is what gets rung up: a catalog item at a chosen unit price.
type Product struct {
	ItemID uint
	Name   string
	Price  decimal.Decimal
	Labels Labels
}

type Line struct {
	ItemID uint            `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Qty    int             `json:"qty"`
	Labels Labels          `json:"labels"`
}

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart lines are unique on (item id, unit price). Every line has Qty > 0.
type Cart struct {
	Items []Line `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []Line{}}
}

func (c *Cart) find(itemID uint, price decimal.Decimal) int {
	for i, l := range c.Items {
		if l.ItemID == itemID && l.Price.Equal(price) {
			return i
		}
	}
	return -1
}

// AddItem merges into the line with the same item and price, or appends one.
func (c *Cart) AddItem(p Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if i := c.find(p.ItemID, p.Price); i >= 0 {
		c.Items[i].Qty += qty
		return nil
	}

	c.Items = append(c.Items, Line{
		ItemID: p.ItemID,
		Name:   p.Name,
		Price:  p.Price,
		Qty:    qty,
		Labels: p.Labels,
	})
	return nil
}

// RemoveOne takes one unit off every price variant of itemID, dropping lines
// that reach zero. It returns how many units were removed.
func (c *Cart) RemoveOne(itemID uint) int {
	kept := c.Items[:0]
	removed := 0
	for _, l := range c.Items {
		if l.ItemID == itemID {
			l.Qty--
			removed++
			if l.Qty <= 0 {
				continue
			}
		}
		kept = append(kept, l)
	}
	c.Items = kept
	return removed
}

// RemoveAll drops every price variant of itemID and returns how many lines went.
func (c *Cart) RemoveAll(itemID uint) int {
	kept := c.Items[:0]
	removed := 0
	for _, l := range c.Items {
		if l.ItemID == itemID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	c.Items = kept
	return removed
}

func (c *Cart) Clear() {
	c.Items = []Line{}
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.Items))
	copy(out, c.Items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) TotalQty() int {
	total := 0
	for _, l := range c.Items {
		total += l.Qty
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	return Total(c.Items)
}

// Total sums price x qty over lines.
func Total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
