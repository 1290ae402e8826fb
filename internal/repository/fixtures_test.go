package repository

import (
	"context"
	"testing"
	"time"

	"pos_terminal/internal/database"
	"pos_terminal/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var manila = time.FixedZone("PHT", 8*60*60)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func uintPtr(v uint) *uint {
	return &v
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.OpenTest(t)
}

func createPaymentType(t *testing.T, db *gorm.DB, name string) models.PaymentType {
	t.Helper()
	pt := models.PaymentType{Name: name}
	require.NoError(t, db.Create(&pt).Error)
	return pt
}

func createItem(t *testing.T, db *gorm.DB, name string, categoryID, subcategoryID *uint) models.Item {
	t.Helper()
	item := models.Item{Name: name, CategoryID: categoryID, SubcategoryID: subcategoryID}
	require.NoError(t, db.Create(&item).Error)
	return item
}

type line struct {
	itemID uint
	price  string
	qty    int
}

// createSale writes a transaction through the repository with totals derived from lines.
func createSale(t *testing.T, repo TransactionRepository, paymentTypeID *uint, at time.Time, lines ...line) models.Transaction {
	t.Helper()

	txn := models.Transaction{PaymentTypeID: paymentTypeID, Date: at, TotalPrice: decimal.Zero}
	items := make([]models.TransactionItem, 0, len(lines))
	for _, l := range lines {
		price := dec(l.price)
		total := price.Mul(decimal.NewFromInt(int64(l.qty)))
		items = append(items, models.TransactionItem{
			ItemID: uintPtr(l.itemID),
			Price:  price,
			Qty:    l.qty,
			Total:  total,
		})
		txn.TotalQty += l.qty
		txn.TotalPrice = txn.TotalPrice.Add(total)
	}

	require.NoError(t, repo.Create(context.Background(), &txn, items))
	return txn
}
