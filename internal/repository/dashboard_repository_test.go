package repository

import (
	"context"
	"testing"
	"time"

	"pos_terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_EmptyStore(t *testing.T) {
	repo := NewDashboardRepository(setupTestDB(t))
	ctx := context.Background()
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, manila)
	today := models.DateRange{From: day, To: day.AddDate(0, 0, 1)}

	summary, err := repo.Summary(ctx, today)
	require.NoError(t, err)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.Zero(t, summary.TotalQty)
	assert.Zero(t, summary.TotalTransactions)

	top, err := repo.TopItems(ctx, today, 8)
	require.NoError(t, err)
	assert.Empty(t, top)

	breakdown, err := repo.PaymentBreakdown(ctx, today)
	require.NoError(t, err)
	assert.Empty(t, breakdown)

	daily, err := repo.DailyRevenue(ctx, today, manila)
	require.NoError(t, err)
	assert.NotNil(t, daily)
	assert.Empty(t, daily)
}

func TestDashboardRepository_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	txRepo := NewTransactionRepository(db)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	cash := createPaymentType(t, db, "Cash")
	gcash := createPaymentType(t, db, "GCash")
	a4 := createItem(t, db, "A4", nil, nil)
	long := createItem(t, db, "Long", nil, nil)
	short := createItem(t, db, "Short", nil, nil)

	day := time.Date(2026, 10, 19, 0, 0, 0, 0, manila)
	createSale(t, txRepo, &cash.ID, day.Add(-2*24*time.Hour+10*time.Hour),
		line{itemID: a4.ID, price: "5", qty: 10})
	createSale(t, txRepo, &cash.ID, day.Add(9*time.Hour),
		line{itemID: long.ID, price: "7.50", qty: 2},
		line{itemID: short.ID, price: "3", qty: 5})
	createSale(t, txRepo, &gcash.ID, day.Add(15*time.Hour),
		line{itemID: a4.ID, price: "5", qty: 4},
		line{itemID: short.ID, price: "2.5", qty: 2})

	week := models.DateRange{From: day.AddDate(0, 0, -6), To: day.AddDate(0, 0, 1)}

	summary, err := repo.Summary(ctx, week)
	require.NoError(t, err)
	assert.Equal(t, "105.00", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(23), summary.TotalQty)
	assert.Equal(t, int64(3), summary.TotalTransactions)

	top, err := repo.TopItems(ctx, week, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A4", top[0].Name)
	assert.Equal(t, "70.00", top[0].TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(14), top[0].TotalQty)
	assert.Equal(t, "Short", top[1].Name)
	assert.Equal(t, "20.00", top[1].TotalRevenue.StringFixed(2))

	breakdown, err := repo.PaymentBreakdown(ctx, week)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Cash", breakdown[0].Label())
	assert.Equal(t, int64(2), breakdown[0].Count)
	assert.Equal(t, "80.00", breakdown[0].Total.StringFixed(2))
	assert.Equal(t, "GCash", breakdown[1].Label())
	assert.Equal(t, "25.00", breakdown[1].Total.StringFixed(2))

	daily, err := repo.DailyRevenue(ctx, week, manila)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-10-17", daily[0].Day)
	assert.Equal(t, "50.00", daily[0].Revenue.StringFixed(2))
	assert.Equal(t, "2026-10-19", daily[1].Day)
	assert.Equal(t, "55.00", daily[1].Revenue.StringFixed(2))

	today := models.DateRange{From: day, To: day.AddDate(0, 0, 1)}
	summary, err = repo.Summary(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, "55.00", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(2), summary.TotalTransactions)
}

func TestDashboardRepository_TopItemsTieBreakByItemID(t *testing.T) {
	db := setupTestDB(t)
	txRepo := NewTransactionRepository(db)
	repo := NewDashboardRepository(db)

	cash := createPaymentType(t, db, "Cash")
	first := createItem(t, db, "Zebra", nil, nil)
	second := createItem(t, db, "Apple", nil, nil)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, manila)

	createSale(t, txRepo, &cash.ID, at, line{itemID: second.ID, price: "10", qty: 1})
	createSale(t, txRepo, &cash.ID, at, line{itemID: first.ID, price: "5", qty: 2})

	top, err := repo.TopItems(context.Background(), models.DateRange{}, 8)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ItemID)
	assert.Equal(t, second.ID, top[1].ItemID)
}

func TestDashboardRepository_DeletedPaymentTypesBucketAsUnknown(t *testing.T) {
	db := setupTestDB(t)
	txRepo := NewTransactionRepository(db)
	ptRepo := NewPaymentTypeRepository(db)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	cash := createPaymentType(t, db, "Cash")
	card := createPaymentType(t, db, "Card")
	maya := createPaymentType(t, db, "Maya")
	item := createItem(t, db, "A4", nil, nil)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, manila)

	createSale(t, txRepo, &cash.ID, at, line{itemID: item.ID, price: "10", qty: 1})
	createSale(t, txRepo, &card.ID, at, line{itemID: item.ID, price: "30", qty: 1})
	createSale(t, txRepo, &maya.ID, at, line{itemID: item.ID, price: "40", qty: 1})

	require.NoError(t, ptRepo.Delete(ctx, card.ID))
	require.NoError(t, ptRepo.Delete(ctx, maya.ID))

	breakdown, err := repo.PaymentBreakdown(ctx, models.DateRange{})
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, models.UnknownPaymentType, breakdown[0].Label())
	assert.Nil(t, breakdown[0].PaymentTypeID)
	assert.Equal(t, int64(2), breakdown[0].Count)
	assert.Equal(t, "70.00", breakdown[0].Total.StringFixed(2))
	assert.Equal(t, "Cash", breakdown[1].Label())

	summary, err := repo.Summary(ctx, models.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalTransactions)
}
