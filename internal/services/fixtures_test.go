package services

import (
	"testing"
	"time"

	"pos_terminal/internal/database"
	"pos_terminal/internal/models"
	"pos_terminal/internal/period"
	"pos_terminal/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	manila = time.FixedZone("PHT", 8*60*60)
	now    = time.Date(2024, 10, 19, 15, 30, 0, 0, manila)
)

type testEnv struct {
	db           *gorm.DB
	store        CartStore
	catalog      CatalogService
	paymentTypes PaymentTypeService
	carts        CartService
	transactions TransactionService
	checkout     CheckoutService
	dashboard    DashboardService
	pins         PinService
	data         DataService
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	db := database.OpenTest(t)
	logger := zap.NewNop()
	clock := period.FixedClock(now)

	catalogRepo := repository.NewCatalogRepository(db)
	paymentTypeRepo := repository.NewPaymentTypeRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	env := &testEnv{db: db, store: NewMemoryCartStore()}
	env.catalog = NewCatalogService(catalogRepo)
	env.paymentTypes = NewPaymentTypeService(paymentTypeRepo, logger)
	env.carts = NewCartService(env.store, env.catalog)
	env.transactions = NewTransactionService(transactionRepo, paymentTypeRepo, clock, logger)
	env.checkout = NewCheckoutService(env.store, env.transactions, logger)
	env.dashboard = NewDashboardService(repository.NewDashboardRepository(db), clock, 8)
	env.pins = NewPinService(repository.NewSettingRepository(db), logger)
	env.data = NewDataService(repository.NewMaintenanceRepository(db), logger)
	return env
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func uintPtr(v uint) *uint {
	return &v
}

func (e *testEnv) createPaymentType(t *testing.T, name string) models.PaymentType {
	t.Helper()
	pt := models.PaymentType{Name: name}
	require.NoError(t, e.db.Create(&pt).Error)
	return pt
}

// createItem files an item under a new category and subcategory.
func (e *testEnv) createItem(t *testing.T, name, category, subcategory string) models.Item {
	t.Helper()

	cat := models.Category{Name: category}
	require.NoError(t, e.db.Create(&cat).Error)
	sub := models.Subcategory{CategoryID: cat.ID, Name: subcategory}
	require.NoError(t, e.db.Create(&sub).Error)

	item := models.Item{Name: name, CategoryID: &cat.ID, SubcategoryID: &sub.ID}
	require.NoError(t, e.db.Create(&item).Error)
	return item
}
