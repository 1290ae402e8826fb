package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	assert.Equal(t, "postgres", dialector("postgres://pos@localhost/pos").Name())
	assert.Equal(t, "postgres", dialector("postgresql://pos@localhost/pos").Name())
	assert.Equal(t, "sqlite", dialector("pos.db").Name())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("SILENT"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}

func TestInitialize_MigratesSchema(t *testing.T) {
	db := OpenTest(t)

	for _, table := range []string{"categories", "subcategories", "items", "payment_types", "transactions", "transaction_items", "app_settings"} {
		require.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasColumn("transactions", "date"))
	assert.True(t, db.Migrator().HasColumn("transaction_items", "total"))
}
