package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite store with foreign keys enforced,
// so CASCADE and SET NULL behave like they do on postgres. The pool is
// pinned to one connection because every :memory: connection is a separate
// database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&User{}, &Product{}, &Customer{}, &Sale{}, &Analytics{}))

	return db
}

func createProduct(t *testing.T, db *gorm.DB, name, unitPrice string, quantity int) *Product {
	t.Helper()
	product := &Product{
		Name:           name,
		UnitPrice:      decimal.RequireFromString(unitPrice),
		QuantityOnHand: quantity,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createCustomer(t *testing.T, db *gorm.DB, firstName, email string) *Customer {
	t.Helper()
	customer := &Customer{FirstName: firstName, Email: email}
	require.NoError(t, CreateCustomer(db, customer))
	return customer
}
