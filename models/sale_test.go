package models

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptSaleDrainsStock(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 5)

	sale, err := AttemptSale(db, product.ID, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, sale.QuantitySold)
	assert.WithinDuration(t, time.Now(), sale.SaleDate, 5*time.Second)

	reloaded, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.QuantityOnHand)
	assert.True(t, decimal.Zero.Equal(reloaded.TotalPrice),
		"total price must track the decremented stock")

	// The next attempt is rejected and stock stays at zero.
	_, err = AttemptSale(db, product.ID, 1, nil)
	require.ErrorIs(t, err, ErrInsufficientStock)

	reloaded, err = GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.QuantityOnHand)

	var count int64
	require.NoError(t, db.Model(&Sale{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "rejected attempt must not persist a sale")
}

func TestAttemptSaleRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 5)

	_, err := AttemptSale(db, 9999, 1, nil)
	require.ErrorIs(t, err, ErrNotFound)

	missing := uint(9999)
	_, err = AttemptSale(db, product.ID, 1, &missing)
	require.ErrorIs(t, err, ErrNotFound)

	// Neither failure touched the stock or recorded a sale.
	reloaded, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.QuantityOnHand)

	var count int64
	require.NoError(t, db.Model(&Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAttemptSaleRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 5)

	for _, quantity := range []int{0, -3} {
		_, err := AttemptSale(db, product.ID, quantity, nil)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "quantity_sold", vErr.Field)
	}
}

func TestAttemptSaleConcurrentNeverOversells(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 5)

	const attempts = 10
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := AttemptSale(db, product.ID, 1, nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var committed, rejected int
	for err := range results {
		switch {
		case err == nil:
			committed++
		case assert.ErrorIs(t, err, ErrInsufficientStock):
			rejected++
		}
	}

	assert.Equal(t, 5, committed, "committed quantity must not exceed starting stock")
	assert.Equal(t, 5, rejected)

	reloaded, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.QuantityOnHand)
}

func TestProductDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 5)

	_, err := AttemptSale(db, product.ID, 2, nil)
	require.NoError(t, err)
	require.NoError(t, CreateAnalytics(db, &Analytics{ProductID: product.ID, SalesCount: 2}))

	require.NoError(t, db.Delete(&Product{}, product.ID).Error)

	var sales, analytics int64
	require.NoError(t, db.Model(&Sale{}).Count(&sales).Error)
	require.NoError(t, db.Model(&Analytics{}).Count(&analytics).Error)
	assert.Zero(t, sales)
	assert.Zero(t, analytics)
}

func TestCustomerDeleteDetachesSales(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 5)
	customer := createCustomer(t, db, "Ama", "ama@example.com")

	sale, err := AttemptSale(db, product.ID, 1, &customer.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&Customer{}, customer.ID).Error)

	surviving, err := GetSale(db, sale.ID)
	require.NoError(t, err, "past sales must survive customer deletion")
	assert.Nil(t, surviving.CustomerID, "customer reference must be cleared, not cascaded")
}

func TestRecentSalesWindow(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Widget", "10.00", 100)

	backdate := func(days int) uint {
		sale, err := AttemptSale(db, product.ID, 1, nil)
		require.NoError(t, err)
		when := time.Now().AddDate(0, 0, -days)
		require.NoError(t, db.Model(&Sale{}).
			Where("id = ?", sale.ID).
			UpdateColumn("sale_date", when).Error)
		return sale.ID
	}

	within := backdate(29)
	outside := backdate(31)

	sales, err := RecentSales(db, 30)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, within, sales[0].ID)
	assert.NotEqual(t, outside, sales[0].ID)
}

func TestTotalSalesEmptyStore(t *testing.T) {
	db := setupTestDB(t)

	total, err := TotalSales(db)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSalesByProductOrdering(t *testing.T) {
	db := setupTestDB(t)
	heavy := createProduct(t, db, "Heavy", "10.00", 100)
	light := createProduct(t, db, "Light", "10.00", 100)

	_, err := AttemptSale(db, heavy.ID, 4, nil)
	require.NoError(t, err)
	_, err = AttemptSale(db, heavy.ID, 3, nil)
	require.NoError(t, err)
	_, err = AttemptSale(db, light.ID, 2, nil)
	require.NoError(t, err)

	totals, err := SalesByProduct(db)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	// Ascending by summed quantity.
	assert.Equal(t, light.ID, totals[0].ProductID)
	assert.EqualValues(t, 2, totals[0].TotalSold)
	assert.Equal(t, heavy.ID, totals[1].ProductID)
	assert.EqualValues(t, 7, totals[1].TotalSold)
}
