package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductTotalPriceInvariant(t *testing.T) {
	db := setupTestDB(t)

	product := createProduct(t, db, "Widget", "19.99", 3)
	assert.True(t, decimal.RequireFromString("59.97").Equal(product.TotalPrice),
		"total price should be unit_price * quantity, got %s", product.TotalPrice)

	product.QuantityOnHand = 5
	require.NoError(t, db.Save(product).Error)
	assert.True(t, decimal.RequireFromString("99.95").Equal(product.TotalPrice))

	// TotalPrice is not independently settable; a bogus value is
	// overwritten on save.
	product.TotalPrice = decimal.RequireFromString("1.00")
	require.NoError(t, db.Save(product).Error)
	assert.True(t, decimal.RequireFromString("99.95").Equal(product.TotalPrice))
}

func TestProductValidation(t *testing.T) {
	db := setupTestDB(t)

	cases := []struct {
		name    string
		product Product
		field   string
	}{
		{
			name:    "missing name",
			product: Product{UnitPrice: decimal.New(1, 0), QuantityOnHand: 1},
			field:   "name",
		},
		{
			name:    "negative unit price",
			product: Product{Name: "Widget", UnitPrice: decimal.RequireFromString("-0.01"), QuantityOnHand: 1},
			field:   "unit_price",
		},
		{
			name:    "negative quantity",
			product: Product{Name: "Widget", UnitPrice: decimal.New(1, 0), QuantityOnHand: -1},
			field:   "quantity_on_hand",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := db.Create(&tc.product).Error
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	// Nothing was persisted by the rejected writes.
	var count int64
	require.NoError(t, db.Model(&Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStockTierQueries(t *testing.T) {
	db := setupTestDB(t)

	createProduct(t, db, "Empty", "5.00", 0)
	createProduct(t, db, "One", "5.00", 1)
	createProduct(t, db, "Ten", "5.00", 10)
	createProduct(t, db, "Eleven", "5.00", 11)
	createProduct(t, db, "Fifty", "5.00", 50)

	names := func(products []Product) []string {
		out := make([]string, 0, len(products))
		for _, p := range products {
			out = append(out, p.Name)
		}
		return out
	}

	t.Run("low stock boundaries", func(t *testing.T) {
		products, err := LowStockProducts(db)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"One", "Ten"}, names(products))
	})

	t.Run("high stock", func(t *testing.T) {
		products, err := HighStockProducts(db)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Fifty"}, names(products))
	})

	t.Run("in stock excludes zero", func(t *testing.T) {
		products, err := InStockProducts(db)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"One", "Ten", "Eleven", "Fifty"}, names(products))
	})

	t.Run("default listing excludes zero stock", func(t *testing.T) {
		products, err := AllStock(db)
		require.NoError(t, err)
		assert.NotContains(t, names(products), "Empty")
	})

	t.Run("all products includes zero stock", func(t *testing.T) {
		products, err := AllProducts(db)
		require.NoError(t, err)
		assert.Contains(t, names(products), "Empty")
	})
}

func TestExpensiveProducts(t *testing.T) {
	db := setupTestDB(t)

	createProduct(t, db, "Budget", "200.00", 1)
	createProduct(t, db, "Premium", "200.01", 1)

	products, err := ExpensiveProducts(db)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Premium", products[0].Name)
}

func TestSearchProducts(t *testing.T) {
	db := setupTestDB(t)

	createProduct(t, db, "Desk Lamp", "20.00", 4)
	createProduct(t, db, "Widget Max", "15.00", 2)

	products, err := SearchProducts(db, "WiDg")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget Max", products[0].Name)

	products, err = SearchProducts(db, "zzz")
	require.NoError(t, err)
	assert.Empty(t, products)
}
