package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)

	createCustomer(t, db, "Ama", "ama@example.com")

	var before int64
	require.NoError(t, db.Model(&Customer{}).Count(&before).Error)

	err := CreateCustomer(db, &Customer{FirstName: "Kofi", Email: "ama@example.com"})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	var after int64
	require.NoError(t, db.Model(&Customer{}).Count(&after).Error)
	assert.Equal(t, before, after, "rejected write must leave the store unchanged")
}

func TestCustomerValidation(t *testing.T) {
	db := setupTestDB(t)

	err := CreateCustomer(db, &Customer{FirstName: "NoEmail"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	err = CreateCustomer(db, &Customer{Email: "not-an-email"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestCustomersWithSales(t *testing.T) {
	db := setupTestDB(t)

	product := createProduct(t, db, "Widget", "10.00", 100)
	buyer := createCustomer(t, db, "Ama", "ama@example.com")
	createCustomer(t, db, "Kofi", "kofi@example.com")

	// Two sales for the same customer must not duplicate the row.
	_, err := AttemptSale(db, product.ID, 1, &buyer.ID)
	require.NoError(t, err)
	_, err = AttemptSale(db, product.ID, 2, &buyer.ID)
	require.NoError(t, err)

	customers, err := CustomersWithSales(db)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "ama@example.com", customers[0].Email)
}

func TestCustomerSearches(t *testing.T) {
	db := setupTestDB(t)

	createCustomer(t, db, "Amara", "amara@shop.example")
	createCustomer(t, db, "Kofi", "kofi@mail.example")

	t.Run("by email", func(t *testing.T) {
		customers, err := SearchCustomersByEmail(db, "SHOP")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Amara", customers[0].FirstName)
	})

	t.Run("by name", func(t *testing.T) {
		customers, err := SearchCustomersByName(db, "ama")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Amara", customers[0].FirstName)
	})
}
