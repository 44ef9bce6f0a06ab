package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Sale struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	Product      Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	QuantitySold int       `gorm:"not null" json:"quantity_sold"`
	SaleDate     time.Time `gorm:"not null" json:"sale_date"`
	CustomerID   *uint     `gorm:"index" json:"customer_id"`
	Customer     *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (s *Sale) BeforeSave(tx *gorm.DB) error {
	if s.QuantitySold <= 0 {
		return &ValidationError{Field: "quantity_sold", Message: "must be greater than zero"}
	}
	return nil
}

// ProductSalesTotal is one row of the per-product sales aggregation.
type ProductSalesTotal struct {
	ProductID uint  `json:"product_id"`
	TotalSold int64 `json:"total_sold"`
}

// AttemptSale records a sale and decrements the product's stock as a single
// transaction. The product row is locked for the duration of the check and
// decrement, so concurrent attempts against the same product cannot
// oversell. A request for more units than are on hand is rejected with
// ErrInsufficientStock and leaves both tables untouched.
func AttemptSale(db *gorm.DB, productID uint, quantity int, customerID *uint) (*Sale, error) {
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity_sold", Message: "must be greater than zero"}
	}

	var sale *Sale
	err := db.Transaction(func(tx *gorm.DB) error {
		query := tx
		// sqlite has no row locks; its single-writer transactions already
		// serialize the decrement.
		if tx.Dialector.Name() != "sqlite" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var product Product
		if err := query.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if customerID != nil {
			var customer Customer
			if err := tx.First(&customer, "id = ?", *customerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
		}

		if product.QuantityOnHand < quantity {
			return ErrInsufficientStock
		}

		s := Sale{
			ProductID:    product.ID,
			QuantitySold: quantity,
			SaleDate:     time.Now(),
			CustomerID:   customerID,
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}

		product.QuantityOnHand -= quantity
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		sale = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale fetches a single sale with its product and customer.
func GetSale(db *gorm.DB, id uint) (*Sale, error) {
	var sale Sale
	err := db.Preload("Product").Preload("Customer").First(&sale, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// AllSales returns every sale with product and customer loaded.
func AllSales(db *gorm.DB) ([]Sale, error) {
	var sales []Sale
	err := db.Preload("Product").Preload("Customer").Order("product_id").Find(&sales).Error
	return sales, err
}

// TotalSales sums quantity_sold across all sales, zero when there are none.
func TotalSales(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Sale{}).
		Select("COALESCE(SUM(quantity_sold), 0)").
		Scan(&total).Error
	return total, err
}

// RecentSales returns sales dated within the trailing window. The cutoff is
// inclusive: a sale exactly `days` old is still recent.
func RecentSales(db *gorm.DB, days int) ([]Sale, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var sales []Sale
	err := db.Preload("Product").Preload("Customer").
		Where("sale_date >= ?", cutoff).
		Order("product_id").
		Find(&sales).Error
	return sales, err
}

// SalesByProduct sums quantity_sold per product, ordered ascending by the sum.
func SalesByProduct(db *gorm.DB) ([]ProductSalesTotal, error) {
	var totals []ProductSalesTotal
	err := db.Model(&Sale{}).
		Select("product_id, SUM(quantity_sold) AS total_sold").
		Group("product_id").
		Order("total_sold ASC").
		Scan(&totals).Error
	return totals, err
}
