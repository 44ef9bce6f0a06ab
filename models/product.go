package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `json:"description"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	QuantityOnHand int             `gorm:"not null" json:"quantity_on_hand"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_price"`
	Image          string          `json:"image"`
	Sales          []Sale          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Analytics      []Analytics     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BeforeSave validates field constraints and keeps TotalPrice consistent
// with UnitPrice * QuantityOnHand. TotalPrice is never settable directly.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if p.UnitPrice.IsNegative() {
		return &ValidationError{Field: "unit_price", Message: "must not be negative"}
	}
	if p.QuantityOnHand < 0 {
		return &ValidationError{Field: "quantity_on_hand", Message: "must not be negative"}
	}
	p.TotalPrice = p.UnitPrice.Mul(decimal.NewFromInt(int64(p.QuantityOnHand)))
	return nil
}

// GetProduct fetches a single product by id.
func GetProduct(db *gorm.DB, id uint) (*Product, error) {
	var product Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// AllProducts returns every product, including exhausted stock.
func AllProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Order("name").Find(&products).Error
	return products, err
}

// AllStock is the default catalog listing: products with stock on hand.
// Zero-stock products are silently excluded here; use AllProducts for the
// complete set.
func AllStock(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Where("quantity_on_hand > ?", 0).Order("name").Find(&products).Error
	return products, err
}

// InStockProducts returns products with quantity_on_hand > 0.
func InStockProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Where("quantity_on_hand > ?", 0).Order("name").Find(&products).Error
	return products, err
}

// LowStockProducts returns products with 0 < quantity_on_hand <= 10.
func LowStockProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Where("quantity_on_hand > ? AND quantity_on_hand <= ?", 0, 10).
		Order("name").Find(&products).Error
	return products, err
}

// HighStockProducts returns products with quantity_on_hand >= 50.
func HighStockProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Where("quantity_on_hand >= ?", 50).Order("name").Find(&products).Error
	return products, err
}

// ExpensiveProducts returns products with unit_price > 200.
func ExpensiveProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Where("unit_price > ?", 200).Order("name").Find(&products).Error
	return products, err
}

// SearchProducts does a case-insensitive substring match on product name.
func SearchProducts(db *gorm.DB, query string) ([]Product, error) {
	var products []Product
	err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("name").Find(&products).Error
	return products, err
}
