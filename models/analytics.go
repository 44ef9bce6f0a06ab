package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Analytics is a denormalized rollup per product, populated by a reporting
// job or an operator. It is not recomputed from sale activity.
type Analytics struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  uint            `gorm:"not null;index" json:"product_id"`
	Product    Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	SalesCount int             `gorm:"not null" json:"sales_count"`
	Revenue    decimal.Decimal `gorm:"type:decimal(10,2)" json:"revenue"`
}

func (Analytics) TableName() string {
	return "analytics"
}

func (a *Analytics) BeforeSave(tx *gorm.DB) error {
	if a.SalesCount < 0 {
		return &ValidationError{Field: "sales_count", Message: "must not be negative"}
	}
	if a.Revenue.IsNegative() {
		return &ValidationError{Field: "revenue", Message: "must not be negative"}
	}
	return nil
}

// CreateAnalytics inserts a rollup row after checking the product exists.
func CreateAnalytics(db *gorm.DB, analytics *Analytics) error {
	var product Product
	if err := db.First(&product, "id = ?", analytics.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return db.Create(analytics).Error
}

// GetAnalytics fetches a single rollup row with its product.
func GetAnalytics(db *gorm.DB, id uint) (*Analytics, error) {
	var analytics Analytics
	err := db.Preload("Product").First(&analytics, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &analytics, nil
}

// AllAnalytics returns every rollup row with its product loaded.
func AllAnalytics(db *gorm.DB) ([]Analytics, error) {
	var rows []Analytics
	err := db.Preload("Product").Order("product_id").Find(&rows).Error
	return rows, err
}

// TopSellingProducts returns rollup rows ordered by sales_count ascending,
// truncated to limit (default 10). The ascending order puts the lowest
// sellers first; it is the ordering the dashboards were built against.
func TopSellingProducts(db *gorm.DB, limit int) ([]Analytics, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []Analytics
	err := db.Preload("Product").Order("sales_count ASC").Limit(limit).Find(&rows).Error
	return rows, err
}

// HighestRevenueProducts returns rollup rows ordered by revenue ascending,
// truncated to limit (default 10). Same ascending caveat as
// TopSellingProducts.
func HighestRevenueProducts(db *gorm.DB, limit int) ([]Analytics, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []Analytics
	err := db.Preload("Product").Order("revenue ASC").Limit(limit).Find(&rows).Error
	return rows, err
}

// ProductsWithLowInventory returns rollup rows whose product has
// quantity_on_hand <= 30.
func ProductsWithLowInventory(db *gorm.DB) ([]Analytics, error) {
	var rows []Analytics
	err := db.Preload("Product").
		Joins("JOIN products ON products.id = analytics.product_id").
		Where("products.quantity_on_hand <= ?", 30).
		Order("analytics.product_id").
		Find(&rows).Error
	return rows, err
}

// ProductsWithHighInventory returns rollup rows whose product has
// quantity_on_hand >= 100.
func ProductsWithHighInventory(db *gorm.DB) ([]Analytics, error) {
	var rows []Analytics
	err := db.Preload("Product").
		Joins("JOIN products ON products.id = analytics.product_id").
		Where("products.quantity_on_hand >= ?", 100).
		Order("analytics.product_id").
		Find(&rows).Error
	return rows, err
}
