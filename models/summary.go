package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Summary holds the dashboard counters. All values are zero on an empty
// store.
type Summary struct {
	TotalProducts         int64           `json:"total_products"`
	TotalQuantityOnHand   int64           `json:"total_quantity_on_hand"`
	TotalQuantitySold     int64           `json:"total_quantity_sold"`
	TotalRevenueGenerated decimal.Decimal `json:"total_revenue_generated"`
	TotalCustomers        int64           `json:"total_customers"`
}

// DashboardSummary computes the aggregate counters for the dashboard.
// Revenue is summed from each sale's current product price, not a snapshot
// taken at sale time, so the figure drifts when prices change later.
func DashboardSummary(db *gorm.DB) (*Summary, error) {
	summary := &Summary{TotalRevenueGenerated: decimal.Zero}

	if err := db.Model(&Product{}).Count(&summary.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Product{}).
		Select("COALESCE(SUM(quantity_on_hand), 0)").
		Scan(&summary.TotalQuantityOnHand).Error; err != nil {
		return nil, err
	}

	totalSold, err := TotalSales(db)
	if err != nil {
		return nil, err
	}
	summary.TotalQuantitySold = totalSold

	var sales []Sale
	if err := db.Preload("Product").Find(&sales).Error; err != nil {
		return nil, err
	}
	for _, sale := range sales {
		lineTotal := sale.Product.UnitPrice.Mul(decimal.NewFromInt(int64(sale.QuantitySold)))
		summary.TotalRevenueGenerated = summary.TotalRevenueGenerated.Add(lineTotal)
	}

	if err := db.Model(&Customer{}).Count(&summary.TotalCustomers).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
