package salecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type CreateSaleRequest struct {
	ProductID    uint  `json:"product_id" binding:"required"`
	QuantitySold int   `json:"quantity_sold" binding:"required"`
	CustomerID   *uint `json:"customer_id"`
}

type UpdateSaleRequest struct {
	QuantitySold int   `json:"quantity_sold" binding:"required"`
	CustomerID   *uint `json:"customer_id"`
}

// CreateSale runs the sale transaction: the stock check, the sale insert
// and the product decrement commit together or not at all.
func CreateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		sale, err := models.AttemptSale(db, req.ProductID, req.QuantitySold, req.CustomerID)
		if err != nil {
			respondSaleError(c, err, "Failed to record sale")
			return
		}
		c.JSON(http.StatusCreated, sale)
	}
}

// GetSales lists sales. Query params:
//
//	days - only sales within the trailing window, e.g. ?days=30
func GetSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			sales []models.Sale
			err   error
		)
		if daysStr := c.Query("days"); daysStr != "" {
			days, convErr := strconv.Atoi(daysStr)
			if convErr != nil || days < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
				return
			}
			sales, err = models.RecentSales(db, days)
		} else {
			sales, err = models.AllSales(db)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// GetRecentSales lists sales from the trailing window, 30 days by default.
func GetRecentSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := 30
		if daysStr := c.Query("days"); daysStr != "" {
			parsed, err := strconv.Atoi(daysStr)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
				return
			}
			days = parsed
		}
		sales, err := models.RecentSales(db, days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// GetTotalSales returns the sum of quantity_sold across all sales.
func GetTotalSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := models.TotalSales(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_sales": total})
	}
}

// GetSalesByProduct returns per-product sums of quantity_sold, ascending.
func GetSalesByProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		totals, err := models.SalesByProduct(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate sales"})
			return
		}
		c.JSON(http.StatusOK, totals)
	}
}

// GetSaleByID returns a single sale with product and customer.
func GetSaleByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
			return
		}
		sale, err := models.GetSale(db, uint(id))
		if err != nil {
			respondSaleError(c, err, "Failed to retrieve sale")
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

// UpdateSale edits a committed sale's quantity or customer. Edits do not
// re-balance product stock; only creation moves inventory. The sale date
// is immutable.
func UpdateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
			return
		}
		sale, err := models.GetSale(db, uint(id))
		if err != nil {
			respondSaleError(c, err, "Failed to retrieve sale")
			return
		}

		var req UpdateSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		sale.QuantitySold = req.QuantitySold
		sale.CustomerID = req.CustomerID

		if err := db.Omit(clause.Associations).Save(sale).Error; err != nil {
			respondSaleError(c, err, "Failed to update sale")
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

// DeleteSale removes a sale record. Stock is not restored.
func DeleteSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
			return
		}
		sale, err := models.GetSale(db, uint(id))
		if err != nil {
			respondSaleError(c, err, "Failed to retrieve sale")
			return
		}
		if err := db.Delete(sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
	}
}

func respondSaleError(c *gin.Context, err error, fallback string) {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for requested quantity"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
