package analyticscontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type AnalyticsRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	SalesCount int    `json:"sales_count"`
	Revenue    string `json:"revenue"`
}

// CreateAnalytics records a rollup row for a product. Rollups are written
// by a reporting job or an operator; they are not derived from sales here.
func CreateAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		revenue := decimal.Zero
		if req.Revenue != "" {
			parsed, err := decimal.NewFromString(req.Revenue)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid revenue"})
				return
			}
			revenue = parsed
		}

		analytics := models.Analytics{
			ProductID:  req.ProductID,
			SalesCount: req.SalesCount,
			Revenue:    revenue,
		}
		if err := models.CreateAnalytics(db, &analytics); err != nil {
			respondAnalyticsError(c, err, "Failed to create analytics record")
			return
		}
		c.JSON(http.StatusCreated, analytics)
	}
}

// GetAllAnalytics lists every rollup row.
func GetAllAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := models.AllAnalytics(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetAnalyticsByID returns a single rollup row.
func GetAnalyticsByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analytics ID"})
			return
		}
		row, err := models.GetAnalytics(db, uint(id))
		if err != nil {
			respondAnalyticsError(c, err, "Failed to retrieve analytics record")
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// UpdateAnalytics replaces the counters on an existing rollup row.
func UpdateAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analytics ID"})
			return
		}
		row, err := models.GetAnalytics(db, uint(id))
		if err != nil {
			respondAnalyticsError(c, err, "Failed to retrieve analytics record")
			return
		}

		var req AnalyticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		revenue := row.Revenue
		if req.Revenue != "" {
			parsed, err := decimal.NewFromString(req.Revenue)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid revenue"})
				return
			}
			revenue = parsed
		}

		row.SalesCount = req.SalesCount
		row.Revenue = revenue

		if err := db.Omit(clause.Associations).Save(row).Error; err != nil {
			respondAnalyticsError(c, err, "Failed to update analytics record")
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// DeleteAnalytics removes a rollup row.
func DeleteAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analytics ID"})
			return
		}
		row, err := models.GetAnalytics(db, uint(id))
		if err != nil {
			respondAnalyticsError(c, err, "Failed to retrieve analytics record")
			return
		}
		if err := db.Delete(row).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete analytics record"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Analytics record deleted successfully"})
	}
}

// GetTopSelling returns rollup rows ranked by sales_count, ?limit= rows
// (default 10).
func GetTopSelling(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		rows, err := models.TopSellingProducts(db, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetHighestRevenue returns rollup rows ranked by revenue, ?limit= rows
// (default 10).
func GetHighestRevenue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		rows, err := models.HighestRevenueProducts(db, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetLowInventory returns rollup rows for products with at most 30 units.
func GetLowInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := models.ProductsWithLowInventory(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetHighInventory returns rollup rows for products with at least 100 units.
func GetHighInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := models.ProductsWithHighInventory(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func respondAnalyticsError(c *gin.Context, err error, fallback string) {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
