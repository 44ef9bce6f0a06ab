package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := models.GetProduct(db, uint(id))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetProducts lists products. By default only products with stock on hand
// are returned; pass filter=all for the complete catalog.
//
// Query params:
//
//	search  - case-insensitive substring match on name
//	filter  - all | in_stock | low_stock | high_stock | expensive
//	page    - 1-based page number (default 1)
//	limit   - page size (default 10)
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products []models.Product
			err      error
		)

		if search := c.Query("search"); search != "" {
			products, err = models.SearchProducts(db, search)
		} else {
			switch c.DefaultQuery("filter", "") {
			case "all":
				products, err = models.AllProducts(db)
			case "in_stock":
				products, err = models.InStockProducts(db)
			case "low_stock":
				products, err = models.LowStockProducts(db)
			case "high_stock":
				products, err = models.HighStockProducts(db)
			case "expensive":
				products, err = models.ExpensiveProducts(db)
			default:
				products, err = models.AllStock(db)
			}
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit < 1 {
			limit = 10
		}

		total := len(products)
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products[start:end],
			"total":    total,
			"page":     page,
			"limit":    limit,
		})
	}
}
