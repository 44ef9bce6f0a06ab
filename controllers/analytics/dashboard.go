package analyticscontroller

import (
	"net/http"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboardSummary returns the aggregate counters for the dashboard.
func GetDashboardSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := models.DashboardSummary(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// GetDashboardCharts returns pie and bar chart series built from product
// names and their quantities on hand, together with the summary counters.
func GetDashboardCharts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := models.AllProducts(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		summary, err := models.DashboardSummary(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
			return
		}

		labels := make([]string, 0, len(products))
		data := make([]int, 0, len(products))
		for _, p := range products {
			labels = append(labels, p.Name)
			data = append(data, p.QuantityOnHand)
		}

		c.JSON(http.StatusOK, gin.H{
			"pie_labels": labels,
			"pie_data":   data,
			"bar_labels": labels,
			"bar_data":   data,
			"summary":    summary,
		})
	}
}
