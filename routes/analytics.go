package routes

import (
	analyticscontroller "github.com/Tindae2022/Inventory-Management/controllers/analytics"
	"github.com/Tindae2022/Inventory-Management/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAnalyticsRoutes registers the analytics rollup and dashboard
// endpoints. Reads require a bearer token; rollup writes additionally
// require the reporting API key.
func SetupAnalyticsRoutes(r *gin.Engine, db *gorm.DB) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.ValidateToken)
	{
		analytics.GET("", analyticscontroller.GetAllAnalytics(db))
		analytics.GET("/top-selling", analyticscontroller.GetTopSelling(db))
		analytics.GET("/highest-revenue", analyticscontroller.GetHighestRevenue(db))
		analytics.GET("/low-inventory", analyticscontroller.GetLowInventory(db))
		analytics.GET("/high-inventory", analyticscontroller.GetHighInventory(db))
		analytics.GET("/:id", analyticscontroller.GetAnalyticsByID(db))

		writes := analytics.Group("")
		writes.Use(middleware.ValidateAPIKey)
		{
			writes.POST("", analyticscontroller.CreateAnalytics(db))
			writes.PUT("/:id", analyticscontroller.UpdateAnalytics(db))
			writes.DELETE("/:id", analyticscontroller.DeleteAnalytics(db))
		}
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.ValidateToken)
	{
		dashboard.GET("/summary", analyticscontroller.GetDashboardSummary(db))
		dashboard.GET("/charts", analyticscontroller.GetDashboardCharts(db))
	}
}
