package routes

import (
	"github.com/Tindae2022/Inventory-Management/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Inventory routes (JWT-protected)
	SetupInventoryRoutes(r, db, cfg)

	// Analytics and dashboard routes
	SetupAnalyticsRoutes(r, db)
}
