package routes

import (
	"github.com/Tindae2022/Inventory-Management/auth"
	"github.com/Tindae2022/Inventory-Management/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public register/login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, cfg.JWT))
	}
}
