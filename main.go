package main

import (
	"time"

	"github.com/Tindae2022/Inventory-Management/config"
	"github.com/Tindae2022/Inventory-Management/logger"
	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/Tindae2022/Inventory-Management/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// Logger
	zl, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.Analytics{},
	); err != nil {
		zl.Fatal("auto-migrate failed", zap.Error(err))
	}

	// Gin setup
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product images
	r.Static("/uploads", cfg.Uploads.Dir)

	// Setup routes
	routes.SetupRoutes(r, db, cfg)

	// Start server
	zl.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection. TranslateError surfaces
// unique violations as gorm.ErrDuplicatedKey so the models layer can map
// them to the duplicate-email error.
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		zap.L().Fatal("failed to connect DB", zap.Error(err))
	}
	return db
}
