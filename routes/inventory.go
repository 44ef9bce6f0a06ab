package routes

import (
	"github.com/Tindae2022/Inventory-Management/config"
	customercontroller "github.com/Tindae2022/Inventory-Management/controllers/customer"
	emailcontroller "github.com/Tindae2022/Inventory-Management/controllers/email"
	productcontroller "github.com/Tindae2022/Inventory-Management/controllers/product"
	salecontroller "github.com/Tindae2022/Inventory-Management/controllers/sale"
	"github.com/Tindae2022/Inventory-Management/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupInventoryRoutes registers the product, customer, sale, and
// notification endpoints. All of them require a valid bearer token.
func SetupInventoryRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/")
	api.Use(middleware.ValidateToken)
	{
		products := api.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db, cfg.Uploads.Dir))
			products.GET("", productcontroller.GetProducts(db))
			products.GET("/export/excel", productcontroller.ExportProductsToExcel(db))
			products.GET("/export/pdf", productcontroller.ExportProductsToPDF(db))
			products.GET("/:id", productcontroller.GetProductByID(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db, cfg.Uploads.Dir))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		customers := api.Group("/customers")
		{
			customers.POST("", customercontroller.CreateCustomer(db))
			customers.GET("", customercontroller.GetCustomers(db))
			customers.GET("/with-sales", customercontroller.GetCustomersWithSales(db))
			customers.GET("/:id", customercontroller.GetCustomerByID(db))
			customers.PUT("/:id", customercontroller.UpdateCustomer(db))
			customers.DELETE("/:id", customercontroller.DeleteCustomer(db))
		}

		sales := api.Group("/sales")
		{
			sales.POST("", salecontroller.CreateSale(db))
			sales.GET("", salecontroller.GetSales(db))
			sales.GET("/recent", salecontroller.GetRecentSales(db))
			sales.GET("/total", salecontroller.GetTotalSales(db))
			sales.GET("/by-product", salecontroller.GetSalesByProduct(db))
			sales.GET("/:id", salecontroller.GetSaleByID(db))
			sales.PUT("/:id", salecontroller.UpdateSale(db))
			sales.DELETE("/:id", salecontroller.DeleteSale(db))
		}

		api.POST("/notifications/email", emailcontroller.SendEmail(cfg.SMTP))
	}
}
