package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by ID. Accepts the same form
// fields as CreateProduct; omitted fields keep their current values.
// TotalPrice is recomputed by the model hook and cannot be set here.
func UpdateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
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

		if name := c.PostForm("name"); name != "" {
			product.Name = name
		}
		if description, ok := c.GetPostForm("description"); ok {
			product.Description = description
		}
		if unitPriceStr := c.PostForm("unit_price"); unitPriceStr != "" {
			unitPrice, err := decimal.NewFromString(unitPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit_price"})
				return
			}
			product.UnitPrice = unitPrice
		}
		if quantityStr := c.PostForm("quantity_on_hand"); quantityStr != "" {
			quantity, err := strconv.Atoi(quantityStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity_on_hand"})
				return
			}
			product.QuantityOnHand = quantity
		}

		imagePath, err := saveProductImage(c, uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if imagePath != "" {
			product.Image = imagePath
		}

		if err := db.Save(product).Error; err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
