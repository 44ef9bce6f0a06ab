package productcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// saveProductImage stores an uploaded image under uploadDir with a
// uuid-prefixed filename and returns its public path.
func saveProductImage(c *gin.Context, uploadDir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil // image is optional
	}

	filename := uuid.NewString() + "_" + strings.ReplaceAll(file.Filename, " ", "_")
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return "/uploads/" + filename, nil
}

// CreateProduct creates a new product from a multipart form with an
// optional image upload.
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		unitPriceStr := c.PostForm("unit_price")
		quantityStr := c.PostForm("quantity_on_hand")
		if name == "" || unitPriceStr == "" || quantityStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, unit_price, and quantity_on_hand are required"})
			return
		}

		unitPrice, err := decimal.NewFromString(unitPriceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit_price"})
			return
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity_on_hand"})
			return
		}

		imagePath, err := saveProductImage(c, uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Name:           name,
			Description:    c.PostForm("description"),
			UnitPrice:      unitPrice,
			QuantityOnHand: quantity,
			Image:          imagePath,
		}

		if err := db.Create(&product).Error; err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
