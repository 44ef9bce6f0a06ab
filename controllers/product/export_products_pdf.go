package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// ExportProductsToPDF streams a tabular stock report of the full catalog.
func ExportProductsToPDF(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := models.AllProducts(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, "Product Stock Report", "", 1, "C", false, 0, "")
		pdf.Ln(4)

		headers := []string{"Name", "Unit Price", "Quantity on Hand", "Total Price"}
		widths := []float64{70, 40, 40, 40}

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for _, p := range products {
			pdf.CellFormat(widths[0], 7, p.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 7, p.UnitPrice.String(), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[2], 7, strconv.Itoa(p.QuantityOnHand), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[3], 7, p.TotalPrice.String(), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}

		c.Header("Content-Disposition", "attachment; filename=products.pdf")
		c.Header("Content-Type", "application/pdf")

		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write PDF file"})
			return
		}
	}
}
