package emailcontroller

import (
	"net/http"

	"github.com/Tindae2022/Inventory-Management/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SendEmailRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Recipient string `json:"recipient" binding:"required,email"`
}

// SendEmail delivers a notification message over SMTP. Delivery is
// synchronous and best-effort: a failure is reported to the caller and
// never retried.
func SendEmail(cfg config.SMTPConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "subject, message, and recipient are required"})
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", cfg.From)
		m.SetHeader("To", req.Recipient)
		m.SetHeader("Subject", req.Subject)
		m.SetBody("text/plain", req.Message)

		d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		if err := d.DialAndSend(m); err != nil {
			zap.L().Error("email delivery failed",
				zap.String("recipient", req.Recipient),
				zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
	}
}
