package customercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// CreateCustomer registers a new customer. Email must be unique.
func CreateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		customer := models.Customer{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		}

		if err := models.CreateCustomer(db, &customer); err != nil {
			respondCustomerError(c, err, "Failed to create customer")
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

// GetCustomers lists customers. Query params:
//
//	email       - case-insensitive substring match on email
//	name        - case-insensitive substring match on first name
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			customers []models.Customer
			err       error
		)
		switch {
		case c.Query("email") != "":
			customers, err = models.SearchCustomersByEmail(db, c.Query("email"))
		case c.Query("name") != "":
			customers, err = models.SearchCustomersByName(db, c.Query("name"))
		default:
			customers, err = models.AllCustomers(db)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// GetCustomersWithSales lists customers that have at least one recorded sale.
func GetCustomersWithSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := models.CustomersWithSales(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// GetCustomerByID returns a single customer.
func GetCustomerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		customer, err := models.GetCustomer(db, uint(id))
		if err != nil {
			respondCustomerError(c, err, "Failed to retrieve customer")
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// UpdateCustomer edits an existing customer.
func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		customer, err := models.GetCustomer(db, uint(id))
		if err != nil {
			respondCustomerError(c, err, "Failed to retrieve customer")
			return
		}

		var req CustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		customer.FirstName = req.FirstName
		customer.LastName = req.LastName
		customer.Email = req.Email
		customer.PhoneNumber = req.PhoneNumber
		customer.Address = req.Address

		if err := models.UpdateCustomer(db, customer); err != nil {
			respondCustomerError(c, err, "Failed to update customer")
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// DeleteCustomer removes a customer. Past sales referencing the customer
// survive with their customer reference cleared.
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		customer, err := models.GetCustomer(db, uint(id))
		if err != nil {
			respondCustomerError(c, err, "Failed to retrieve customer")
			return
		}
		if err := db.Delete(customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}

func respondCustomerError(c *gin.Context, err error, fallback string) {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, models.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
