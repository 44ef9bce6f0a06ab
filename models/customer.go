package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Sales       []Sale    `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Customer) BeforeSave(tx *gorm.DB) error {
	if c.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(c.Email, "@") {
		return &ValidationError{Field: "email", Message: "not a valid email address"}
	}
	return nil
}

// CreateCustomer inserts a customer, mapping unique-constraint violations
// on email to ErrDuplicateEmail.
func CreateCustomer(db *gorm.DB, customer *Customer) error {
	if err := db.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UpdateCustomer persists edits to an existing customer.
func UpdateCustomer(db *gorm.DB, customer *Customer) error {
	if err := db.Save(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetCustomer fetches a single customer by id.
func GetCustomer(db *gorm.DB, id uint) (*Customer, error) {
	var customer Customer
	if err := db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// AllCustomers returns every customer ordered by name.
func AllCustomers(db *gorm.DB) ([]Customer, error) {
	var customers []Customer
	err := db.Order("first_name, last_name").Find(&customers).Error
	return customers, err
}

// CustomersWithSales returns customers that have at least one sale
// referencing an existing product.
func CustomersWithSales(db *gorm.DB) ([]Customer, error) {
	var customers []Customer
	err := db.
		Joins("JOIN sales ON sales.customer_id = customers.id").
		Where("sales.product_id IS NOT NULL").
		Distinct("customers.*").
		Order("first_name, last_name").
		Find(&customers).Error
	return customers, err
}

// SearchCustomersByEmail does a case-insensitive substring match on email.
func SearchCustomersByEmail(db *gorm.DB, query string) ([]Customer, error) {
	var customers []Customer
	err := db.Where("LOWER(email) LIKE LOWER(?)", "%"+query+"%").
		Order("first_name, last_name").Find(&customers).Error
	return customers, err
}

// SearchCustomersByName does a case-insensitive substring match on first name.
func SearchCustomersByName(db *gorm.DB, query string) ([]Customer, error) {
	var customers []Customer
	err := db.Where("LOWER(first_name) LIKE LOWER(?)", "%"+query+"%").
		Order("first_name, last_name").Find(&customers).Error
	return customers, err
}
