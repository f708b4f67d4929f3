package customer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("customer not found")

// ApprovedLimitMultiplier fixes the credit limit at registration time:
// round(36 x monthly salary). It is never recomputed afterwards.
const ApprovedLimitMultiplier = 36

type Customer struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID    string    `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	FirstName     string    `gorm:"size:64" json:"first_name"`
	LastName      string    `gorm:"size:64" json:"last_name"`
	PhoneNumber   *string   `gorm:"size:32" json:"phone_number,omitempty"`
	MonthlySalary float64   `gorm:"type:decimal(18,2)" json:"monthly_salary"`
	ApprovedLimit float64   `gorm:"type:decimal(18,2)" json:"approved_limit"`
	CurrentDebt   float64   `gorm:"type:decimal(18,2);default:0" json:"current_debt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) FullName() string { return c.FirstName + " " + c.LastName }
