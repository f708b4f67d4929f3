package loan

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("loan not found")

const (
	StatusActive = "active"

	// OnTimeTolerance is the maximum difference between a payment and the
	// loan's monthly installment for the payment to count as on schedule.
	OnTimeTolerance = 0.01

	// DaysPerTenureMonth converts tenure months into the loan term:
	// end_date = start_date + tenure * 30 days.
	DaysPerTenureMonth = 30
)

type Loan struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID           string    `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID       string    `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	LoanAmount       float64   `gorm:"type:decimal(18,2)" json:"loan_amount"`
	Tenure           int       `json:"tenure"`
	InterestRate     float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	MonthlyRepayment float64   `gorm:"type:decimal(18,2)" json:"monthly_repayment"`
	// explicit column: gorm's naming strategy would split "EMIs" into "em_is"
	EMIsPaidOnTime   int       `gorm:"column:emis_paid_on_time;default:0" json:"emis_paid_on_time"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Status           string    `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Term returns the loan's start/end window for a given start moment.
func Term(start time.Time, tenure int) (time.Time, time.Time) {
	return start, start.Add(time.Duration(tenure) * DaysPerTenureMonth * 24 * time.Hour)
}

// Payment is an append-only event; rows are never updated or deleted.
type Payment struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID        string    `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	PaymentAmount float64   `gorm:"type:decimal(18,2)" json:"payment_amount"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Payment) TableName() string { return "loan_payments" }

// Stats is the aggregate row the storage collaborator computes over the
// whole portfolio. AvgPaymentRate averages emis_paid_on_time/tenure over
// loans with a positive tenure, in [0, 1].
type Stats struct {
	TotalLoans     int64
	TotalAmount    float64
	AvgPaymentRate float64
}
