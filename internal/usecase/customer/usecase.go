package customer

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"credit-approval-system/internal/domain/credit"
	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
	"credit-approval-system/pkg/id"
)

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
}

func NewUsecase(customers customer.Repository, loans loan.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

type RegisterInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	MonthlySalary float64 `json:"monthly_salary"`
}

type RegisterDTO struct {
	CustomerID    string  `json:"customer_id"`
	Name          string  `json:"name"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	MonthlySalary float64 `json:"monthly_salary"`
	ApprovedLimit float64 `json:"approved_limit"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterDTO, error) {
	if in.FirstName == "" || in.LastName == "" || in.MonthlySalary <= 0 {
		return nil, errors.New("invalid input: first_name, last_name and a positive monthly_salary are required")
	}

	c := &customer.Customer{
		CustomerID:    id.NewID32(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		PhoneNumber:   in.PhoneNumber,
		MonthlySalary: in.MonthlySalary,
		ApprovedLimit: math.Round(customer.ApprovedLimitMultiplier * in.MonthlySalary),
		CurrentDebt:   0,
		CreatedAt:     time.Now().UTC(),
	}

	if err := u.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	return &RegisterDTO{
		CustomerID:    c.CustomerID,
		Name:          c.FullName(),
		PhoneNumber:   c.PhoneNumber,
		MonthlySalary: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
	}, nil
}

type ProfileDTO struct {
	CustomerID    string  `json:"customer_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	MonthlySalary float64 `json:"monthly_salary"`
	ApprovedLimit float64 `json:"approved_limit"`
	CurrentDebt   float64 `json:"current_debt"`
	CreditScore   int     `json:"credit_score"`
	TotalLoans    int     `json:"total_loans"`
	ActiveLoans   int     `json:"active_loans"`
}

// Get returns the stored profile plus a freshly derived credit score; the
// score itself is never persisted.
func (u *Usecase) Get(ctx context.Context, customerID string) (*ProfileDTO, error) {
	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	history, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, l := range history {
		if l.Status == loan.StatusActive {
			active++
		}
	}

	return &ProfileDTO{
		CustomerID:    c.CustomerID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		PhoneNumber:   c.PhoneNumber,
		MonthlySalary: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
		CurrentDebt:   c.CurrentDebt,
		CreditScore:   credit.Score(c, history),
		TotalLoans:    len(history),
		ActiveLoans:   active,
	}, nil
}
