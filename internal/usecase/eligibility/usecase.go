package eligibility

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"credit-approval-system/internal/domain/credit"
	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
)

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
}

func NewUsecase(customers customer.Repository, loans loan.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

type CheckInput struct {
	CustomerID   string  `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type CheckDTO struct {
	CustomerID            string  `json:"customer_id"`
	Approval              bool    `json:"approval"`
	InterestRate          float64 `json:"interest_rate"`
	CorrectedInterestRate float64 `json:"corrected_interest_rate"`
	Tenure                int     `json:"tenure"`
	MonthlyInstallment    float64 `json:"monthly_installment"`
	CreditScore           int     `json:"credit_score"`
}

// Check runs the eligibility cascade without mutating anything. A reject is
// a normal negative result here, not an error.
func (u *Usecase) Check(ctx context.Context, in CheckInput) (*CheckDTO, error) {
	c, err := u.customers.GetByCustomerID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	history, err := u.loans.ListByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	d, err := credit.Evaluate(c, history, in.LoanAmount, in.InterestRate, in.Tenure)
	if err != nil {
		return nil, err
	}

	return &CheckDTO{
		CustomerID:            in.CustomerID,
		Approval:              d.Approved,
		InterestRate:          d.InterestRate,
		CorrectedInterestRate: d.InterestRate,
		Tenure:                d.Tenure,
		MonthlyInstallment:    d.MonthlyInstallment,
		CreditScore:           d.CreditScore,
	}, nil
}
