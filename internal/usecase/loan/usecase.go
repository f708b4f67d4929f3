package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"credit-approval-system/internal/domain/credit"
	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
	"credit-approval-system/internal/domain/uow"
	"credit-approval-system/pkg/id"
)

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(customers customer.Repository, loans loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{customers: customers, loans: loans, uow: tx}
}

type CreateInput struct {
	CustomerID   string  `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type CreateDTO struct {
	LoanID             string  `json:"loan_id"`
	CustomerID         string  `json:"customer_id"`
	LoanApproved       bool    `json:"loan_approved"`
	Message            string  `json:"message"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

// Create re-runs the full eligibility cascade rather than trusting a prior
// check, then persists the loan and the debt increment in one transaction
// under a customer row lock. The supplied rate is treated as pre-corrected
// from an earlier eligibility call, so the installment is fixed at that
// rate — only the reject rules apply here.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CreateDTO, error) {
	if err := credit.ValidateTerms(in.LoanAmount, in.InterestRate, in.Tenure); err != nil {
		return nil, err
	}

	var dto *CreateDTO
	err := u.uow.WithinCustomerTx(ctx, in.CustomerID, func(r uow.Repos, c *customer.Customer) error {
		history, err := r.Loans.ListByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return err
		}

		d, err := credit.Evaluate(c, history, in.LoanAmount, in.InterestRate, in.Tenure)
		if err != nil {
			return err
		}
		if !d.Approved {
			return fmt.Errorf("%w: %s", credit.ErrNotEligible, d.Reason)
		}

		emi := credit.EMI(in.LoanAmount, in.InterestRate, in.Tenure)
		start, end := loan.Term(time.Now().UTC(), in.Tenure)
		l := &loan.Loan{
			LoanID:           id.NewID32(),
			CustomerID:       in.CustomerID,
			LoanAmount:       in.LoanAmount,
			Tenure:           in.Tenure,
			InterestRate:     in.InterestRate,
			MonthlyRepayment: emi,
			EMIsPaidOnTime:   0,
			StartDate:        start,
			EndDate:          end,
			Status:           loan.StatusActive,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		// same tx as the insert: debt moves iff the loan exists
		if err := r.Customers.IncrementDebt(ctx, in.CustomerID, in.LoanAmount); err != nil {
			return err
		}

		dto = &CreateDTO{
			LoanID:             l.LoanID,
			CustomerID:         l.CustomerID,
			LoanApproved:       true,
			Message:            "Loan approved successfully",
			MonthlyInstallment: l.MonthlyRepayment,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

type CustomerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type DetailDTO struct {
	LoanID             string      `json:"loan_id"`
	Customer           CustomerRef `json:"customer"`
	LoanAmount         float64     `json:"loan_amount"`
	InterestRate       float64     `json:"interest_rate"`
	MonthlyInstallment float64     `json:"monthly_installment"`
	Tenure             int         `json:"tenure"`
	EMIsPaidOnTime     int         `json:"emis_paid_on_time"`
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	Status             string      `json:"status"`
}

func (u *Usecase) View(ctx context.Context, loanID string) (*DetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	c, err := u.customers.GetByCustomerID(ctx, l.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	return &DetailDTO{
		LoanID:             l.LoanID,
		Customer:           CustomerRef{ID: c.CustomerID, FirstName: c.FirstName, LastName: c.LastName},
		LoanAmount:         l.LoanAmount,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyRepayment,
		Tenure:             l.Tenure,
		EMIsPaidOnTime:     l.EMIsPaidOnTime,
		StartDate:          l.StartDate,
		EndDate:            l.EndDate,
		Status:             l.Status,
	}, nil
}

type SummaryDTO struct {
	LoanID             string  `json:"loan_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRate       float64 `json:"interest_rate"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	RepaymentsLeft     int     `json:"repayments_left"`
	Status             string  `json:"status"`
}

// ListByCustomer returns one summary per loan; an empty slice (not an
// error) when the customer has none.
func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]SummaryDTO, error) {
	history, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]SummaryDTO, 0, len(history))
	for _, l := range history {
		out = append(out, SummaryDTO{
			LoanID:             l.LoanID,
			LoanAmount:         l.LoanAmount,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyRepayment,
			RepaymentsLeft:     l.Tenure - l.EMIsPaidOnTime,
			Status:             l.Status,
		})
	}
	return out, nil
}

type StatsDTO struct {
	TotalCustomers  int64   `json:"total_customers"`
	TotalLoans      int64   `json:"total_loans"`
	TotalLoanAmount float64 `json:"total_loan_amount"`
	AvgPaymentRate  float64 `json:"average_payment_rate"`
	DefaultRate     float64 `json:"default_rate"`
}

// Stats reports portfolio aggregates; the heavy lifting is done by the
// storage collaborator, rates are converted to percentages here.
func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	customers, err := u.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	s, err := u.loans.Stats(ctx)
	if err != nil {
		return nil, err
	}
	defaultRate := (1 - s.AvgPaymentRate) * 100
	if defaultRate < 0 {
		defaultRate = 0
	}
	return &StatsDTO{
		TotalCustomers:  customers,
		TotalLoans:      s.TotalLoans,
		TotalLoanAmount: s.TotalAmount,
		AvgPaymentRate:  s.AvgPaymentRate * 100,
		DefaultRate:     defaultRate,
	}, nil
}
