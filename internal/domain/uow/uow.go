package uow

import (
	"context"

	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
)

type Repos struct {
	Customers customer.Repository
	Loans     loan.Repository
	Payments  loan.PaymentRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the customer row first, then pass it in. Serializes
	// concurrent loan creations racing on current_debt.
	WithinCustomerTx(ctx context.Context, customerID string, fn func(r Repos, c *customer.Customer) error) error
	// same, keyed by loan (payment application).
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
