package uowmock

import (
	"context"

	"gorm.io/gorm"

	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
	"credit-approval-system/internal/domain/uow"
	"credit-approval-system/internal/testutil/customermock"
	"credit-approval-system/internal/testutil/loanmock"
)

var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is an in-memory unit of work for usecase tests: no real transaction,
// the callback just runs against the configured mocks. Customers/Loans
// seed the row the locking variants hand to the callback.
type UoW struct {
	Customers map[string]*customer.Customer
	Loans     map[string]*loan.Loan

	CustomerRepo *customermock.Repo
	LoanRepo     *loanmock.Repo
	PaymentRepo  *loanmock.PaymentRepo
}

func New() *UoW {
	return &UoW{
		Customers:    map[string]*customer.Customer{},
		Loans:        map[string]*loan.Loan{},
		CustomerRepo: &customermock.Repo{},
		LoanRepo:     &loanmock.Repo{},
		PaymentRepo:  &loanmock.PaymentRepo{},
	}
}

func (m *UoW) repos() uow.Repos {
	return uow.Repos{Customers: m.CustomerRepo, Loans: m.LoanRepo, Payments: m.PaymentRepo}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(m.repos())
}

func (m *UoW) WithinCustomerTx(ctx context.Context, customerID string, fn func(r uow.Repos, c *customer.Customer) error) error {
	c, ok := m.Customers[customerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return fn(m.repos(), c)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	l, ok := m.Loans[loanID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return fn(m.repos(), l)
}
