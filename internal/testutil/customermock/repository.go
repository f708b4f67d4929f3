package customermock

import (
	"context"

	"gorm.io/gorm"

	domain "credit-approval-system/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies customer.Repository.
// Fill in the function fields a test needs; unfilled getters report
// gorm.ErrRecordNotFound, unfilled writers succeed.
type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Customer) error
	GetByCustomerIDFn          func(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByCustomerIDForUpdateFn func(ctx context.Context, customerID string) (*domain.Customer, error)
	IncrementDebtFn            func(ctx context.Context, customerID string, amount float64) error
	UpsertFn                   func(ctx context.Context, c *domain.Customer) error
	CountFn                    func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDForUpdateFn != nil {
		return m.GetByCustomerIDForUpdateFn(ctx, customerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) IncrementDebt(ctx context.Context, customerID string, amount float64) error {
	if m.IncrementDebtFn != nil {
		return m.IncrementDebtFn(ctx, customerID, amount)
	}
	return nil
}

func (m *Repo) Upsert(ctx context.Context, c *domain.Customer) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, c)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
