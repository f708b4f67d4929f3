package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	// GetByCustomerIDForUpdate locks the customer row for the duration of
	// the surrounding transaction (SELECT ... FOR UPDATE).
	GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*Customer, error)
	// IncrementDebt adds amount to current_debt in place; callers must run
	// it in the same transaction as the loan insert it belongs to.
	IncrementDebt(ctx context.Context, customerID string, amount float64) error
	// Upsert replaces the stored customer by customer_id (bulk ingestion).
	Upsert(ctx context.Context, c *Customer) error
	Count(ctx context.Context) (int64, error)
}
