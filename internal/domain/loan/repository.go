package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	// IncrementEMIsPaidOnTime bumps the on-time counter by one. There is
	// deliberately no upper bound tied to tenure.
	IncrementEMIsPaidOnTime(ctx context.Context, loanID string) error
	// Upsert replaces the stored loan by loan_id (bulk ingestion).
	Upsert(ctx context.Context, l *Loan) error
	Stats(ctx context.Context) (*Stats, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
}
