package mysql

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "credit-approval-system/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := lockForUpdate(r.db.WithContext(ctx)).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&out)
	return out, res.Error
}

func (r *LoanRepository) IncrementEMIsPaidOnTime(ctx context.Context, loanID string) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		UpdateColumn("emis_paid_on_time", gorm.Expr("emis_paid_on_time + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LoanRepository) Upsert(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "loan_id"}},
		UpdateAll: true,
	}).Create(l).Error
}

// Stats computes the portfolio aggregates in SQL; the engine never loads
// the whole book into memory for this.
func (r *LoanRepository) Stats(ctx context.Context) (*loanDomain.Stats, error) {
	var out loanDomain.Stats

	if err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Count(&out.TotalLoans).Error; err != nil {
		return nil, err
	}

	var total sql.NullFloat64
	row := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("SUM(loan_amount)").Row()
	if err := row.Scan(&total); err != nil {
		return nil, err
	}
	out.TotalAmount = total.Float64

	var avg sql.NullFloat64
	row = r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("tenure > 0").
		Select("AVG(emis_paid_on_time * 1.0 / tenure)").Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	out.AvgPaymentRate = avg.Float64

	return &out, nil
}

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]loanDomain.Payment, error) {
	var out []loanDomain.Payment
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("payment_date ASC, id ASC").Find(&out)
	return out, res.Error
}
