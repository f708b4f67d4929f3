package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customerDomain "credit-approval-system/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := lockForUpdate(r.db.WithContext(ctx)).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

// IncrementDebt applies the debt delta in SQL so concurrent writers cannot
// lose updates; run it in the same tx as the loan insert it belongs to.
func (r *CustomerRepository) IncrementDebt(ctx context.Context, customerID string, amount float64) error {
	res := r.db.WithContext(ctx).Model(&customerDomain.Customer{}).
		Where("customer_id = ?", customerID).
		UpdateColumn("current_debt", gorm.Expr("current_debt + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		UpdateAll: true,
	}).Create(c).Error
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&customerDomain.Customer{}).Count(&n).Error
	return n, err
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
// sqlite (used in tests) serializes writers on its own; it has no row locks.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
