package payment

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"credit-approval-system/internal/domain/loan"
	"credit-approval-system/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type MakeInput struct {
	LoanID        string  `json:"loan_id"`
	PaymentAmount float64 `json:"payment_amount"`
}

type PaymentDTO struct {
	Message       string  `json:"message"`
	LoanID        string  `json:"loan_id"`
	PaymentAmount float64 `json:"payment_amount"`
	PaymentDate   string  `json:"payment_date"`
	OnTime        bool    `json:"on_time"`
}

// Make appends a payment event and, when the amount matches the loan's
// installment within tolerance, bumps the on-time counter. Payments are
// recorded, not amortized: current_debt is intentionally left untouched
// (the source system never reduces it on payment), and the on-time counter
// is not capped at tenure.
func (u *Usecase) Make(ctx context.Context, in MakeInput) (*PaymentDTO, error) {
	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		p := &loan.Payment{
			LoanID:        l.LoanID,
			PaymentAmount: in.PaymentAmount,
			PaymentDate:   time.Now().UTC(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		onTime := math.Abs(in.PaymentAmount-l.MonthlyRepayment) < loan.OnTimeTolerance
		if onTime {
			if err := r.Loans.IncrementEMIsPaidOnTime(ctx, l.LoanID); err != nil {
				return err
			}
		}

		dto = &PaymentDTO{
			Message:       "Payment recorded successfully",
			LoanID:        l.LoanID,
			PaymentAmount: in.PaymentAmount,
			PaymentDate:   p.PaymentDate.Format("2006-01-02"),
			OnTime:        onTime,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
