package eligibility

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"credit-approval-system/internal/domain/credit"
	domain "credit-approval-system/internal/domain/customer"
	loandomain "credit-approval-system/internal/domain/loan"
	"credit-approval-system/internal/testutil/customermock"
	"credit-approval-system/internal/testutil/loanmock"
)

const cid = "cccccccccccccccccccccccccccccccc"

func freshCustomerRepo() *customermock.Repo {
	return &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*domain.Customer, error) {
			return &domain.Customer{
				CustomerID: cid, MonthlySalary: 50000, ApprovedLimit: 1800000, CurrentDebt: 0,
			}, nil
		},
	}
}

func TestCheck_FirstLoanCorrectsRate(t *testing.T) {
	uc := NewUsecase(freshCustomerRepo(), &loanmock.Repo{})

	dto, err := uc.Check(context.Background(), CheckInput{
		CustomerID: cid, LoanAmount: 100000, InterestRate: 10.0, Tenure: 12,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !dto.Approval {
		t.Fatal("want approval")
	}
	if dto.CreditScore != 500 {
		t.Fatalf("credit_score = %d, want 500 for empty history", dto.CreditScore)
	}
	if dto.InterestRate != 15.0 || dto.CorrectedInterestRate != 15.0 {
		t.Fatalf("rate = %v/%v, want corrected to 15.0", dto.InterestRate, dto.CorrectedInterestRate)
	}
	if dto.MonthlyInstallment != 9025.83 {
		t.Fatalf("installment = %v, want 9025.83", dto.MonthlyInstallment)
	}
}

func TestCheck_RejectIsNotAnError(t *testing.T) {
	// existing loans with zero on-time payments and maxed-out debt
	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*domain.Customer, error) {
			return &domain.Customer{
				CustomerID: cid, MonthlySalary: 50000, ApprovedLimit: 1800000, CurrentDebt: 3600000,
			}, nil
		},
	}
	loans := &loanmock.Repo{
		ListByCustomerIDFn: func(ctx context.Context, customerID string) ([]loandomain.Loan, error) {
			return []loandomain.Loan{{Tenure: 12, EMIsPaidOnTime: 0, LoanAmount: 100000, MonthlyRepayment: 8791.59}}, nil
		},
	}
	uc := NewUsecase(customers, loans)

	dto, err := uc.Check(context.Background(), CheckInput{
		CustomerID: cid, LoanAmount: 100000, InterestRate: 10.0, Tenure: 12,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if dto.Approval {
		t.Fatalf("want reject, got %+v", dto)
	}
	if dto.CreditScore >= 500 {
		t.Fatalf("credit_score = %d, fixture should be below 500", dto.CreditScore)
	}
}

func TestCheck_CustomerNotFound(t *testing.T) {
	uc := NewUsecase(&customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*domain.Customer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, &loanmock.Repo{})

	_, err := uc.Check(context.Background(), CheckInput{CustomerID: cid, LoanAmount: 100000, InterestRate: 10, Tenure: 12})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want customer.ErrNotFound", err)
	}
}

func TestCheck_InvalidTerms(t *testing.T) {
	uc := NewUsecase(freshCustomerRepo(), &loanmock.Repo{})

	_, err := uc.Check(context.Background(), CheckInput{CustomerID: cid, LoanAmount: 100000, InterestRate: 10, Tenure: 0})
	if !errors.Is(err, credit.ErrInvalidTerms) {
		t.Fatalf("err = %v, want ErrInvalidTerms", err)
	}
}
