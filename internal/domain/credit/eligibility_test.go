package credit

import (
	"errors"
	"testing"

	"credit-approval-system/internal/domain/loan"
)

func TestEvaluate_FirstLoanGetsCorrectedRate(t *testing.T) {
	// Fresh customer: salary 50000, limit 36x = 1800000, no history.
	// Score is exactly 500, which passes the < 500 rule; the < 650 rule
	// then corrects the rate up to the sub-550 tier of 15%.
	c := cust(50000, 1800000, 0)

	d, err := Evaluate(c, nil, 100000, 10.0, 12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !d.Approved {
		t.Fatalf("want approval, got reject (%s)", d.Reason)
	}
	if d.CreditScore != 500 {
		t.Fatalf("score = %d, want 500", d.CreditScore)
	}
	if d.InterestRate != 15.0 {
		t.Fatalf("effective rate = %v, want 15.0", d.InterestRate)
	}
	if d.MonthlyInstallment != 9025.83 {
		t.Fatalf("installment = %v, want 9025.83 (recomputed at 15%%)", d.MonthlyInstallment)
	}
	if d.Tenure != 12 {
		t.Fatalf("tenure = %d, want 12", d.Tenure)
	}
}

func TestEvaluate_RequestedRateKeptWhenAboveTier(t *testing.T) {
	c := cust(50000, 1800000, 0)

	d, err := Evaluate(c, nil, 100000, 16.0, 12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !d.Approved || d.InterestRate != 16.0 {
		t.Fatalf("decision = %+v, want approval at the requested 16.0", d)
	}
	if d.MonthlyInstallment != 9073.09 {
		t.Fatalf("installment = %v, want 9073.09 (at the requested rate)", d.MonthlyInstallment)
	}
}

func TestEvaluate_RejectsLowScore(t *testing.T) {
	// History with zero on-time payments and debt over the limit:
	// 500 + 0 - 150 + 100 = 450 < 500. Other ratios are irrelevant; the
	// score rule decides first.
	c := cust(100000, 1800000, 3_600_000)
	history := []loan.Loan{{Tenure: 12, EMIsPaidOnTime: 0, LoanAmount: 100000, MonthlyRepayment: 100}}

	d, err := Evaluate(c, history, 1000, 10.0, 12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if d.Approved || d.Reason != ReasonLowScore {
		t.Fatalf("decision = %+v, want low-score reject", d)
	}
}

func TestEvaluate_RejectsEMIBurden(t *testing.T) {
	// Strong score (perfect history, no debt) but existing installments
	// already consume half the salary.
	c := cust(20000, 1800000, 0)
	history := []loan.Loan{{Tenure: 12, EMIsPaidOnTime: 12, LoanAmount: 100000, MonthlyRepayment: 9000}}

	d, err := Evaluate(c, history, 50000, 10.0, 12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if d.Approved || d.Reason != ReasonEMIBurden {
		t.Fatalf("decision = %+v, want EMI burden reject", d)
	}
}

func TestEvaluate_RejectsOverLimit(t *testing.T) {
	c := cust(500000, 1800000, 1_700_000)
	history := []loan.Loan{{Tenure: 12, EMIsPaidOnTime: 12, LoanAmount: 100000, MonthlyRepayment: 100}}

	d, err := Evaluate(c, history, 200000, 10.0, 12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if d.Approved || d.Reason != ReasonOverLimit {
		t.Fatalf("decision = %+v, want over-limit reject", d)
	}
}

func TestEvaluate_HighScoreKeepsRequestedRate(t *testing.T) {
	// Perfect history, zero debt, high income ratio: score clamps to 850,
	// so the requested rate stands even below the 8% tier.
	c := cust(500000, 1800000, 0)
	history := []loan.Loan{{Tenure: 12, EMIsPaidOnTime: 12, LoanAmount: 100000, MonthlyRepayment: 100}}

	d, err := Evaluate(c, history, 100000, 7.5, 12)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !d.Approved || d.InterestRate != 7.5 {
		t.Fatalf("decision = %+v, want approval at 7.5", d)
	}
	if d.CreditScore < 650 {
		t.Fatalf("score = %d, expected a >= 650 fixture", d.CreditScore)
	}
}

func TestEvaluate_InvalidTerms(t *testing.T) {
	c := cust(50000, 1800000, 0)
	for _, tc := range []struct {
		amount float64
		rate   float64
		tenure int
	}{
		{0, 10, 12},
		{-5000, 10, 12},
		{100000, -1, 12},
		{100000, 10, 0},
	} {
		_, err := Evaluate(c, nil, tc.amount, tc.rate, tc.tenure)
		if !errors.Is(err, ErrInvalidTerms) {
			t.Fatalf("Evaluate(%v, %v, %d) err = %v, want ErrInvalidTerms", tc.amount, tc.rate, tc.tenure, err)
		}
	}
}
