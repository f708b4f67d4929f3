package credit

import (
	"testing"

	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
)

func cust(salary, limit, debt float64) *customer.Customer {
	return &customer.Customer{MonthlySalary: salary, ApprovedLimit: limit, CurrentDebt: debt}
}

func histLoan(tenure, onTime int, amount float64) loan.Loan {
	return loan.Loan{Tenure: tenure, EMIsPaidOnTime: onTime, LoanAmount: amount}
}

func TestScore_NoHistoryIsBase(t *testing.T) {
	if got := Score(cust(50000, 1800000, 0), nil); got != 500 {
		t.Fatalf("score = %d, want exactly 500", got)
	}
	if got := Score(cust(0, 0, 0), []loan.Loan{}); got != 500 {
		t.Fatalf("score = %d, want exactly 500", got)
	}
}

func TestScore_Components(t *testing.T) {
	cases := []struct {
		name  string
		c     *customer.Customer
		loans []loan.Loan
		want  int
	}{
		{
			// 500 + 100 (half on time) + 75 (debt ratio 0.5) + 100 activity
			name:  "half payment history, half debt",
			c:     cust(50000, 1800000, 900000),
			loans: []loan.Loan{histLoan(12, 6, 100000)},
			want:  775,
		},
		{
			// debt ratio 2.0 drags the score: 500 + 0 - 150 + 100
			name:  "overleveraged customer loses points",
			c:     cust(20000, 1800000, 3600000),
			loans: []loan.Loan{histLoan(12, 0, 900000)},
			want:  450,
		},
		{
			// 500 + 100 + 14 (debt ratio 0.9, (1-0.9)*150 truncates to 14
			// in float64) + 100 + 50 (five loans)
			name:  "more than three loans adds activity bonus",
			c:     cust(10000, 1000000, 900000),
			loans: []loan.Loan{histLoan(10, 5, 500000), histLoan(10, 5, 500000), histLoan(10, 5, 500000), histLoan(10, 5, 500000), histLoan(10, 5, 500000)},
			want:  764,
		},
		{
			// income ratio > 2 adds 50: 500 + 100 + 75 + 100 + 50 = 825
			name:  "salary well above average loan",
			c:     cust(250000, 1800000, 900000),
			loans: []loan.Loan{histLoan(12, 6, 100000)},
			want:  825,
		},
		{
			// zero approved limit treated as denominator 1
			name:  "zero limit guard",
			c:     cust(50000, 0, 0),
			loans: []loan.Loan{histLoan(12, 6, 100000)},
			want:  850,
		},
		{
			// zero total tenure => payment ratio 0, not a division error
			name:  "zero tenure guard",
			c:     cust(50000, 1800000, 0),
			loans: []loan.Loan{histLoan(0, 0, 100000)},
			want:  750,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.c, tc.loans); got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScore_ComponentTruncation(t *testing.T) {
	// payment ratio 7/12 -> 116.66..., must truncate to 116, not round to 117.
	// 500 + 116 + 150 + 100 = 866 -> clamped to 850; drop the debt component
	// instead so truncation is observable: debt ratio 0.99 -> int(0.01*150)=1.
	c := cust(10000, 1000000, 990000)
	got := Score(c, []loan.Loan{histLoan(12, 7, 500000)})
	// 500 + 116 + 1 + 100 = 717
	if got != 717 {
		t.Fatalf("score = %d, want 717 (per-component truncation)", got)
	}
}

func TestScore_AlwaysInBounds(t *testing.T) {
	extremes := []struct {
		c     *customer.Customer
		loans []loan.Loan
	}{
		{cust(1_000_000, 1_000_000, 0), []loan.Loan{histLoan(12, 12, 1000)}},
		{cust(0, 1000, 1_000_000_000), []loan.Loan{histLoan(12, 0, 1_000_000)}},
		{cust(0, 0, 0), []loan.Loan{histLoan(0, 0, 0)}},
	}
	for _, e := range extremes {
		got := Score(e.c, e.loans)
		if got < 300 || got > 850 {
			t.Fatalf("score %d out of [300, 850] for %+v", got, e.c)
		}
	}
}
