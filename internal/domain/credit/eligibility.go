package credit

import (
	"errors"

	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
)

var (
	ErrInvalidTerms = errors.New("invalid loan terms")
	ErrNotEligible  = errors.New("customer does not meet eligibility criteria")
)

type RejectReason string

const (
	ReasonNone      RejectReason = ""
	ReasonLowScore  RejectReason = "credit score below 500"
	ReasonEMIBurden RejectReason = "total EMI exceeds half of monthly income"
	ReasonOverLimit RejectReason = "new debt exceeds approved limit"
)

// Decision is the outcome of the eligibility cascade. InterestRate and
// MonthlyInstallment reflect the effective (possibly corrected) rate.
type Decision struct {
	Approved           bool
	Reason             RejectReason
	CreditScore        int
	InterestRate       float64
	Tenure             int
	MonthlyInstallment float64
}

// ValidateTerms rejects malformed numeric input before it can reach the
// scorer or the amortization formula.
func ValidateTerms(amount, rate float64, tenure int) error {
	if amount <= 0 || rate < 0 || tenure < 1 {
		return ErrInvalidTerms
	}
	return nil
}

// Evaluate runs the approval cascade for a requested loan against the
// customer's stored state and loan history. It is a pure computation: no
// state is read or written here.
//
// Rules, in priority order (first hit decides):
//  1. credit score < 500                  -> reject
//  2. total EMI / monthly salary > 0.5    -> reject
//  3. current debt + amount > limit       -> reject
//  4. credit score < 650                  -> approve at max(requested, suggested)
//  5. otherwise                           -> approve at the requested rate
//
// When rule 4 corrects the rate, the installment is recomputed at the
// effective rate; the trial installment at the requested rate still counts
// toward the EMI burden in rule 2.
func Evaluate(c *customer.Customer, history []loan.Loan, amount, rate float64, tenure int) (Decision, error) {
	if err := ValidateTerms(amount, rate, tenure); err != nil {
		return Decision{}, err
	}

	score := Score(c, history)
	trialEMI := EMI(amount, rate, tenure)

	totalEMI := trialEMI
	for _, l := range history {
		totalEMI += l.MonthlyRepayment
	}
	emiToIncome := totalEMI / c.MonthlySalary
	newDebt := c.CurrentDebt + amount

	d := Decision{
		Approved:           true,
		CreditScore:        score,
		InterestRate:       rate,
		Tenure:             tenure,
		MonthlyInstallment: trialEMI,
	}

	switch {
	case score < 500:
		d.Approved = false
		d.Reason = ReasonLowScore
	case emiToIncome > 0.5:
		d.Approved = false
		d.Reason = ReasonEMIBurden
	case newDebt > c.ApprovedLimit:
		d.Approved = false
		d.Reason = ReasonOverLimit
	case score < 650:
		// borrower cannot beat the policy tier for their score
		if suggested := SuggestedRate(score); suggested > rate {
			d.InterestRate = suggested
			d.MonthlyInstallment = EMI(amount, suggested, tenure)
		}
	}
	return d, nil
}
