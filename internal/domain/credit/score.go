package credit

import (
	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
)

const (
	baseScore = 500
	minScore  = 300
	maxScore  = 850
)

// Score derives a credit score from the customer's current financial state
// and full loan history. The score is never persisted; it is recomputed on
// every evaluation.
//
// Weighted additive model on a base of 500:
//   - payment history, max 200: on-time EMIs over total scheduled EMIs
//   - debt ratio, max 150: headroom under the approved limit; goes
//     negative when current_debt exceeds the limit, which is intentional
//   - loan activity: +100 for any history, +50 more for > 3 loans
//   - income ratio, max 50: salary above twice the average loan amount
//
// Each component is truncated toward zero independently before summing;
// only the final sum is clamped to [300, 850]. A customer with no history
// scores exactly 500.
func Score(c *customer.Customer, history []loan.Loan) int {
	score := baseScore

	if len(history) == 0 {
		return score
	}

	var totalEMIs, paidOnTime int
	var totalAmount float64
	for _, l := range history {
		totalEMIs += l.Tenure
		paidOnTime += l.EMIsPaidOnTime
		totalAmount += l.LoanAmount
	}

	paymentRatio := 0.0
	if totalEMIs > 0 {
		paymentRatio = float64(paidOnTime) / float64(totalEMIs)
	}
	score += int(paymentRatio * 200)

	limit := c.ApprovedLimit
	if limit == 0 {
		limit = 1
	}
	debtRatio := c.CurrentDebt / limit
	score += int((1 - debtRatio) * 150)

	score += 100
	if len(history) > 3 {
		score += 50
	}

	avgLoanAmount := totalAmount / float64(len(history))
	if avgLoanAmount > 0 && c.MonthlySalary/avgLoanAmount > 2 {
		score += 50
	}

	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return score
}
