package credit

import "math"

// EMI computes the equated monthly installment for a principal amortized
// over tenure months at a nominal annual rate given in percent, using the
// standard annuity formula. The result is rounded to 2 decimal places.
//
// Callers must guarantee principal > 0 and tenure >= 1 (see ValidateTerms).
func EMI(principal, annualRate float64, tenure int) float64 {
	monthlyRate := annualRate / (12 * 100)
	if monthlyRate == 0 {
		return round2(principal / float64(tenure))
	}
	compound := math.Pow(1+monthlyRate, float64(tenure))
	return round2(principal * monthlyRate * compound / (compound - 1))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
