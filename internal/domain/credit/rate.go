package credit

// SuggestedRate maps a credit score to the tiered base annual rate, in
// percent. Bands are inclusive on their lower bound; the first matching
// band wins.
func SuggestedRate(score int) float64 {
	switch {
	case score >= 750:
		return 8.0
	case score >= 650:
		return 10.0
	case score >= 550:
		return 12.0
	default:
		return 15.0
	}
}
