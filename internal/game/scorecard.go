package game

// Rating buckets a single metric into the label shown on the scorecard.
func Rating(score int) string {
	switch {
	case score >= 85:
		return "VIRAL"
	case score >= 70:
		return "Strong"
	case score >= 50:
		return "Decent"
	case score >= 30:
		return "Weak"
	default:
		return "FAIL"
	}
}

// Verdict buckets the weighted total into the closing verdict line.
func Verdict(weightedTotal int) string {
	switch {
	case weightedTotal >= 80:
		return "YOUR CONTENT IS GOING VIRAL! The algorithm gods smile upon you."
	case weightedTotal >= 60:
		return "Solid content. You'll get decent reach but no blowup."
	case weightedTotal >= 40:
		return "Mid at best. The algorithm will bury this after the first batch."
	default:
		return "FAIL. This is getting 12 views and 3 of them are your alt accounts."
	}
}
