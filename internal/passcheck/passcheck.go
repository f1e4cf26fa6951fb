// Package passcheck scores password strength for the Password Lab.
// Pure and stateless: no input ever leaves the process.
package passcheck

import "unicode"

// MaxScore is the highest strength score a password can reach.
const MaxScore = 6

// Score rates a password 0..6: one point each for length >= 8,
// length >= 12, an upper-case letter, a lower-case letter, a digit,
// and a symbol.
func Score(password string) int {
	runes := []rune(password)

	score := 0
	if len(runes) >= 8 {
		score++
	}
	if len(runes) >= 12 {
		score++
	}

	var upper, lower, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	for _, hit := range []bool{upper, lower, digit, symbol} {
		if hit {
			score++
		}
	}
	return score
}

// Label buckets a score into a human rating.
func Label(score int) string {
	switch {
	case score <= 2:
		return "Weak"
	case score <= 4:
		return "Moderate"
	default:
		return "Strong"
	}
}

// Check is one strength criterion and whether the password meets it.
type Check struct {
	Name string
	Met  bool
}

// Checks evaluates each criterion individually, in the order Score
// counts them.
func Checks(password string) []Check {
	runes := []rune(password)

	var upper, lower, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	return []Check{
		{Name: "At least 8 characters", Met: len(runes) >= 8},
		{Name: "At least 12 characters", Met: len(runes) >= 12},
		{Name: "An upper-case letter", Met: upper},
		{Name: "A lower-case letter", Met: lower},
		{Name: "A digit", Met: digit},
		{Name: "A symbol", Met: symbol},
	}
}

// Fraction returns the score as a 0..1 fill fraction for a meter.
func Fraction(score int) float64 {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return 1
	}
	return float64(score) / float64(MaxScore)
}
