package domain

import "unicode"

// StrengthLevel classifies a candidate password.
type StrengthLevel string

const (
	StrengthWeak         StrengthLevel = "Weak"
	StrengthIntermediate StrengthLevel = "Intermediate"
	StrengthStrong       StrengthLevel = "Strong"
)

// PasswordStrength is the advisory verdict for a candidate password.
type PasswordStrength struct {
	Level StrengthLevel `json:"level"`
	Notes []string      `json:"notes"`
}

// CheckPasswordStrength scores a candidate against four composition rules:
// one point each for length >= 8, mixed upper/lower case, a digit, and a
// non-alphanumeric character. Score <= 2 is Weak (with the unmet rules as
// notes), exactly 3 is Intermediate, 4 is Strong. The evaluator is advisory:
// registration rejects Weak outright but does not enforce individual rules,
// so an Intermediate password may still lack a symbol.
func CheckPasswordStrength(password string) PasswordStrength {
	score := 0
	var notes []string

	if len(password) >= 8 {
		score++
	} else {
		notes = append(notes, "must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if hasUpper && hasLower {
		score++
	} else {
		notes = append(notes, "must include uppercase and lowercase letters")
	}
	if hasDigit {
		score++
	} else {
		notes = append(notes, "must include numbers")
	}
	if hasSymbol {
		score++
	} else {
		notes = append(notes, "must include symbols or special characters")
	}

	switch {
	case score <= 2:
		return PasswordStrength{Level: StrengthWeak, Notes: notes}
	case score == 3:
		return PasswordStrength{Level: StrengthIntermediate, Notes: []string{"adding more symbols is recommended"}}
	default:
		return PasswordStrength{Level: StrengthStrong, Notes: []string{"strong password"}}
	}
}
