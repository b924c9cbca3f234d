package crypto

// Strength classifies a password score.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

// String returns the human-readable classification.
func (s Strength) String() string {
	switch s {
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	default:
		return "Weak"
	}
}

// specials is the fixed set counted by the scorer.
const specials = "@$!%*?&#"

// ScorePassword awards one point each for: length >= 8, an uppercase
// letter, a lowercase letter, a digit, and a special character from
// specials. Pure function, usable as standalone input validation.
func ScorePassword(password string) int {
	points := 0
	if len(password) >= 8 {
		points++
	}
	var upper, lower, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			for _, sp := range specials {
				if c == sp {
					special = true
					break
				}
			}
		}
	}
	for _, hit := range []bool{upper, lower, digit, special} {
		if hit {
			points++
		}
	}
	return points
}

// ClassifyPassword maps the score to a Strength: 0-2 Weak, 3-4 Medium, 5 Strong.
func ClassifyPassword(password string) Strength {
	switch p := ScorePassword(password); {
	case p <= 2:
		return Weak
	case p <= 4:
		return Medium
	default:
		return Strong
	}
}
