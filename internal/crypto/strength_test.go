package crypto

import "testing"

func TestScorePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		points   int
	}{
		{"", 0},
		{"abc", 1},               // lowercase only
		{"ABC", 1},               // uppercase only
		{"12345678", 2},          // length + digit
		{"Abcdef12", 4},          // length + upper + lower + digit
		{"Abcdef1!", 5},          // all five
		{"aB1@", 4},              // all classes but too short
		{"abcdefgh", 2},          // length + lower
		{"p^ssword", 2},          // ^ is not in the special set
		{"P@$$w0rd!LongEnough", 5},
	}
	for _, tt := range tests {
		if got := ScorePassword(tt.password); got != tt.points {
			t.Fatalf("ScorePassword(%q)=%d, want %d", tt.password, got, tt.points)
		}
	}
}

func TestClassifyPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		want     Strength
	}{
		{"abc", Weak},
		{"12345678", Weak},
		{"abcdefG1", Medium},
		{"Abcdef12", Medium},
		{"Abcdef1!", Strong},
	}
	for _, tt := range tests {
		if got := ClassifyPassword(tt.password); got != tt.want {
			t.Fatalf("ClassifyPassword(%q)=%s, want %s", tt.password, got, tt.want)
		}
	}
}
