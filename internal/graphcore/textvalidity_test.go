package graphcore

import "testing"

func TestContainsLetterAndDigit(t *testing.T) {
	cases := map[string]bool{
		"FT-101": true,
		"101":    false,
		"FT":     false,
		"":       false,
	}
	for in, want := range cases {
		if got := containsLetterAndDigit(in); got != want {
			t.Errorf("containsLetterAndDigit(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContainsOnlyOneNumberOrFraction(t *testing.T) {
	cases := map[string]bool{
		"3":     true,
		" 3/4 ": true,
		"FT-1":  false,
		"3/4x1": false,
	}
	for in, want := range cases {
		if got := containsOnlyOneNumberOrFraction(in); got != want {
			t.Errorf("containsOnlyOneNumberOrFraction(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsSymbolTextInvalid(t *testing.T) {
	cases := map[string]bool{
		`3/4"x1/2"`: true,
		`1"`:        true,
		"FT-101":    false,
		"3/4":       false,
	}
	for in, want := range cases {
		if got := isSymbolTextInvalid(in); got != want {
			t.Errorf("isSymbolTextInvalid(%q) = %v, want %v", in, got, want)
		}
	}
}
