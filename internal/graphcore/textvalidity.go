package graphcore

import "regexp"

var (
	reOnlyNumberOrFraction = regexp.MustCompile(`^[\s]*([0-9]+|[0-9]+/[0-9]+)[\s]*$`)
	reLetterAndDigit       = regexp.MustCompile(`[a-zA-Z]`)
	reDigit                = regexp.MustCompile(`[0-9]`)
	reDimensionMultiply    = regexp.MustCompile(`^([0-9]+|[0-9]+/[0-9]+)["%*]*[\s]*[xX][\s]*.*([0-9]+|[0-9]+/[0-9]+)["%*]*.*$`)
	reDimensionSingle      = regexp.MustCompile(`^([0-9]+|[0-9]+/[0-9]+)["%*]+$`)
)

// containsOnlyOneNumberOrFraction reports whether s is exactly a bare
// integer or fraction, optionally surrounded by whitespace.
func containsOnlyOneNumberOrFraction(s string) bool {
	return reOnlyNumberOrFraction.MatchString(s)
}

// containsLetterAndDigit reports whether s has at least one letter and one
// digit anywhere in it, the minimal shape of a real asset tag like "FT-101".
func containsLetterAndDigit(s string) bool {
	return reLetterAndDigit.MatchString(s) && reDigit.MatchString(s)
}

// isSymbolTextInvalid reports whether s looks like dimension noise rather
// than an asset tag: "3/4\"x1/2\"", "1\"", "1%", "1*", and similar.
func isSymbolTextInvalid(s string) bool {
	return reDimensionMultiply.MatchString(s) || reDimensionSingle.MatchString(s)
}
