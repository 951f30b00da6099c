package persistence

import "testing"

func TestHasAnyConnectorPrefix(t *testing.T) {
	prefixes := []string{"Piping/Endpoint/Pagination"}

	tests := map[string]bool{
		"Piping/Endpoint/Pagination":       true,
		"Piping/Endpoint/Pagination/North": true,
		"Equipment/Tank":                   false,
		"":                                 false,
	}

	for label, want := range tests {
		if got := hasAnyConnectorPrefix(label, prefixes); got != want {
			t.Errorf("hasAnyConnectorPrefix(%q) = %v, want %v", label, got, want)
		}
	}
}
