package money

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole number", 123, "$123.00"},
		{"negative number", -123, "$-123.00"},
		{"two decimal places", 123.45, "$123.45"},
		{"rounds third decimal up", 123.456, "$123.46"},
		{"rounds third decimal down", 123.451, "$123.45"},
		{"groups every three digits", 1234567, "$1,234,567.00"},
		{"zero", 0, "$0.00"},
		{"cents only", 0.5, "$0.50"},
		{"negative with grouping", -9876543.21, "$-9,876,543.21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUSD(tt.amount); got != tt.want {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatUSDStable(t *testing.T) {
	// Formatting the same numeric value repeatedly must always yield the
	// same string.
	first := FormatUSD(1200)
	second := FormatUSD(1200)
	if first != second {
		t.Errorf("formatting is not stable: %q vs %q", first, second)
	}
	if first != "$1,200.00" {
		t.Errorf("expected $1,200.00, got %q", first)
	}
}
