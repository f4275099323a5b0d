package types

import "testing"

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		value int
		unit  string
		want  string
	}{
		{72, "F", "72°F"},
		{-5, "F", "-5°F"},
		{0, "C", "0°C"},
	}

	for _, tt := range tests {
		if got := FormatTemperature(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatTemperature(%d, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}

	// The degree sign must be the UTF-8 code point, not a legacy-codepage byte
	got := FormatTemperature(72, "F")
	if []rune(got)[2] != '°' {
		t.Errorf("degree sign in %q is not U+00B0", got)
	}
}
