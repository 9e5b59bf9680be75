package services

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{12, "12"},
		{1600, "1,600"},
		{1_460_800, "1,460,800"},
		{30_000_000, "30,000,000"},
		{293_333.33, "293,333.3"},
	}
	for _, tc := range cases {
		if got := formatNumber(tc.value); got != tc.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
