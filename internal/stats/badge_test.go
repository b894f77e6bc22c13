package stats

import "testing"

func TestSafetyBadgeColor(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{9.5, BadgeSuccess},
		{8.0, BadgeSuccess}, // boundary inclusive
		{7.99, BadgeWarning},
		{6.0, BadgeWarning}, // boundary inclusive
		{5.99, BadgeDanger},
		{0, BadgeDanger},
		{-1, BadgeDanger},
	}
	for _, tc := range cases {
		if got := SafetyBadgeColor(tc.score); got != tc.want {
			t.Errorf("SafetyBadgeColor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestFuelLevelColor(t *testing.T) {
	cases := []struct {
		level float64
		want  string
	}{
		{100, BadgeSuccess},
		{70, BadgeSuccess}, // boundary inclusive
		{69.9, BadgeWarning},
		{30, BadgeWarning}, // boundary inclusive
		{29.9, BadgeDanger},
		{0, BadgeDanger},
	}
	for _, tc := range cases {
		if got := FuelLevelColor(tc.level); got != tc.want {
			t.Errorf("FuelLevelColor(%v) = %q, want %q", tc.level, got, tc.want)
		}
	}
}
