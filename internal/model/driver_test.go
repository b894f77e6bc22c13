package model

import (
	"math"
	"testing"
)

func TestSafetyRating(t *testing.T) {
	d := Driver{SpeedScore: 9.0, BrakingScore: 7.0}
	if got := d.SafetyRating(); math.Abs(got-8.2) > 1e-9 {
		t.Fatalf("SafetyRating = %v, want 8.2", got)
	}
}

func TestSafetyRatingEqualScores(t *testing.T) {
	d := Driver{SpeedScore: 7.0, BrakingScore: 7.0}
	if got := d.SafetyRating(); math.Abs(got-7.0) > 1e-9 {
		t.Fatalf("SafetyRating = %v, want 7.0", got)
	}
}
