package sim

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"same point", Pt(3, 4), Pt(3, 4), 0},
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 5},
		{"negative coordinates", Pt(-1, -1), Pt(2, 3), 5},
		{"horizontal", Pt(-50, 7), Pt(50, 7), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.DistanceTo(tc.b)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("DistanceTo() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if rev := tc.b.DistanceTo(tc.a); rev != got {
				t.Errorf("DistanceTo() (reversed) = %v, expected %v", rev, got)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Pt(1, 2).Add(-3, 0.5)
	if p != Pt(-2, 2.5) {
		t.Errorf("Add() = %+v, expected {-2 2.5}", p)
	}
}
