// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolateEndpoints(t *testing.T) {
	t.Parallel()

	// At x=0 the spline passes through y1, at x=1 through y2.
	tests := []struct {
		name               string
		y0, y1, y2, y3, x  float32
		want               float32
	}{
		{"x zero returns y1", 0.1, 0.4, 0.8, 0.3, 0, 0.4},
		{"x one returns y2", 0.1, 0.4, 0.8, 0.3, 1, 0.8},
		{"negative values", -0.5, -0.2, -0.9, -0.1, 0, -0.2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("CubicInterpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicInterpolateConstantSignal(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		got := CubicInterpolate(0.5, 0.5, 0.5, 0.5, x)
		if math.Abs(float64(got)-0.5) > 1e-6 {
			t.Errorf("CubicInterpolate(constant, x=%v) = %v, want 0.5", x, got)
		}
	}
}

func TestCubicInterpolateLinearRamp(t *testing.T) {
	t.Parallel()

	// A Catmull-Rom spline reproduces a straight line exactly.
	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		got := CubicInterpolate(0, 1, 2, 3, x)
		want := 1 + x
		if math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("CubicInterpolate(ramp, x=%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCubicInterpolateMidpointSymmetry(t *testing.T) {
	t.Parallel()

	// Symmetric neighbors give the mean of y1 and y2 at the midpoint.
	got := CubicInterpolate(0.2, 0.4, 0.6, 0.8, 0.5)
	if math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("CubicInterpolate(midpoint) = %v, want 0.5", got)
	}
}
