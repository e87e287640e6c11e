// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

func TestRMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		y    []float32
		want float64
		tol  float64
	}{
		{name: "empty", y: nil, want: 0},
		{name: "constant half", y: []float32{0.5, 0.5, 0.5, 0.5}, want: 0.5},
		{name: "silence", y: make([]float32, 100), want: 0},
		{name: "full-scale sine", y: sine(8000, 1, 100), want: 1 / math.Sqrt2, tol: 0.001},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RMS(tt.y)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("RMS() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeak(t *testing.T) {
	t.Parallel()

	got := Peak([]float32{0.1, -0.9, 0.5})
	if got != 0.9 {
		t.Errorf("Peak() = %v, want 0.9", got)
	}

	if Peak(nil) != 0 {
		t.Errorf("Peak(nil) = %v, want 0", Peak(nil))
	}
}

func TestFrameRMS(t *testing.T) {
	t.Parallel()

	y := make([]float32, 1000)
	for i := range y {
		y[i] = 0.25
	}

	frames := FrameRMS(y, 256, 128)
	wantFrames := 1 + (1000-256)/128
	if len(frames) != wantFrames {
		t.Fatalf("FrameRMS() frames = %d, want %d", len(frames), wantFrames)
	}
	for i, f := range frames {
		if math.Abs(f-0.25) > 1e-6 {
			t.Errorf("frames[%d] = %v, want 0.25", i, f)
		}
	}

	if got := FrameRMS(make([]float32, 10), 256, 128); got != nil {
		t.Errorf("FrameRMS() on short input = %v, want nil", got)
	}
}

func TestZeroCrossingRate_Sine(t *testing.T) {
	t.Parallel()

	// A 440 Hz sine crosses zero 880 times per second.
	rate := Mean(ZeroCrossingRate(sine(44100, 1, 440), 2048, 512))
	want := 2 * 440.0 / 44100.0

	if math.Abs(rate-want) > 0.002 {
		t.Errorf("mean ZCR = %v, want ~%v", rate, want)
	}
}

func TestStd(t *testing.T) {
	t.Parallel()

	if got := Std([]float64{2, 2, 2}); got != 0 {
		t.Errorf("Std() of constant = %v, want 0", got)
	}

	got := Std([]float64{1, -1, 1, -1})
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Std() = %v, want 1", got)
	}
}

func TestSkewness(t *testing.T) {
	t.Parallel()

	// Symmetric signal has zero skew.
	if got := Skewness([]float32{1, -1, 0.5, -0.5}); math.Abs(got) > 1e-9 {
		t.Errorf("Skewness() of symmetric signal = %v, want 0", got)
	}

	// Right-heavy tail skews positive.
	if got := Skewness([]float32{0, 0, 0, 0, 1}); got <= 0 {
		t.Errorf("Skewness() of right-tailed signal = %v, want > 0", got)
	}

	if got := Skewness([]float32{0.3, 0.3, 0.3}); got != 0 {
		t.Errorf("Skewness() of constant = %v, want 0", got)
	}
}

func TestKurtosis(t *testing.T) {
	t.Parallel()

	// Uniform two-point distribution has excess kurtosis -2.
	got := Kurtosis([]float32{1, -1, 1, -1})
	if math.Abs(got-(-2)) > 1e-9 {
		t.Errorf("Kurtosis() = %v, want -2", got)
	}

	if got := Kurtosis([]float32{0.3, 0.3}); got != 0 {
		t.Errorf("Kurtosis() of constant = %v, want 0", got)
	}
}

func TestSymmetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		y    []float32
		want float64
	}{
		{name: "balanced", y: []float32{0.5, -0.5}, want: 1.0},
		{name: "positive only", y: []float32{0.5, 0.5}, want: 0.5},
		{name: "negative only", y: []float32{-0.25}, want: 0.25},
		{name: "silence", y: []float32{0, 0}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Symmetry(tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Symmetry() = %v, want %v", got, tt.want)
			}
		})
	}
}
