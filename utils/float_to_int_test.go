package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0, 0},
		{"full scale positive", 1, 32767},
		{"full scale negative", -1, -32767},
		{"half scale", 0.5, 16383},
		{"clamps above one", 1.5, 32767},
		{"clamps below minus one", -2, -32767},
		{"small positive truncates to zero", 1e-6, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for x := float32(-1); x <= 1; x += 0.01 {
		got := Float32ToInt16(x)
		if got < prev {
			t.Fatalf("Float32ToInt16(%v) = %d, below previous %d", x, got, prev)
		}
		prev = got
	}
}
