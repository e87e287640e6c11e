// SPDX-License-Identifier: EPL-2.0

package spectrogram

import "image/color"

// Anchor points of the inferno colormap, sampled at equal intervals.
// Intermediate values are linearly interpolated.
var infernoAnchors = [][3]uint8{
	{0, 0, 4},
	{22, 11, 57},
	{66, 10, 104},
	{106, 23, 110},
	{147, 38, 103},
	{188, 55, 84},
	{221, 81, 58},
	{243, 120, 25},
	{252, 165, 10},
	{246, 215, 70},
	{252, 255, 164},
}

// infernoColor maps t in [0,1] onto the inferno palette.  Values
// outside the range are clamped.
func infernoColor(t float64) color.RGBA {
	if t <= 0 {
		a := infernoAnchors[0]
		return color.RGBA{R: a[0], G: a[1], B: a[2], A: 255}
	}
	if t >= 1 {
		a := infernoAnchors[len(infernoAnchors)-1]
		return color.RGBA{R: a[0], G: a[1], B: a[2], A: 255}
	}

	pos := t * float64(len(infernoAnchors)-1)
	lo := int(pos)
	frac := pos - float64(lo)

	a, b := infernoAnchors[lo], infernoAnchors[lo+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)))
	}

	return color.RGBA{
		R: lerp(a[0], b[0]),
		G: lerp(a[1], b[1]),
		B: lerp(a[2], b[2]),
		A: 255,
	}
}
