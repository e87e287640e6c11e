// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// RMS returns the root-mean-square level of y, 0 for an empty signal.
func RMS(y []float32) float64 {
	if len(y) == 0 {
		return 0
	}

	var sum float64
	for _, s := range y {
		v := float64(s)
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(y)))
}

// Peak returns the maximum absolute sample value of y.
func Peak(y []float32) float64 {
	var peak float64
	for _, s := range y {
		v := math.Abs(float64(s))
		if v > peak {
			peak = v
		}
	}

	return peak
}

// FrameRMS returns the RMS level of consecutive frames of frameSize
// samples advanced by hopSize.  A trailing partial frame is dropped.
func FrameRMS(y []float32, frameSize, hopSize int) []float64 {
	if len(y) < frameSize {
		return nil
	}

	numFrames := 1 + (len(y)-frameSize)/hopSize
	out := make([]float64, numFrames)
	for f := 0; f < numFrames; f++ {
		out[f] = RMS(y[f*hopSize : f*hopSize+frameSize])
	}

	return out
}

// ZeroCrossingRate returns, per frame, the fraction of sample pairs
// whose sign differs.  Zero samples count as non-negative.
func ZeroCrossingRate(y []float32, frameSize, hopSize int) []float64 {
	if len(y) < frameSize {
		return nil
	}

	numFrames := 1 + (len(y)-frameSize)/hopSize
	out := make([]float64, numFrames)
	for f := 0; f < numFrames; f++ {
		frame := y[f*hopSize : f*hopSize+frameSize]

		crossings := 0
		for i := 1; i < len(frame); i++ {
			if (frame[i] >= 0) != (frame[i-1] >= 0) {
				crossings++
			}
		}
		out[f] = float64(crossings) / float64(len(frame))
	}

	return out
}

// Mean returns the arithmetic mean of xs, 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Std returns the population standard deviation of xs.
func Std(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	mu := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mu
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(xs)))
}

// Skewness returns the population skewness of y (third standardized
// moment).  A constant signal has zero variance and yields 0.
func Skewness(y []float32) float64 {
	m2, m3, _ := moments(y)
	if m2 == 0 {
		return 0
	}

	return m3 / math.Pow(m2, 1.5)
}

// Kurtosis returns the excess population kurtosis of y (fourth
// standardized moment minus 3, the Fisher convention).
func Kurtosis(y []float32) float64 {
	m2, _, m4 := moments(y)
	if m2 == 0 {
		return 0
	}

	return m4/(m2*m2) - 3
}

// Symmetry returns the difference between the mean of strictly positive
// and the mean of strictly negative samples.  A signal with no positive
// or no negative samples contributes 0 for the missing side.
func Symmetry(y []float32) float64 {
	var posSum, negSum float64
	var posN, negN int

	for _, s := range y {
		switch {
		case s > 0:
			posSum += float64(s)
			posN++
		case s < 0:
			negSum += float64(s)
			negN++
		}
	}

	var posMean, negMean float64
	if posN > 0 {
		posMean = posSum / float64(posN)
	}
	if negN > 0 {
		negMean = negSum / float64(negN)
	}

	return posMean - negMean
}

func moments(y []float32) (m2, m3, m4 float64) {
	if len(y) == 0 {
		return 0, 0, 0
	}

	var mu float64
	for _, s := range y {
		mu += float64(s)
	}
	mu /= float64(len(y))

	for _, s := range y {
		d := float64(s) - mu
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}

	n := float64(len(y))
	return m2 / n, m3 / n, m4 / n
}
