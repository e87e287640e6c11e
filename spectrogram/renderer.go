// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"image"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/sumingyd/yydb-analyzer/audio"
)

// Rendering parameters.  The dB floor and figure aspect follow the
// classic Spek-style display: log-amplitude referenced to the maximum
// with an 80 dB dynamic range, in a wide 5:2 panel.
const (
	defaultFFTSize = 2048
	defaultHopSize = 512

	dbFloor      = -80.0
	figureAspect = 2.5
)

// Result is the one-shot handoff of a background render: either an
// image or the error that prevented one.
type Result struct {
	Image image.Image
	Err   error
}

// Renderer turns a SampleBuffer into a log-frequency, dB-scaled
// magnitude spectrogram bitmap.  The zero value is not usable; create
// one with NewRenderer.
type Renderer struct {
	FFTSize int
	HopSize int

	width  int
	height int
}

// NewRenderer returns a Renderer whose output fits maxWidth×maxHeight
// while preserving the display aspect.  Non-positive bounds fall back
// to a 1000×400 panel.
func NewRenderer(maxWidth, maxHeight int) *Renderer {
	if maxWidth <= 0 || maxHeight <= 0 {
		maxWidth, maxHeight = 1000, 400
	}

	width, height := fitAspect(maxWidth, maxHeight, figureAspect)

	return &Renderer{
		FFTSize: defaultFFTSize,
		HopSize: defaultHopSize,
		width:   width,
		height:  height,
	}
}

// fitAspect returns the largest w×h rectangle with the given aspect
// ratio that fits inside the bounds.
func fitAspect(maxWidth, maxHeight int, aspect float64) (int, int) {
	width := maxWidth
	height := int(float64(width) / aspect)
	if height > maxHeight {
		height = maxHeight
		width = int(float64(height) * aspect)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return width, height
}

// Render computes the spectrogram of buf and rasterizes it.  It is a
// pure CPU job safe to run on any goroutine; use RenderAsync for the
// non-blocking form.
func (r *Renderer) Render(buf *audio.SampleBuffer) (image.Image, error) {
	if buf.Empty() {
		return nil, &RenderError{Err: ErrEmptyBuffer}
	}

	db, maxBin := r.powerDB(buf)
	if len(db) == 0 {
		return nil, &RenderError{Err: ErrEmptyBuffer}
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	frames := len(db)

	// Log-frequency vertical axis: row 0 is the top (Nyquist), the
	// bottom row is the first non-DC bin.
	logMax := math.Log(float64(maxBin))
	for y := 0; y < r.height; y++ {
		frac := 1 - float64(y)/(float64(r.height-1)+1e-9)
		bin := int(math.Exp(frac * logMax))
		if bin < 1 {
			bin = 1
		}
		if bin > maxBin {
			bin = maxBin
		}

		for x := 0; x < r.width; x++ {
			frame := x * frames / r.width
			v := (db[frame][bin] - dbFloor) / -dbFloor
			img.SetRGBA(x, y, infernoColor(v))
		}
	}

	return img, nil
}

// RenderAsync runs Render on its own goroutine and delivers the result
// through a buffered channel, so the renderer never blocks on a slow
// or absent receiver.
func (r *Renderer) RenderAsync(buf *audio.SampleBuffer) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		img, err := r.Render(buf)
		out <- Result{Image: img, Err: err}
	}()

	return out
}

// powerDB computes the magnitude spectrogram of buf in dB referenced
// to the loudest bin, clamped at dbFloor.  Returns one row per frame
// and the index of the highest usable bin.
func (r *Renderer) powerDB(buf *audio.SampleBuffer) ([][]float64, int) {
	window := make([]float64, r.FFTSize)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(r.FFTSize)))
	}

	y := buf.Samples
	if len(y) < r.FFTSize {
		// Zero-pad short signals to a single frame.
		padded := make([]float32, r.FFTSize)
		copy(padded, y)
		y = padded
	}

	numFrames := 1 + (len(y)-r.FFTSize)/r.HopSize
	maxBin := r.FFTSize / 2

	mags := make([][]float64, numFrames)
	frame := make([]float64, r.FFTSize)
	globalMax := 0.0

	for f := 0; f < numFrames; f++ {
		offset := f * r.HopSize
		for i := 0; i < r.FFTSize; i++ {
			frame[i] = float64(y[offset+i]) * window[i]
		}

		coeffs := fft.FFTReal(frame)

		row := make([]float64, maxBin+1)
		for b := 0; b <= maxBin; b++ {
			row[b] = cmplx.Abs(coeffs[b])
			if row[b] > globalMax {
				globalMax = row[b]
			}
		}
		mags[f] = row
	}

	if globalMax == 0 {
		globalMax = 1
	}

	for _, row := range mags {
		for b, m := range row {
			db := 20 * math.Log10(m/globalMax+1e-10)
			if db < dbFloor {
				db = dbFloor
			}
			row[b] = db
		}
	}

	return mags, maxBin
}
