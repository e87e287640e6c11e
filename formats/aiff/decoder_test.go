package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// fakeReader feeds a fixed set of int samples through the aiffReader
// interface.
type fakeReader struct {
	samples []int
	pos     int
	format  *goaudio.Format
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.samples[f.pos:])
	f.pos += n
	return n, nil
}

// writeAIFF16 encodes samples as a 16-bit mono AIFF file and returns its
// path.
func writeAIFF16(t *testing.T, sampleRate int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.aiff")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	enc := goaiff.NewEncoder(file, sampleRate, 16, 1)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: 1},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoding aiff: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing encoder: %v", err)
	}
	return path
}

func TestDecoderRoundTrip(t *testing.T) {
	t.Parallel()

	want := []int{100, -100, 8000, -8000, 16000, -16000}
	path := writeAIFF16(t, 8000, want)

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	src, err := Decoder{}.Decode(file)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if got := src.SampleRate(); got != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", got)
	}
	if got := src.Channels(); got != 1 {
		t.Errorf("Channels() = %d, want 1", got)
	}

	var samples []float32
	buf := make([]float32, 16)
	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(samples) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(samples), len(want))
	}
	for i, w := range want {
		expected := float64(w) / 32768.0
		if math.Abs(float64(samples[i])-expected) > 1e-4 {
			t.Errorf("sample %d = %v, want %v", i, samples[i], expected)
		}
	}
}

func TestDecoderInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not an aiff file")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() on empty input succeeded, want error")
	}
}

func TestDecoderPlainReaderIsBuffered(t *testing.T) {
	t.Parallel()

	// A non-seeking reader must still decode: the input is buffered.
	path := writeAIFF16(t, 8000, []int{1000, -1000})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	n, _ := src.ReadSamples(make([]float32, 4))
	if n != 2 {
		t.Errorf("ReadSamples() = %d samples, want 2", n)
	}
}

func TestSourceBitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		sample   int
		want     float32
	}{
		{"8-bit", 8, 64, 0.5},
		{"16-bit", 16, 16384, 0.5},
		{"24-bit", 24, 4194304, 0.5},
		{"32-bit", 32, 1073741824, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{
				dec: &fakeReader{
					samples: []int{tt.sample},
					format:  &goaudio.Format{SampleRate: 44100, NumChannels: 1},
				},
				sampleRate: 44100,
				channels:   1,
				bitDepth:   tt.bitDepth,
			}

			dst := make([]float32, 1)
			n, err := src.ReadSamples(dst)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 1 {
				t.Fatalf("ReadSamples() = %d samples, want 1", n)
			}
			if math.Abs(float64(dst[0])-float64(tt.want)) > 1e-6 {
				t.Errorf("normalized sample = %v, want %v", dst[0], tt.want)
			}
		})
	}
}

func TestSourceShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeReader{
			samples: []int{100, 200},
			format:  &goaudio.Format{SampleRate: 8000, NumChannels: 1},
		},
		sampleRate: 8000,
		channels:   1,
		bitDepth:   16,
	}

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 2 {
		t.Errorf("ReadSamples() = %d samples, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(make([]float32, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSourceEmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{}, bitDepth: 16}
	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
