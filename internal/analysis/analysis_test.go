package analysis

import (
	"math"
	"testing"

	"github.com/Shashwat-deb/finmotif/internal/scene"
)

func TestFFTSinglePureTone(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 4 {
		t.Errorf("expected peak at bin 4, got %d", peak)
	}
	if math.Abs(ps[4]-float64(n)/2) > 1e-6 {
		t.Errorf("expected magnitude %f, got %f", float64(n)/2, ps[4])
	}
}

func TestFFTPanicsOnOddLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non power-of-two length")
		}
	}()
	FFT(make([]float64, 6))
}

func TestPadPow2(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"growth samples", 201, 256},
		{"already padded", 128, 128},
		{"tiny", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := PadPow2(make([]float64, tt.in))
			if len(out) != tt.want {
				t.Errorf("expected length %d, got %d", tt.want, len(out))
			}
		})
	}
}

func TestPadPow2PreservesPrefix(t *testing.T) {
	out := PadPow2([]float64{1, 2, 3})
	if out[0] != 1 || out[1] != 2 || out[2] != 3 || out[3] != 0 {
		t.Errorf("unexpected padding %v", out)
	}
}

func TestTopPeaks(t *testing.T) {
	ps := []float64{9, 1, 5, 1, 3, 1, 7, 1}

	peaks := TopPeaks(ps, 2)
	if len(peaks) != 2 || peaks[0] != 6 || peaks[1] != 2 {
		t.Errorf("expected peaks [6 2], got %v", peaks)
	}
}

func TestGrowthNoiseSpectrum(t *testing.T) {
	noise := scene.GrowthNoise(256)
	ps := PowerSpectrum(PadPow2(noise))

	peaks := TopPeaks(ps, 3)
	if len(peaks) == 0 {
		t.Fatal("expected at least one harmonic peak")
	}
	// The strongest texture component is the 1.6-cycle sinusoid; with
	// leakage its peak lands in the first few bins.
	if peaks[0] < 1 || peaks[0] > 4 {
		t.Errorf("dominant peak at bin %d, expected a low harmonic", peaks[0])
	}

	// Everything past the highest harmonic should be weak.
	limit := ps[peaks[0]] * 0.2
	for i := 20; i < len(ps); i++ {
		if ps[i] > limit {
			t.Errorf("unexpected high-frequency power at bin %d", i)
		}
	}
}
