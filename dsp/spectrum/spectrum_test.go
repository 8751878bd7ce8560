package spectrum

import (
	"math"
	"testing"
)

// naiveMagnitudes computes |X[k]| for k=0..n/2 by direct DFT summation.
func naiveMagnitudes(signal []float64, n int) []float64 {
	out := make([]float64, n/2+1)
	for k := range out {
		sumRe := 0.0
		sumIm := 0.0

		for i, v := range signal {
			phase := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sumRe += v * math.Cos(phase)
			sumIm += v * math.Sin(phase)
		}

		out[k] = math.Hypot(sumRe, sumIm)
	}

	return out
}

func TestMagnitudesMatchNaiveDFT(t *testing.T) {
	const n = 64

	signal := make([]float64, n)
	for i := range signal {
		x := float64(i)
		signal[i] = math.Sin(2*math.Pi*5*x/n) + 0.3*math.Cos(2*math.Pi*11*x/n)
	}

	fft, err := NewRealFFT(n)
	if err != nil {
		t.Fatal(err)
	}

	got, err := fft.Magnitudes(signal)
	if err != nil {
		t.Fatal(err)
	}

	want := naiveMagnitudes(signal, n)
	if len(got) != len(want) {
		t.Fatalf("bin count %d, want %d", len(got), len(want))
	}

	for k := range want {
		if math.Abs(got[k]-want[k]) > 1e-9*float64(n) {
			t.Fatalf("bin %d: got %v, want %v", k, got[k], want[k])
		}
	}
}

func TestMagnitudesSinusoidPeak(t *testing.T) {
	const (
		n    = 128
		freq = 9
	)

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * freq * float64(i) / n)
	}

	fft, err := NewRealFFT(n)
	if err != nil {
		t.Fatal(err)
	}

	mag, err := fft.Magnitudes(signal)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0
	for k, v := range mag {
		if v > mag[peak] {
			peak = k
		}
	}

	if peak != freq {
		t.Fatalf("peak at bin %d, want %d", peak, freq)
	}
}

func TestMagnitudesZeroPadding(t *testing.T) {
	fft, err := NewRealFFT(32)
	if err != nil {
		t.Fatal(err)
	}

	mag, err := fft.Magnitudes([]float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	// DC bin of a zero-padded constant block equals the sample sum.
	if math.Abs(mag[0]-4) > 1e-9 {
		t.Fatalf("dc bin %v, want 4", mag[0])
	}
}

func TestNewRealFFTRejectsBadSizes(t *testing.T) {
	for _, size := range []int{0, 1, 12, 100} {
		if _, err := NewRealFFT(size); err == nil {
			t.Fatalf("size %d: expected error", size)
		}
	}
}

func TestFrequencyAxis(t *testing.T) {
	axis := FrequencyAxis(8, 0.5)

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(axis) != len(want) {
		t.Fatalf("len=%d, want %d", len(axis), len(want))
	}

	for i := range want {
		if math.Abs(axis[i]-want[i]) > 1e-12 {
			t.Fatalf("axis[%d]=%v, want %v", i, axis[i], want[i])
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128}
	for in, want := range cases {
		if got := NextPowerOf2(in); got != want {
			t.Fatalf("NextPowerOf2(%d)=%d, want %d", in, got, want)
		}
	}
}
