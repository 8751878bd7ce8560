package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// fftPlan is the forward-transform surface needed from the FFT backend.
// Keeping it as an interface avoids coupling callers to a specific plan type.
type fftPlan interface {
	Forward(dst, src []complex128) error
}

// RealFFT transforms real-valued signals of up to Size samples and returns
// the magnitude of the non-negative frequency half. The plan and scratch
// buffers are reused across calls, so transforming many traces of the same
// padded length allocates nothing per trace.
//
// A RealFFT is not safe for concurrent use; give each worker its own.
type RealFFT struct {
	size     int
	plan     fftPlan
	in       []complex128
	out      []complex128
	scratch  []float64
	binCount int
}

// NewRealFFT creates a transform of the given size. The size must be a
// power of two; see NextPowerOf2.
func NewRealFFT(size int) (*RealFFT, error) {
	if size <= 1 {
		return nil, fmt.Errorf("fft size must be > 1: %d", size)
	}

	if size&(size-1) != 0 {
		return nil, fmt.Errorf("fft size must be a power of two: %d", size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("creating fft plan: %w", err)
	}

	binCount := size/2 + 1

	return &RealFFT{
		size:     size,
		plan:     plan,
		in:       make([]complex128, size),
		out:      make([]complex128, size),
		scratch:  make([]float64, 2*binCount),
		binCount: binCount,
	}, nil
}

// Size returns the transform length.
func (r *RealFFT) Size() int {
	return r.size
}

// BinCount returns the number of non-negative frequency bins, size/2+1.
func (r *RealFFT) BinCount() int {
	return r.binCount
}

// Magnitudes transforms signal, zero-padded to the transform size, and
// returns |X[k]| for the bins 0..size/2. The mirror half is discarded since
// the input is real-valued.
func (r *RealFFT) Magnitudes(signal []float64) ([]float64, error) {
	if len(signal) > r.size {
		return nil, fmt.Errorf("signal length %d exceeds fft size %d", len(signal), r.size)
	}

	for i := range r.in {
		r.in[i] = 0
	}

	for i, v := range signal {
		r.in[i] = complex(v, 0)
	}

	err := r.plan.Forward(r.out, r.in)
	if err != nil {
		return nil, fmt.Errorf("forward fft: %w", err)
	}

	re := r.scratch[:r.binCount]
	im := r.scratch[r.binCount:]

	for i := 0; i < r.binCount; i++ {
		re[i] = real(r.out[i])
		im[i] = imag(r.out[i])
	}

	mag := make([]float64, r.binCount)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// FrequencyAxis returns the frequencies of the non-negative half spectrum
// for a transform of the given size and sample spacing dt:
// k/(size*dt) for k = 0..size/2.
func FrequencyAxis(size int, dt float64) []float64 {
	out := make([]float64, size/2+1)

	step := 1 / (float64(size) * dt)
	for k := range out {
		out[k] = float64(k) * step
	}

	return out
}

// NextPowerOf2 returns the smallest power of two >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
