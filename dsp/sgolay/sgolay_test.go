package sgolay

import (
	"math"
	"testing"
)

func TestCoefficientsMatchKnownQuadratic(t *testing.T) {
	// Classic 5-point quadratic smoothing weights: (-3, 12, 17, 12, -3)/35.
	got, err := Coefficients(5, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{-3.0 / 35, 12.0 / 35, 17.0 / 35, 12.0 / 35, -3.0 / 35}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("weight[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestCoefficientsOrderZeroIsMovingAverage(t *testing.T) {
	got, err := Coefficients(7, 0)
	if err != nil {
		t.Fatal(err)
	}

	for i, w := range got {
		if math.Abs(w-1.0/7) > 1e-12 {
			t.Fatalf("weight[%d]=%v, want 1/7", i, w)
		}
	}
}

func TestSmoothPreservesPolynomial(t *testing.T) {
	// A polynomial of degree <= order must pass through unchanged,
	// including the boundary samples.
	src := make([]float64, 50)
	for i := range src {
		x := float64(i)
		src[i] = 0.5 - 1.2*x + 0.03*x*x - 0.001*x*x*x
	}

	dst := make([]float64, len(src))

	err := Smooth(dst, src, 9, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i := range src {
		if math.Abs(dst[i]-src[i]) > 1e-8 {
			t.Fatalf("sample %d changed: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestSmoothReducesNoiseVariance(t *testing.T) {
	src := make([]float64, 200)
	for i := range src {
		// Deterministic high-frequency wiggle as noise stand-in.
		src[i] = math.Sin(2.7 * float64(i))
	}

	dst := make([]float64, len(src))

	err := Smooth(dst, src, 11, 2)
	if err != nil {
		t.Fatal(err)
	}

	varIn := variance(src[20 : len(src)-20])
	varOut := variance(dst[20 : len(dst)-20])

	if varOut >= varIn {
		t.Fatalf("smoothing did not reduce variance: %v >= %v", varOut, varIn)
	}
}

func TestSmoothInPlace(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6, 7}

	err := Smooth(src, src, 5, 2)
	if err != nil {
		t.Fatal(err)
	}

	// A straight line is preserved by a quadratic fit.
	for i, v := range src {
		if math.Abs(v-float64(i+1)) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %d", i, v, i+1)
		}
	}
}

func TestSmoothValidation(t *testing.T) {
	src := make([]float64, 10)
	dst := make([]float64, 10)

	cases := []struct {
		name          string
		window, order int
	}{
		{"even window", 4, 2},
		{"order too high", 5, 5},
		{"window exceeds signal", 11, 2},
		{"negative order", 5, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Smooth(dst, src, tc.window, tc.order); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func variance(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}

	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(values))
}
