package sgolay

import (
	"fmt"
	"math"
)

// Coefficients returns the convolution weights that evaluate the
// least-squares polynomial fit of the given order over an odd-length window
// at its center sample.
func Coefficients(windowLength, order int) ([]float64, error) {
	err := validate(windowLength, order)
	if err != nil {
		return nil, err
	}

	half := windowLength / 2

	return weights(half, order, 0)
}

// Smooth filters src into dst using a Savitzky-Golay filter with the given
// window length and polynomial order. dst and src must have equal length and
// may alias. The window length must be odd, larger than the order, and no
// larger than the signal length.
func Smooth(dst, src []float64, windowLength, order int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("dst length %d does not match src length %d", len(dst), len(src))
	}

	err := validate(windowLength, order)
	if err != nil {
		return err
	}

	if windowLength > len(src) {
		return fmt.Errorf("window length %d exceeds signal length %d", windowLength, len(src))
	}

	half := windowLength / 2

	center, err := weights(half, order, 0)
	if err != nil {
		return err
	}

	out := make([]float64, len(src))

	for i := half; i < len(src)-half; i++ {
		out[i] = dot(center, src[i-half:i+half+1])
	}

	// Boundary samples: evaluate the fit over the first/last full window
	// at the off-center position instead of shrinking the window.
	for i := 0; i < half; i++ {
		w, err := weights(half, order, float64(i-half))
		if err != nil {
			return err
		}

		out[i] = dot(w, src[:windowLength])
		out[len(src)-1-i] = dotReversed(w, src[len(src)-windowLength:])
	}

	copy(dst, out)

	return nil
}

func validate(windowLength, order int) error {
	if order < 0 {
		return fmt.Errorf("polynomial order must be >= 0: %d", order)
	}

	if windowLength%2 == 0 {
		return fmt.Errorf("window length must be odd: %d", windowLength)
	}

	if windowLength <= order {
		return fmt.Errorf("window length %d must be larger than order %d", windowLength, order)
	}

	return nil
}

// weights returns w such that dot(w, y) evaluates the least-squares
// polynomial fit of y over centered positions -half..half at position p.
// Computed as w = A (A'A)^-1 a(p) with A the Vandermonde matrix of the
// window positions and a(p) the monomial basis at p.
func weights(half, order int, p float64) ([]float64, error) {
	n := 2*half + 1
	m := order + 1

	vandermonde := make([][]float64, n)
	for i := range vandermonde {
		row := make([]float64, m)

		x := float64(i - half)
		pow := 1.0

		for j := 0; j < m; j++ {
			row[j] = pow
			pow *= x
		}

		vandermonde[i] = row
	}

	// Normal matrix A'A.
	normal := make([][]float64, m)
	for j := range normal {
		normal[j] = make([]float64, m)
		for k := 0; k <= j; k++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += vandermonde[i][j] * vandermonde[i][k]
			}

			normal[j][k] = sum
			normal[k][j] = sum
		}
	}

	basis := make([]float64, m)

	pow := 1.0
	for j := 0; j < m; j++ {
		basis[j] = pow
		pow *= p
	}

	coeffs, err := solve(normal, basis)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = dot(vandermonde[i], coeffs)
	}

	return out, nil
}

// solve solves the symmetric positive-definite system a*x = b by Gaussian
// elimination with partial pivoting. a and b are modified.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}

		if a[pivot][col] == 0 {
			return nil, fmt.Errorf("singular normal matrix at column %d", col)
		}

		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			f := a[row][col] / a[col][col]
			for k := col; k < n; k++ {
				a[row][k] -= f * a[col][k]
			}

			b[row] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * x[k]
		}

		x[row] = sum / a[row][row]
	}

	return x, nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// dotReversed computes dot(a, reverse(b)), used to mirror the leading-edge
// weights onto the trailing edge.
func dotReversed(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[len(b)-1-i]
	}

	return sum
}
