package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("samples and coefficients must have same length")

// ParseType maps a window name to its Type. Recognized names are "none",
// "rectangular", "hann", "hamming", "blackman", "cosine", and "kaiser".
func ParseType(name string) (Type, error) {
	switch name {
	case "", "none", "rectangular":
		return TypeRectangular, nil
	case "hann":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "cosine":
		return TypeCosine, nil
	case "kaiser":
		return TypeKaiser, nil
	default:
		return TypeRectangular, fmt.Errorf("unknown window name: %q", name)
	}
}
