package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeCosine,
		TypeKaiser,
	}

	for _, typ := range types {
		w := Generate(typ, 64, WithAlpha(3))
		if len(w) != 64 {
			t.Fatalf("type=%v len=%d, want 64", typ, len(w))
		}

		for i, v := range w {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("type=%v coefficient[%d] invalid: %v", typ, i, v)
			}
		}
	}
}

func TestHannEndpoints(t *testing.T) {
	w := Generate(TypeHann, 33)

	if math.Abs(w[0]) > 1e-12 || math.Abs(w[32]) > 1e-12 {
		t.Fatalf("hann endpoints not zero: %v %v", w[0], w[32])
	}

	if math.Abs(w[16]-1) > 1e-12 {
		t.Fatalf("hann midpoint not one: %v", w[16])
	}
}

func TestHalfRightTapersToZero(t *testing.T) {
	h := HalfRight(TypeHann, 32)
	if len(h) != 32 {
		t.Fatalf("len=%d, want 32", len(h))
	}

	if math.Abs(h[0]-1) > 1e-3 {
		t.Fatalf("half window should start near peak, got %v", h[0])
	}

	if math.Abs(h[31]) > 1e-2 {
		t.Fatalf("half window should taper to zero, got %v", h[31])
	}

	for i := 1; i < len(h); i++ {
		if h[i] > h[i-1]+1e-12 {
			t.Fatalf("half window not descending at %d: %v > %v", i, h[i], h[i-1])
		}
	}
}

func TestParseType(t *testing.T) {
	valid := map[string]Type{
		"none":    TypeRectangular,
		"hann":    TypeHann,
		"hamming": TypeHamming,
		"cosine":  TypeCosine,
		"kaiser":  TypeKaiser,
	}

	for name, want := range valid {
		got, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}

		if got != want {
			t.Fatalf("ParseType(%q)=%v, want %v", name, got, want)
		}
	}

	if _, err := ParseType("tukey"); err == nil {
		t.Fatal("expected error for unsupported window name")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{2, 2, 2, 2}

	err := ApplyCoefficientsInPlace(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{2, 4, 6, 8}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("samples[%d]=%v, want %v", i, samples[i], want[i])
		}
	}

	err = ApplyCoefficientsInPlace(samples, coeffs[:2])
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestKaiserBetaZeroIsRectangular(t *testing.T) {
	w := Generate(TypeKaiser, 16, WithAlpha(0))
	for i, v := range w {
		if v != 1 {
			t.Fatalf("coefficient[%d]=%v, want 1", i, v)
		}
	}
}
