package dataset

import (
	"errors"
	"testing"
	"time"
)

func validDataset() *Dataset {
	return &Dataset{
		Data: make([]float64, 12),
		Rows: 3,
		Cols: 4,
		Axes: []Axis{
			{Values: []float64{340, 340.5, 341}, Quantity: "magnetic field", Unit: "mT"},
			{Values: []float64{-0.1, 0, 0.1, 0.2}, Quantity: "time", Unit: "us"},
			{Quantity: "intensity", Unit: "V"},
		},
		Metadata: Metadata{},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Dataset)
		valid  bool
	}{
		{"well-formed 2D", func(*Dataset) {}, true},
		{"well-formed 1D", func(d *Dataset) {
			d.Data = d.Data[:4]
			d.Rows = 1
			d.Axes = []Axis{d.Axes[1], d.Axes[2]}
		}, true},
		{"data shorter than shape", func(d *Dataset) { d.Data = d.Data[:10] }, false},
		{"axis length mismatch", func(d *Dataset) {
			d.Axes[0].Values = []float64{340, 340.5}
		}, false},
		{"intensity axis with values", func(d *Dataset) {
			d.Axes[2].Values = []float64{1}
		}, false},
		{"non-monotonic axis", func(d *Dataset) {
			d.Axes[1].Values = []float64{-0.1, 0.1, 0, 0.2}
		}, false},
		{"wrong axis count", func(d *Dataset) { d.Axes = d.Axes[:1] }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDataset()
			tc.mutate(d)

			err := d.Validate()
			if tc.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !tc.valid {
				var inv *InvariantViolation
				if !errors.As(err, &inv) {
					t.Fatalf("error = %v, want InvariantViolation", err)
				}
			}
		})
	}
}

func TestAppendHistoryStampsTime(t *testing.T) {
	d := validDataset()

	d.AppendHistory(HistoryEntry{Kind: KindProcessing, Type: "import"})

	if len(d.History) != 1 {
		t.Fatalf("history length = %d", len(d.History))
	}

	if d.History[0].Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}

	explicit := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d.AppendHistory(HistoryEntry{Kind: KindProcessing, Type: "import", Timestamp: explicit})

	if !d.History[1].Timestamp.Equal(explicit) {
		t.Error("explicit timestamp overwritten")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := validDataset()
	d.Data[5] = 3
	d.AppendHistory(HistoryEntry{
		Kind:       KindProcessing,
		Type:       "import",
		Parameters: map[string]any{"source": "a"},
	})

	c := d.Clone()

	c.Data[5] = -1
	c.Axes[0].Values[0] = 0
	c.History[0].Parameters["source"] = "b"

	if d.Data[5] != 3 {
		t.Error("clone shares data storage")
	}

	if d.Axes[0].Values[0] != 340 {
		t.Error("clone shares axis storage")
	}

	if d.History[0].Parameters["source"] != "a" {
		t.Error("clone shares history parameters")
	}
}

func TestAxisNearestIndex(t *testing.T) {
	a := Axis{Values: []float64{340, 340.5, 341, 341.5}}

	cases := []struct {
		v    float64
		want int
	}{
		{340, 0},
		{340.7, 1},
		{341.3, 3},
		{350, 3},
	}

	for _, tc := range cases {
		if got := a.NearestIndex(tc.v); got != tc.want {
			t.Errorf("NearestIndex(%g) = %d, want %d", tc.v, got, tc.want)
		}
	}

	if a.ContainsValue(350) {
		t.Error("ContainsValue(350) = true for range [340, 341.5]")
	}

	if !a.ContainsValue(340.9) {
		t.Error("ContainsValue(340.9) = false")
	}
}

func TestNewCalculatedSnapshotsHistory(t *testing.T) {
	d := validDataset()
	d.AppendHistory(HistoryEntry{Kind: KindProcessing, Type: "import"})

	c := NewCalculated("TransientNutationFFT", d)

	d.AppendHistory(HistoryEntry{Kind: KindAnalysis, Type: "TransientNutationFFT"})

	if len(c.SourceHistory) != 1 {
		t.Errorf("source history length = %d, want 1", len(c.SourceHistory))
	}

	if c.Calculation != "TransientNutationFFT" {
		t.Errorf("calculation = %q", c.Calculation)
	}
}
