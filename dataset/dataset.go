package dataset

import "time"

// Dataset owns a numeric data block (2D, or 1D after slicing), one axis per
// data dimension plus a trailing intensity axis, metadata, and the ordered
// history of applied operations.
//
// The 2D layout is row-major with the magnetic-field axis first: row f holds
// the time trace recorded at field position f. A 1D dataset is a single row;
// dimensionality is determined by the axis count.
type Dataset struct {
	// Data holds Rows*Cols samples in row-major order.
	Data []float64

	// Rows and Cols are the extent of the first and second data
	// dimension. A 1D dataset has Rows == 1.
	Rows, Cols int

	// Axes holds one axis per data dimension plus the trailing
	// intensity axis, so len(Axes) == NDim()+1.
	Axes []Axis

	Metadata Metadata

	History []HistoryEntry

	// MicrowaveFrequency optionally holds one microwave frequency value
	// (GHz) per field position, recorded alongside each time trace.
	MicrowaveFrequency []float64

	// TimeStamps optionally holds the acquisition time of each time
	// trace.
	TimeStamps []time.Time
}

// NDim returns the data dimensionality (1 or 2), derived from the axis count.
func (d *Dataset) NDim() int {
	return len(d.Axes) - 1
}

// Row returns the i-th row of the data block. The returned slice aliases the
// dataset's storage.
func (d *Dataset) Row(i int) []float64 {
	return d.Data[i*d.Cols : (i+1)*d.Cols]
}

// Column returns a freshly allocated copy of column j.
func (d *Dataset) Column(j int) []float64 {
	out := make([]float64, d.Rows)
	for i := range out {
		out[i] = d.Data[i*d.Cols+j]
	}

	return out
}

// Validate checks the structural invariants every step relies on: axis count
// matches dimensionality plus one, per-axis value counts match the data
// shape, the intensity axis carries no values, and field/time axes are
// strictly monotonic. A failure is an InvariantViolation.
func (d *Dataset) Validate() error {
	ndim := d.NDim()
	if ndim != 1 && ndim != 2 {
		return invariantViolation("want 2 or 3 axes, got %d", len(d.Axes))
	}

	if d.Rows <= 0 || d.Cols <= 0 {
		return invariantViolation("empty data shape %dx%d", d.Rows, d.Cols)
	}

	if len(d.Data) != d.Rows*d.Cols {
		return invariantViolation("data length %d does not match shape %dx%d",
			len(d.Data), d.Rows, d.Cols)
	}

	if ndim == 1 {
		if d.Rows != 1 {
			return invariantViolation("1D dataset with %d rows", d.Rows)
		}

		if len(d.Axes[0].Values) != d.Cols {
			return invariantViolation("axis 0 has %d values, data has %d samples",
				len(d.Axes[0].Values), d.Cols)
		}
	} else {
		if len(d.Axes[0].Values) != d.Rows {
			return invariantViolation("axis 0 has %d values, data has %d rows",
				len(d.Axes[0].Values), d.Rows)
		}

		if len(d.Axes[1].Values) != d.Cols {
			return invariantViolation("axis 1 has %d values, data has %d columns",
				len(d.Axes[1].Values), d.Cols)
		}
	}

	intensity := d.Axes[len(d.Axes)-1]
	if len(intensity.Values) != 0 {
		return invariantViolation("intensity axis must not carry values, has %d",
			len(intensity.Values))
	}

	for i := 0; i < ndim; i++ {
		if !d.Axes[i].monotonic() {
			return invariantViolation("axis %d is not strictly monotonic", i)
		}
	}

	return nil
}

// AppendHistory appends one entry to the history, stamping it with the
// current time if no timestamp is set. The history is append-only; existing
// entries are never modified.
func (d *Dataset) AppendHistory(entry HistoryEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	d.History = append(d.History, entry)
}

// Clone returns a deep copy of the dataset with freshly allocated arrays.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Data:               append([]float64(nil), d.Data...),
		Rows:               d.Rows,
		Cols:               d.Cols,
		Metadata:           d.Metadata.Clone(),
		History:            CloneHistory(d.History),
		MicrowaveFrequency: append([]float64(nil), d.MicrowaveFrequency...),
		TimeStamps:         append([]time.Time(nil), d.TimeStamps...),
	}

	out.Axes = make([]Axis, len(d.Axes))
	for i, a := range d.Axes {
		out.Axes[i] = a.Clone()
	}

	return out
}
