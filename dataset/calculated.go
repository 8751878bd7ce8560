package dataset

// CalculatedDataset is a dataset whose data originate from computation
// rather than measurement, such as an FFT spectrum. It records the analysis
// type that produced it and a snapshot of the source dataset's history at
// creation time, so its provenance chains back to the raw measurement.
type CalculatedDataset struct {
	Dataset

	// Calculation is the analysis step type that produced the data.
	Calculation string

	// SourceHistory is a copy of the source dataset's history at the
	// time of calculation.
	SourceHistory []HistoryEntry
}

// NewCalculated creates an empty CalculatedDataset derived from source. The
// source's history is copied; data and axes are left for the caller to fill
// with freshly allocated arrays.
func NewCalculated(calculation string, source *Dataset) *CalculatedDataset {
	return &CalculatedDataset{
		Calculation:   calculation,
		SourceHistory: CloneHistory(source.History),
	}
}
