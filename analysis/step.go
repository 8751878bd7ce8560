package analysis

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

// Output modes shared by analysis steps.
const (
	OutputValue   = "value"
	OutputValues  = "values"
	OutputIndices = "indices"
	OutputDataset = "dataset"
)

// Result holds the outcome of one analysis step. Depending on the step's
// output mode, exactly one of the fields is meaningful.
type Result struct {
	// Value holds a scalar characteristic.
	Value float64

	// Values holds a vector characteristic, e.g. per-trace time deltas.
	Values []float64

	// Indices holds index coordinates, e.g. the position of an
	// extremum.
	Indices []int

	// Dataset holds a calculated dataset with freshly allocated arrays.
	Dataset *dataset.CalculatedDataset
}

// Step is one read-only analysis operation on a dataset. Steps are a closed
// set; each records the exact configuration it ran with in the history
// entry Analyse appends to the source.
type Step interface {
	// Name returns the step type recorded in history entries.
	Name() string

	// Applicable reports whether the step can run against the dataset,
	// e.g. a time-stamp analysis requires recorded time stamps.
	Applicable(d *dataset.Dataset) bool

	// validate checks configuration and data-dependent preconditions.
	validate(d *dataset.Dataset) error

	// analyse computes the result. It runs only after validate
	// succeeded, must not fail, and must not mutate the dataset.
	analyse(d *dataset.Dataset) Result

	// parameters returns the configuration for the history entry.
	parameters() map[string]any
}

// Analyse runs one analysis step against the dataset. The dataset's data
// and axes are never modified; on success one history entry is appended.
func Analyse(d *dataset.Dataset, s Step) (Result, error) {
	return AnalyseTo(d, s, "")
}

// AnalyseTo is Analyse with a result binding name recorded in the history
// entry, so a report can trace where the result was stored.
func AnalyseTo(d *dataset.Dataset, s Step, resultName string) (Result, error) {
	err := d.Validate()
	if err != nil {
		return Result{}, err
	}

	if !s.Applicable(d) {
		return Result{}, dataset.NewConfigurationError(s.Name(), "not applicable to this dataset")
	}

	err = s.validate(d)
	if err != nil {
		return Result{}, err
	}

	result := s.analyse(d)

	d.AppendHistory(dataset.HistoryEntry{
		Kind:       dataset.KindAnalysis,
		Type:       s.Name(),
		Parameters: s.parameters(),
		Result:     resultName,
	})

	return result, nil
}

// timeAxisIndex returns the index of the first time axis among the data
// axes, or -1 if there is none.
func timeAxisIndex(d *dataset.Dataset) int {
	for i := 0; i < d.NDim(); i++ {
		if d.Axes[i].IsTime() {
			return i
		}
	}

	return -1
}
