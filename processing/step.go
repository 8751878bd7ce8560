package processing

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

// Step is one in-place processing operation on a dataset. Steps are a
// closed set; each records the exact configuration it ran with in the
// history entry Apply appends.
type Step interface {
	// Name returns the step type recorded in history entries.
	Name() string

	// Applicable reports whether the step can run against the dataset,
	// e.g. background correction requires 2D data.
	Applicable(d *dataset.Dataset) bool

	// validate checks configuration and data-dependent preconditions
	// without mutating the dataset. Steps may stash derived values
	// (such as a detected trigger index) for execute.
	validate(d *dataset.Dataset) error

	// execute performs the mutation. It runs only after validate
	// succeeded and must not fail.
	execute(d *dataset.Dataset)

	// parameters returns the configuration for the history entry.
	parameters() map[string]any
}

// Apply runs one processing step against the dataset and appends a history
// entry on success. On any error the dataset is left exactly as it was:
// invariants are checked first (InvariantViolation), then applicability and
// configuration (ConfigurationError), then data-dependent preconditions
// (DomainError), and only then does the step write.
func Apply(d *dataset.Dataset, s Step) error {
	err := d.Validate()
	if err != nil {
		return err
	}

	if !s.Applicable(d) {
		return dataset.NewConfigurationError(s.Name(), "not applicable to this dataset")
	}

	err = s.validate(d)
	if err != nil {
		return err
	}

	s.execute(d)

	d.AppendHistory(dataset.HistoryEntry{
		Kind:       dataset.KindProcessing,
		Type:       s.Name(),
		Parameters: s.parameters(),
	})

	return nil
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

// fieldAxisIndex returns the index of the magnetic-field axis, identified
// by its unit, or -1 if there is none.
func fieldAxisIndex(d *dataset.Dataset) int {
	for i := 0; i < d.NDim(); i++ {
		if d.Axes[i].Unit == "mT" || d.Axes[i].Unit == "G" {
			return i
		}
	}

	return -1
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
