package processing

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

// PretriggerOffsetCompensation removes per-trace DC offsets by setting the
// mean of the pretrigger region (time < 0) of each time trace to zero.
// Usually the first step after recording tr-EPR data; it also removes
// background signals of stable paramagnetic species, which appear as a DC
// offset as well.
//
// The time axis must start before the trigger, i.e. contain negative
// values. If it does not, the step fails with a DomainError; running
// TriggerAutodetection first establishes the trigger position.
type PretriggerOffsetCompensation struct {
	zeropoint int
}

// Name returns the step type.
func (*PretriggerOffsetCompensation) Name() string {
	return "PretriggerOffsetCompensation"
}

// Applicable reports whether the dataset has a time axis.
func (*PretriggerOffsetCompensation) Applicable(d *dataset.Dataset) bool {
	return timeAxisIndex(d) >= 0
}

func (s *PretriggerOffsetCompensation) validate(d *dataset.Dataset) error {
	values := d.Axes[timeAxisIndex(d)].Values

	n := 0
	for _, v := range values {
		if v < 0 {
			n++
		}
	}

	if n == 0 {
		return dataset.NewDomainError(s.Name(),
			"no pretrigger region: time axis has no samples before t=0")
	}

	s.zeropoint = n

	return nil
}

func (s *PretriggerOffsetCompensation) execute(d *dataset.Dataset) {
	for r := 0; r < d.Rows; r++ {
		trace := d.Row(r)
		offset := mean(trace[:s.zeropoint])

		for i := range trace {
			trace[i] -= offset
		}
	}
}

func (s *PretriggerOffsetCompensation) parameters() map[string]any {
	return map[string]any{"zeropoint_index": s.zeropoint}
}
