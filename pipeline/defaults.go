package pipeline

import (
	"github.com/cwbudde/algo-trepr/analysis"
	"github.com/cwbudde/algo-trepr/processing"
)

// DefaultRegistry returns a Registry pre-populated with all built-in
// processing and analysis steps. Parameter keys match the keys the steps
// record in history entries.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegisterProcessing("PretriggerOffsetCompensation", func(Params) (processing.Step, error) {
		return &processing.PretriggerOffsetCompensation{}, nil
	})
	r.MustRegisterProcessing("BackgroundCorrection", func(p Params) (processing.Step, error) {
		profiles := p.GetList("num_profiles", []float64{1, 0})

		step := &processing.BackgroundCorrection{}
		if len(profiles) > 0 {
			step.NumProfiles[0] = int(profiles[0])
		}

		if len(profiles) > 1 {
			step.NumProfiles[1] = int(profiles[1])
		}

		return step, nil
	})
	r.MustRegisterProcessing("TriggerAutodetection", func(p Params) (processing.Step, error) {
		return &processing.TriggerAutodetection{
			NSigma:          p.GetNum("n_sigma", 0),
			BaselineSamples: p.GetInt("baseline_samples", 0),
		}, nil
	})
	r.MustRegisterProcessing("Filtering", func(p Params) (processing.Step, error) {
		return &processing.Filtering{
			WindowLength: p.GetInt("window_length", 0),
			Order:        p.GetInt("order", 2),
		}, nil
	})
	r.MustRegisterProcessing("SliceExtraction", func(p Params) (processing.Step, error) {
		return &processing.SliceExtraction{
			Axis:     p.GetInt("axis", 0),
			Position: p.GetNum("position", 0),
			Unit:     p.GetStr("unit", processing.UnitIndex),
		}, nil
	})
	r.MustRegisterProcessing("Averaging", func(p Params) (processing.Step, error) {
		rng := p.GetList("range", nil)

		step := &processing.Averaging{
			Axis: p.GetInt("axis", 1),
			Unit: p.GetStr("unit", processing.UnitIndex),
		}
		if len(rng) > 0 {
			step.Range[0] = rng[0]
		}

		if len(rng) > 1 {
			step.Range[1] = rng[1]
		}

		return step, nil
	})
	r.MustRegisterProcessing("FrequencyCorrection", func(p Params) (processing.Step, error) {
		return &processing.FrequencyCorrection{
			Frequency: p.GetNum("frequency", 0),
		}, nil
	})

	r.MustRegisterAnalysis("BasicCharacteristics", func(p Params) (analysis.Step, error) {
		step := analysis.NewBasicCharacteristics(p.GetStr("kind", analysis.KindMax))
		step.Output = p.GetStr("output", analysis.OutputValue)
		step.Axis = p.GetInt("axis", -1)

		return step, nil
	})
	r.MustRegisterAnalysis("MWFrequencyValues", func(p Params) (analysis.Step, error) {
		return &analysis.MWFrequencyValues{
			Output: p.GetStr("output", analysis.OutputValues),
		}, nil
	})
	r.MustRegisterAnalysis("MWFrequencyDrift", func(p Params) (analysis.Step, error) {
		step := analysis.NewMWFrequencyDrift()
		step.Kind = p.GetStr("kind", step.Kind)
		step.Output = p.GetStr("output", step.Output)

		return step, nil
	})
	r.MustRegisterAnalysis("TimeStampAnalysis", func(p Params) (analysis.Step, error) {
		step := analysis.NewTimeStampAnalysis()
		step.Kind = p.GetStr("kind", step.Kind)
		step.Output = p.GetStr("output", step.Output)

		return step, nil
	})
	r.MustRegisterAnalysis("TransientNutationFFT", func(p Params) (analysis.Step, error) {
		step := analysis.NewTransientNutationFFT()
		step.StartInExtremum = p.GetBool("start_in_extremum", step.StartInExtremum)
		step.Padding = p.GetInt("padding", step.Padding)
		step.SubtractDecay = p.GetBool("subtract_decay", step.SubtractDecay)
		step.Window = p.GetStr("window", step.Window)
		step.WindowParameters = p.GetList("window_parameters", nil)

		return step, nil
	})

	return r
}
