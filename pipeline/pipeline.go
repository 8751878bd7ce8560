package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-trepr/analysis"
	"github.com/cwbudde/algo-trepr/dataset"
	"github.com/cwbudde/algo-trepr/processing"
)

// Task is one entry of a task list: a processing or analysis step type with
// its parameters. Analysis tasks may name a Result binding under which the
// outcome is stored for later tasks and for the final report.
type Task struct {
	// Kind is dataset.KindProcessing or dataset.KindAnalysis.
	Kind string

	// Type is the registered step type name.
	Type string

	// Params holds the step parameters.
	Params Params

	// Result names the binding for an analysis outcome. Ignored for
	// processing tasks.
	Result string
}

// Pipeline applies an ordered task list against one dataset. Analysis
// results stored under a binding name can feed later tasks: a task
// parameter "position_from" resolves a stored indices result into the
// "position" parameter, so a recipe can cut a slice through a previously
// located extremum.
//
// The first failing task aborts the run; the dataset then reflects exactly
// the tasks that completed, per the no-mutation-on-failure guarantee of the
// individual steps.
type Pipeline struct {
	registry *Registry
	results  map[string]analysis.Result
}

// New creates a Pipeline using the given registry.
func New(registry *Registry) *Pipeline {
	return &Pipeline{
		registry: registry,
		results:  make(map[string]analysis.Result),
	}
}

// Result returns the analysis result stored under name.
func (p *Pipeline) Result(name string) (analysis.Result, bool) {
	r, ok := p.results[name]

	return r, ok
}

// Run applies the tasks in order. It stops at the first error and reports
// the index and type of the failing task.
func (p *Pipeline) Run(d *dataset.Dataset, tasks []Task) error {
	for i, task := range tasks {
		err := p.runTask(d, task)
		if err != nil {
			return fmt.Errorf("task %d (%s): %w", i, task.Type, err)
		}
	}

	return nil
}

func (p *Pipeline) runTask(d *dataset.Dataset, task Task) error {
	params, err := p.resolveBindings(task.Params)
	if err != nil {
		return err
	}

	switch task.Kind {
	case dataset.KindProcessing:
		factory := p.registry.LookupProcessing(task.Type)
		if factory == nil {
			return fmt.Errorf("%w: %s", ErrUnknownStep, task.Type)
		}

		step, err := factory(params)
		if err != nil {
			return err
		}

		return processing.Apply(d, step)

	case dataset.KindAnalysis:
		factory := p.registry.LookupAnalysis(task.Type)
		if factory == nil {
			return fmt.Errorf("%w: %s", ErrUnknownStep, task.Type)
		}

		step, err := factory(params)
		if err != nil {
			return err
		}

		result, err := analysis.AnalyseTo(d, step, task.Result)
		if err != nil {
			return err
		}

		if task.Result != "" {
			p.results[task.Result] = result
		}

		return nil

	default:
		return fmt.Errorf("unknown task kind %q", task.Kind)
	}
}

// resolveBindings replaces parameter references to stored results with
// their values. "position_from" injects the first index of a stored indices
// result as the "position" parameter in index units.
func (p *Pipeline) resolveBindings(params Params) (Params, error) {
	name := params.GetStr("position_from", "")
	if name == "" {
		return params, nil
	}

	result, ok := p.results[name]
	if !ok {
		return Params{}, fmt.Errorf("no stored result named %q", name)
	}

	if len(result.Indices) == 0 {
		return Params{}, fmt.Errorf("stored result %q holds no indices", name)
	}

	resolved := params
	resolved.Num = cloneMap(params.Num)
	resolved.Str = cloneMap(params.Str)
	resolved.Num["position"] = float64(result.Indices[0])
	resolved.Str["unit"] = processing.UnitIndex

	return resolved, nil
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
