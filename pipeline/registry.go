package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-trepr/analysis"
	"github.com/cwbudde/algo-trepr/processing"
)

// ProcessingFactory builds one processing step from task parameters.
type ProcessingFactory func(p Params) (processing.Step, error)

// AnalysisFactory builds one analysis step from task parameters.
type AnalysisFactory func(p Params) (analysis.Step, error)

// ErrUnknownStep is returned when a task references an unregistered step
// type.
var ErrUnknownStep = errors.New("unknown step type")

var errDuplicateStep = errors.New("duplicate step type")

// Registry maps step type names to their factories. Processing and analysis
// steps live in separate namespaces, matching the task kinds.
type Registry struct {
	processing map[string]ProcessingFactory
	analysis   map[string]AnalysisFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		processing: make(map[string]ProcessingFactory),
		analysis:   make(map[string]AnalysisFactory),
	}
}

// RegisterProcessing adds a factory for the given processing step type.
func (r *Registry) RegisterProcessing(stepType string, factory ProcessingFactory) error {
	if stepType == "" {
		return errors.New("empty step type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.processing[stepType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateStep, stepType)
	}

	r.processing[stepType] = factory

	return nil
}

// RegisterAnalysis adds a factory for the given analysis step type.
func (r *Registry) RegisterAnalysis(stepType string, factory AnalysisFactory) error {
	if stepType == "" {
		return errors.New("empty step type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.analysis[stepType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateStep, stepType)
	}

	r.analysis[stepType] = factory

	return nil
}

// MustRegisterProcessing is like RegisterProcessing but panics on error.
func (r *Registry) MustRegisterProcessing(stepType string, factory ProcessingFactory) {
	err := r.RegisterProcessing(stepType, factory)
	if err != nil {
		panic("pipeline registry: " + err.Error())
	}
}

// MustRegisterAnalysis is like RegisterAnalysis but panics on error.
func (r *Registry) MustRegisterAnalysis(stepType string, factory AnalysisFactory) {
	err := r.RegisterAnalysis(stepType, factory)
	if err != nil {
		panic("pipeline registry: " + err.Error())
	}
}

// LookupProcessing returns the factory for the given processing step type,
// or nil.
func (r *Registry) LookupProcessing(stepType string) ProcessingFactory {
	return r.processing[stepType]
}

// LookupAnalysis returns the factory for the given analysis step type, or
// nil.
func (r *Registry) LookupAnalysis(stepType string) AnalysisFactory {
	return r.analysis[stepType]
}
