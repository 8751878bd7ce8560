package dataset

import "fmt"

// ConfigurationError reports malformed, missing, or out-of-range step
// parameters. It is raised before any mutation takes place.
type ConfigurationError struct {
	Step    string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Step + ": " + e.Message
}

// NewConfigurationError creates a ConfigurationError for the given step.
func NewConfigurationError(step, format string, args ...any) error {
	return &ConfigurationError{Step: step, Message: fmt.Sprintf(format, args...)}
}

// DomainError reports a data-dependent impossibility discovered at run time,
// such as a missing pretrigger region or a position outside the axis range.
// The dataset is left in its pre-call state.
type DomainError struct {
	Step    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Step + ": " + e.Message
}

// NewDomainError creates a DomainError for the given step.
func NewDomainError(step, format string, args ...any) error {
	return &DomainError{Step: step, Message: fmt.Sprintf(format, args...)}
}

// InvariantViolation reports a dataset failing its structural invariants
// before a step runs. It indicates a bug in an upstream step rather than
// bad input.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return "dataset invariant violated: " + e.Message
}

func invariantViolation(format string, args ...any) error {
	return &InvariantViolation{Message: fmt.Sprintf(format, args...)}
}
