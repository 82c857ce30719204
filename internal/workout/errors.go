package workout

import (
	"errors"
	"fmt"
)

// Every compilation failure is a validation error raised synchronously:
// no partial document is ever returned. Typed errors carry the offending
// raw value so callers can surface a precise message.

var (
	// ErrEmptyRepeatGroup is returned for a repeat spec with no child steps.
	ErrEmptyRepeatGroup = errors.New("repeat group has no child steps")

	// ErrNestedRepeat is returned when a repeat spec appears inside another
	// repeat group. The upload protocol's behavior for nested groups is
	// undefined, so the compiler refuses rather than guessing.
	ErrNestedRepeat = errors.New("nested repeat groups are not supported")
)

// UnknownStepKindError reports a step kind missing from the step type registry.
type UnknownStepKindError struct {
	Kind string
}

func (e *UnknownStepKindError) Error() string {
	return fmt.Sprintf("unknown step kind %q", e.Kind)
}

// UnknownGoalTypeError reports a goal type missing from the end condition registry.
type UnknownGoalTypeError struct {
	GoalType string
}

func (e *UnknownGoalTypeError) Error() string {
	return fmt.Sprintf("unknown goal type %q", e.GoalType)
}

// UnknownTargetTypeError reports a target type missing from the target registry.
type UnknownTargetTypeError struct {
	TargetType string
}

func (e *UnknownTargetTypeError) Error() string {
	return fmt.Sprintf("unknown target type %q", e.TargetType)
}

// UnknownSportTypeError reports a sport missing from the sport type registry.
type UnknownSportTypeError struct {
	SportType string
}

func (e *UnknownSportTypeError) Error() string {
	return fmt.Sprintf("unknown sport type %q", e.SportType)
}

// InvalidIterationsError reports a repeat group iteration count below 1.
type InvalidIterationsError struct {
	Count int
}

func (e *InvalidIterationsError) Error() string {
	return fmt.Sprintf("repeat group needs at least 1 iteration, got %d", e.Count)
}

// InvalidPaceError reports pace text that does not resolve to a positive
// duration.
type InvalidPaceError struct {
	Text string
}

func (e *InvalidPaceError) Error() string {
	return fmt.Sprintf("invalid pace %q: want minutes per km as \"M:SS\" or a bare minute count", e.Text)
}

// InvalidGoalValueError reports a non-positive goal value on a step whose
// end condition requires one.
type InvalidGoalValueError struct {
	Value float64
}

func (e *InvalidGoalValueError) Error() string {
	return fmt.Sprintf("goal value must be positive, got %v", e.Value)
}
