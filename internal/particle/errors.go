package particle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSplitTree indicates a split tree whose parts do not add up
	// to its mass, or a tree that does not match its particle.
	ErrInvalidSplitTree = errors.New("particle: invalid split tree")

	// ErrStepLimit indicates the simulation still had live particles after
	// the maximum number of steps.
	ErrStepLimit = errors.New("particle: step limit reached")

	// ErrInvalidState indicates a particle position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("particle: invalid state (NaN or Inf detected)")

	// ErrInvalidTimeStep indicates a non-positive time step.
	ErrInvalidTimeStep = errors.New("particle: time step must be positive")
)

// StepError wraps an error with the step it happened in.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.3fs): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
