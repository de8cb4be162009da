package tally

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tallyhq/tally/pkg/option"
)

// ErrOverflow is returned when a sum does not fit the accumulator's type.
var ErrOverflow = errors.New("integer overflow")

// Accumulator collects a running sum.
type Accumulator[T constraints.Integer] struct {
	value T
}

// NewAccumulator returns a new Accumulator starting at initial.
func NewAccumulator[T constraints.Integer](initial T) *Accumulator[T] {
	return &Accumulator[T]{
		value: initial,
	}
}

// Value returns the current sum.
func (a *Accumulator[T]) Value() T {
	return a.value
}

// Add adds v to the sum.
// The sum is left unchanged if the result would overflow.
func (a *Accumulator[T]) Add(v T) error {
	var zero T

	sum := a.value + v
	if (v > zero && sum < a.value) || (v < zero && sum > a.value) {
		return fmt.Errorf("adding %v to %v: %w", v, a.value, ErrOverflow)
	}

	a.value = sum

	return nil
}

// AddOptional adds the value held by o, if any, and reports whether it did.
func (a *Accumulator[T]) AddOptional(o option.Option[T]) (bool, error) {
	v, ok := option.Get(o)
	if !ok {
		return false, nil
	}

	if err := a.Add(v); err != nil {
		return false, err
	}

	return true, nil
}
