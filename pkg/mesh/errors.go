package mesh

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned (wrapped in a *ParamError) when a generator
// receives a non-finite value or a value outside its allowed range.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError describes a rejected generator parameter.
type ParamError struct {
	Shape  string
	Param  string
	Value  float32
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("mesh: %s: %s=%v: %s", e.Shape, e.Param, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// requirePositive rejects non-finite values and values <= 0.
func requirePositive(shape, param string, v float32) error {
	if !finite(v) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be > 0"}
	}
	return nil
}

// requireNonNegative rejects non-finite values and values < 0.
func requireNonNegative(shape, param string, v float32) error {
	if !finite(v) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be >= 0"}
	}
	return nil
}

// requireFinite rejects NaN and infinities.
func requireFinite(shape, param string, v float32) error {
	if !finite(v) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be finite"}
	}
	return nil
}
