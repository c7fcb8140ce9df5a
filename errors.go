package crcgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPolynomial is returned when a polynomial lacks its defining bit.
	ErrInvalidPolynomial = errors.New("invalid polynomial")

	// ErrInvalidBitOrder is returned when Params carries an unknown BitOrder.
	ErrInvalidBitOrder = errors.New("invalid bit order")

	// ErrInvalidSlices is returned when a slicing factor is not supported.
	ErrInvalidSlices = errors.New("invalid slice count")

	// ErrUnsupportedStrategy is returned for unknown strategies and for
	// strategies that cannot serve the given parameters.
	ErrUnsupportedStrategy = errors.New("unsupported strategy")

	// ErrUnknownAlgorithm is returned when a catalog lookup finds nothing.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrCheckFailed is returned when an engine fails its self-test.
	ErrCheckFailed = errors.New("check value mismatch")
)

// PolynomialError describes a polynomial whose defining bit is unset.
//
// It matches ErrInvalidPolynomial via errors.Is.
type PolynomialError struct {
	// Form is the representation: "normal", "reverse" or "koopman".
	Form  string
	Bits  int
	Value uint64
}

func (e *PolynomialError) Error() string {
	return fmt.Sprintf("invalid %s polynomial 0x%0*x for %d-bit register: defining bit unset",
		e.Form, e.Bits/4, e.Value, e.Bits)
}

func (e *PolynomialError) Unwrap() error { return ErrInvalidPolynomial }

// CheckMismatchError reports an engine whose check value disagrees with its
// parameters.
//
// It matches ErrCheckFailed via errors.Is.
type CheckMismatchError struct {
	Name     string
	Strategy Strategy
	Expected uint64
	Actual   uint64
}

func (e *CheckMismatchError) Error() string {
	return fmt.Sprintf("%s (%s): check value mismatch: expected 0x%x, got 0x%x",
		e.Name, e.Strategy, e.Expected, e.Actual)
}

func (e *CheckMismatchError) Unwrap() error { return ErrCheckFailed }

func unsupported(s Strategy, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrUnsupportedStrategy, s, reason)
}
