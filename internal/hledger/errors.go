package hledger

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedJSON is returned when hledger output is not valid JSON.
	ErrMalformedJSON = errors.New("hledger: malformed json")
	// ErrUnrecognizedShape is returned when a balance report matches
	// neither the simple nor the periodic encoding.
	ErrUnrecognizedShape = errors.New("hledger: unrecognized report shape")
	// ErrMalformedSection is returned when a compound-report subreport
	// entry is not a (name, periodic data, increases-total) triple.
	ErrMalformedSection = errors.New("hledger: malformed compound section")
	// ErrMalformedQuantity is returned when a quantity object cannot be
	// reconstructed from its mantissa and scale.
	ErrMalformedQuantity = errors.New("hledger: malformed quantity")
)

// MissingFieldError reports a required field absent from a JSON object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("hledger: missing field %q", e.Field)
}

// UnknownPriceTagError reports an aprice tag outside UnitPrice/TotalPrice.
type UnknownPriceTagError struct {
	Tag string
}

func (e *UnknownPriceTagError) Error() string {
	return fmt.Sprintf("hledger: unknown price tag %q", e.Tag)
}

// UnknownPostingKindError reports an unrecognized ptype value.
type UnknownPostingKindError struct {
	Kind string
}

func (e *UnknownPostingKindError) Error() string {
	return fmt.Sprintf("hledger: unknown posting kind %q", e.Kind)
}

func malformedJSON(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
}
