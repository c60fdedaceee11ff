package eeprom

import (
	"errors"

	"github.com/ezrec/i2ceeprom/translate"
)

var f = translate.From

var (
	// ErrInvalidMemory is the class of all address, length and alignment
	// violations. It is only ever returned before any bus activity.
	ErrInvalidMemory = errors.New(f("invalid memory"))

	// Address violations
	ErrOutOfRange = errors.New(f("beyond device capacity"))
	ErrUnaligned  = errors.New(f("not page aligned"))
	ErrPageLength = errors.New(f("not a full page"))
	ErrEmpty      = errors.New(f("empty transfer"))

	// Geometry errors
	ErrGeometry = errors.New(f("invalid geometry"))
)

// ErrAddress is an operation rejected by the address validator.
type ErrAddress struct {
	Op      string
	Address int
	Length  int
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("%v 0x%04x+%v: %v: %v", err.Op, err.Address, err.Length, ErrInvalidMemory, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

// Is reports every ErrAddress as an ErrInvalidMemory.
func (err *ErrAddress) Is(target error) bool {
	return target == ErrInvalidMemory
}
