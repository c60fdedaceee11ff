package sim

import (
	"errors"

	"github.com/ezrec/i2ceeprom/translate"
)

var f = translate.From

var (
	// Simulation errors
	ErrProtocol   = errors.New(f("protocol violation"))
	ErrImageSize  = errors.New(f("image larger than device"))
	ErrNoDevice   = errors.New(f("no device at selector"))
	ErrWriteCycle = errors.New(f("write cycle in progress"))
)

// ErrState is a primitive issued while the device could not accept it.
type ErrState struct {
	Op    string
	State string
}

func (err *ErrState) Error() string {
	return f("%v while %v: %v", err.Op, err.State, ErrProtocol)
}

func (err *ErrState) Unwrap() error {
	return ErrProtocol
}
