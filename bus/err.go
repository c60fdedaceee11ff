package bus

import (
	"errors"

	"github.com/ezrec/i2ceeprom/translate"
)

var f = translate.From

var (
	// Bus errors
	ErrBusy        = errors.New(f("bus busy"))
	ErrBusTimeout  = errors.New(f("bus busy retries exhausted"))
	ErrNoAck       = errors.New(f("no acknowledge"))
	ErrBusProtocol = errors.New(f("bus protocol violation"))
)

// ErrTransfer is a primitive that could not be completed.
type ErrTransfer struct {
	Op  Op
	Err error
}

func (err *ErrTransfer) Error() string {
	return f("%v: %v", err.Op.String(), err.Err)
}

func (err *ErrTransfer) Unwrap() error {
	return err.Err
}
