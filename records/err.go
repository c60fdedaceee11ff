package records

import (
	"errors"

	"github.com/ezrec/i2ceeprom/translate"
)

var f = translate.From

var (
	// Record stream errors
	ErrRecordTruncated = errors.New(f("trailing partial record"))
	ErrRecordValue     = errors.New(f("record value not a uint32"))
	ErrPageWidth       = errors.New(f("page size not a multiple of the record width"))
)

// ErrFlush is a page write that aborted the fill.
type ErrFlush struct {
	Address int
	Err     error
}

func (err *ErrFlush) Error() string {
	return f("flush page 0x%04x: %v", err.Address, err.Err)
}

func (err *ErrFlush) Unwrap() error {
	return err.Err
}

// ErrRecord is a record that could not be read back.
type ErrRecord struct {
	Index int
	Err   error
}

func (err *ErrRecord) Error() string {
	return f("record %d: %v", err.Index, err.Err)
}

func (err *ErrRecord) Unwrap() error {
	return err.Err
}

// ErrExpression is a record expression that did not yield integers.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a list of records", string(err))
}
