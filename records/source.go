package records

import (
	"encoding/binary"
	"io"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Decode reads a little-endian record image.
func Decode(file io.Reader) (values []uint32, err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data)%RECORD_WIDTH != 0 {
		err = ErrRecordTruncated
		return
	}

	values = make([]uint32, 0, len(data)/RECORD_WIDTH)
	for n := 0; n < len(data); n += RECORD_WIDTH {
		values = append(values, binary.LittleEndian.Uint32(data[n:]))
	}

	return
}

// Encode writes records as a little-endian image, the inverse of Decode.
func Encode(file io.Writer, values []uint32) (err error) {
	data := make([]byte, 0, len(values)*RECORD_WIDTH)
	for _, value := range values {
		data = binary.LittleEndian.AppendUint32(data, value)
	}

	_, err = file.Write(data)
	return
}

// Eval evaluates a Starlark expression yielding an iterable of integers,
// such as `range(1, 9)` or `[n * n for n in range(100)]`.
func Eval(expr string) (values []uint32, err error) {
	thread := starlark.Thread{Name: "records"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "records", prog, starlark.StringDict{})
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_iterable, ok := st_rc.(starlark.Iterable)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	it := st_iterable.Iterate()
	defer it.Done()

	var st_value starlark.Value
	for it.Next(&st_value) {
		st_int, ok := st_value.(starlark.Int)
		if !ok {
			err = ErrExpression(expr)
			return
		}
		value, ok := st_int.Uint64()
		if !ok || value > math.MaxUint32 {
			err = ErrRecordValue
			return
		}
		values = append(values, uint32(value))
	}

	return
}
