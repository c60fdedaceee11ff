package main

import (
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/spf13/pflag"

	"github.com/ezrec/i2ceeprom/internal"
	"github.com/ezrec/i2ceeprom/records"
)

// sourceOptions select the record stream shared by write and verify.
type sourceOptions struct {
	base  uint16
	expr  string
	input string
	table bool
	count int
}

func (src *sourceOptions) addFlags(flags *pflag.FlagSet) {
	flags.Uint16VarP(&src.base, "base", "b", 0, "address of the first record")
	flags.StringVarP(&src.expr, "records", "r", "", "Starlark expression yielding record values")
	flags.StringVar(&src.input, "input", "", "little-endian record file ('-' for stdin)")
	flags.BoolVarP(&src.table, "table", "t", false, "use the built-in test table")
	flags.IntVarP(&src.count, "count", "n", -1, "limit the number of records (-1: all)")
}

// records concatenates, in order, the input file, the expression and the
// test table. At least one source must be selected.
func (src *sourceOptions) records() (seq iter.Seq[uint32], err error) {
	var seqs []iter.Seq[uint32]

	if len(src.input) != 0 {
		var values []uint32
		if src.input == "-" {
			values, err = records.Decode(os.Stdin)
		} else {
			var inf *os.File
			inf, err = os.Open(src.input)
			if err != nil {
				return
			}
			values, err = records.Decode(inf)
			inf.Close()
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", src.input, err)
			return
		}
		seqs = append(seqs, slices.Values(values))
	}

	if len(src.expr) != 0 {
		var values []uint32
		values, err = records.Eval(src.expr)
		if err != nil {
			return
		}
		seqs = append(seqs, slices.Values(values))
	}

	if src.table {
		seqs = append(seqs, slices.Values(records.TestTable[:]))
	}

	if len(seqs) == 0 {
		err = errNoRecords
		return
	}

	seq = internal.IterSeqLimit(internal.IterSeqConcat(seqs...), src.count)
	return
}
