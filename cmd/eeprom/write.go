package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/i2ceeprom/records"
)

var padModes = map[string]records.PadMode{
	records.PAD_STALE.String():  records.PAD_STALE,
	records.PAD_ZERO.String():   records.PAD_ZERO,
	records.PAD_ERASED.String(): records.PAD_ERASED,
}

func newWriteCommand(opts *options) *cobra.Command {
	src := &sourceOptions{}
	var pad string
	var exhaustive bool
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write records page by page, then verify them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			mode, ok := padModes[strings.ToLower(pad)]
			if !ok {
				err = errors.New(f("unknown pad mode %q", pad))
				return
			}

			seq, err := src.records()
			if err != nil {
				return
			}

			s, err := openSession(opts)
			if err != nil {
				return
			}
			defer func() {
				cerr := s.Close()
				if err == nil {
					err = cerr
				}
			}()

			ctx := cmd.Context()

			filler := records.NewFiller(s.device)
			filler.Verbose = opts.verbose
			filler.Base = src.base
			filler.Pad = mode

			report, err := filler.Fill(ctx, seq)
			s.dirty = s.chip.Commits != 0
			if err != nil {
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %v records (%v bytes) in %v pages\n",
				report.Records, report.Bytes, pagesOf(report))

			if opts.verbose {
				s.report()
			}

			if noVerify {
				return
			}

			err = verify(cmd, s, src, seq, exhaustive)
			return
		},
	}

	flags := cmd.Flags()
	src.addFlags(flags)
	flags.StringVar(&pad, "pad", records.PAD_STALE.String(), "tail of a partial final page: stale, zero or erased")
	flags.BoolVar(&exhaustive, "exhaustive", false, "report every mismatch")
	flags.BoolVar(&noVerify, "no-verify", false, "skip the read back")

	return cmd
}

func pagesOf(report records.FillReport) int {
	if report.Partial {
		return report.Pages + 1
	}
	return report.Pages
}

func logMismatches(result records.Result) {
	for _, mm := range result.Mismatches {
		log.Printf("record %v at 0x%04x: want 0x%08x, got 0x%08x", mm.Index, mm.Address, mm.Want, mm.Got)
	}
}
