package main

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/ezrec/i2ceeprom/internal"
	"github.com/ezrec/i2ceeprom/records"
)

func newVerifyCommand(opts *options) *cobra.Command {
	src := &sourceOptions{}
	var exhaustive bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Read records back and compare them with a stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			seq, err := src.records()
			if err != nil {
				return
			}

			s, err := openSession(opts)
			if err != nil {
				return
			}
			defer s.Close()

			err = verify(cmd, s, src, seq, exhaustive)
			if opts.verbose {
				s.report()
			}
			return
		},
	}

	flags := cmd.Flags()
	src.addFlags(flags)
	flags.BoolVar(&exhaustive, "exhaustive", false, "report every mismatch")

	return cmd
}

// verify prints PASS or FAIL; a failed verification returns errVerifyFailed.
func verify(cmd *cobra.Command, s *session, src *sourceOptions, seq iter.Seq[uint32], exhaustive bool) (err error) {
	verifier := records.NewVerifier(s.device)
	verifier.Verbose = s.device.Verbose
	verifier.Base = src.base
	if exhaustive {
		verifier.Mode = records.VERIFY_EXHAUSTIVE
	}

	result, err := verifier.Verify(cmd.Context(), seq)
	if err != nil {
		return
	}

	logMismatches(result)
	if len(result.Skipped) != 0 {
		total := internal.IterSeqCount(seq)
		fmt.Fprintln(cmd.ErrOrStderr(), f("%v of %v records beyond the device skipped", len(result.Skipped), total))
	}

	if !result.Pass {
		fmt.Fprintln(cmd.OutOrStdout(), "FAIL")
		err = errVerifyFailed
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), "PASS")
	return
}
