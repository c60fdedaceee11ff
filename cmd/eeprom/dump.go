package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/i2ceeprom/eeprom"
)

func newDumpCommand(opts *options) *cobra.Command {
	var output string
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Read the whole memory array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := openSession(opts)
			if err != nil {
				return
			}
			defer s.Close()

			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				var ouf *os.File
				ouf, err = os.Create(output)
				if err != nil {
					return
				}
				defer ouf.Close()
				w = ouf
			}

			if !raw {
				dumper := hex.Dumper(w)
				defer dumper.Close()
				w = dumper
			}

			err = s.device.Dump(cmd.Context(), w)
			return
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "-", "output file ('-' for stdout)")
	flags.BoolVar(&raw, "raw", false, "write binary instead of a hex dump")

	return cmd
}

func newProfilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the known device profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for _, name := range slices.Sorted(maps.Keys(eeprom.Profiles)) {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%-8v %v\n", name, eeprom.Profiles[name])
				if err != nil {
					return
				}
			}
			return
		},
	}
}
