package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/ezrec/i2ceeprom/bus"
	"github.com/ezrec/i2ceeprom/eeprom"
	"github.com/ezrec/i2ceeprom/translate"
)

// ENV_PREFIX is prepended to a flag name, upper cased with '-' as '_', to
// name the environment variable that supplies its default.
const ENV_PREFIX = "EEPROM_"

var f = translate.From

var (
	errVerifyFailed = errors.New(f("verification failed"))
	errNoRecords    = errors.New(f("no record source: use --input, --records or --table"))
)

// options shared by all subcommands.
type options struct {
	env        string
	image      string
	profile    string
	addr       uint8
	writeCycle int

	maxAttempts int
	interval    time.Duration
	timeout     time.Duration

	lang    string
	trace   bool
	verbose bool
}

func (opts *options) geometry() (geom eeprom.Geometry, err error) {
	geom, ok := eeprom.Profiles[strings.ToLower(opts.profile)]
	if !ok {
		err = fmt.Errorf("%w: %v", eeprom.ErrGeometry, f("unknown profile %q", opts.profile))
		return
	}
	return
}

func (opts *options) policy() bus.Policy {
	return bus.Policy{
		MaxAttempts: opts.maxAttempts,
		Interval:    opts.interval,
		Timeout:     opts.timeout,
	}
}

// applyEnv loads the dotenv file, then sets each flag not given on the
// command line from its environment variable.
func applyEnv(flags *pflag.FlagSet, env string) (err error) {
	if len(env) != 0 {
		err = godotenv.Load(env)
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", env, err)
			return
		}
	}

	flags.VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed {
			return
		}
		name := ENV_PREFIX + strings.ToUpper(strings.ReplaceAll(flag.Name, "-", "_"))
		value, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if serr := flags.Set(flag.Name, value); serr != nil {
			err = fmt.Errorf("%v: %w", name, serr)
		}
	})

	return
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "eeprom",
		Short:         "Fill, verify and dump a simulated 24LCxx I2C EEPROM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			err = applyEnv(cmd.Flags(), opts.env)
			if err != nil {
				return
			}
			if len(opts.lang) != 0 {
				var tag language.Tag
				tag, err = language.Parse(opts.lang)
				if err != nil {
					return
				}
				translate.SetLanguage(tag)
			}
			log.SetFlags(0)
			log.SetPrefix(fmt.Sprintf("%v[%v]: ", cmd.Root().Name(), xid.New()))
			return
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.env, "env", ".env", "dotenv file with "+ENV_PREFIX+"* defaults")
	flags.StringVarP(&opts.image, "image", "i", "eeprom.bin", "memory array image file")
	flags.StringVarP(&opts.profile, "profile", "p", "24lc64", "device profile")
	flags.Uint8Var(&opts.addr, "addr", uint8(bus.ADDR7_24XX), "7-bit address the simulated chip answers")
	flags.IntVar(&opts.writeCycle, "write-cycle", 5, "starts refused while a page write commits")
	flags.IntVar(&opts.maxAttempts, "max-attempts", 0, "attempts per bus primitive (0: unlimited)")
	flags.DurationVar(&opts.interval, "interval", 0, "delay between attempts")
	flags.DurationVar(&opts.timeout, "timeout", 0, "retry time per bus primitive (0: unlimited)")
	flags.StringVar(&opts.lang, "lang", "", "message language (default: host locale)")
	flags.BoolVar(&opts.trace, "trace", false, "log every bus primitive")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	cmd.AddCommand(
		newWriteCommand(opts),
		newVerifyCommand(opts),
		newDumpCommand(opts),
		newProfilesCommand(),
	)

	return cmd
}
