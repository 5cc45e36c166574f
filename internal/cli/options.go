// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"guniq-core/filter"
	"guniq/internal/cliutil"
	"guniq/internal/output"
	"guniq/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs are files, globs, or "-" for stdin, filtered in order.
	Inputs []string

	// Uniqueness
	Filter string
	Invert bool

	// Bloom tuning (only meaningful with --filter bloom). Zero means "use
	// the documented default"; tightening ratio is profile-only.
	BloomCapacity   uint
	BloomRate       float64
	BloomGrowth     uint
	BloomTightening float64

	// Reporting
	Statistics bool
	Output     string

	ConfigFile string

	Quiet   bool
	Verbose bool
	Version bool

	// Explicit records which flags were set on the command line, so a
	// config profile only fills the gaps.
	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: filter duplicate lines from unsorted input

Version: %s

Usage: %s [flags] <input>...   (inputs are files, globs, or '-' for stdin)

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Uniqueness
	fs.StringVar(&opt.Filter, "filter", string(filter.KindDigest), "uniqueness strategy: sorted | naive | digest | bloom [digest]")
	fs.StringVar(&opt.Filter, "f", string(filter.KindDigest), "uniqueness strategy (shorthand) [digest]")
	fs.BoolVar(&opt.Invert, "invert", false, "print duplicates instead of uniques [false]")
	fs.BoolVar(&opt.Invert, "i", false, "print duplicates (shorthand) [false]")

	// Bloom tuning
	fs.UintVar(&opt.BloomCapacity, "bloom-capacity", 0, "records the first bloom generation is sized for (0 = default 1000000)")
	fs.Float64Var(&opt.BloomRate, "bloom-rate", 0, "overall bloom false-positive target in (0,1) (0 = default 1e-7)")
	fs.UintVar(&opt.BloomGrowth, "bloom-growth", 0, "bloom generation capacity growth factor (0 = default 2)")

	// Reporting
	fs.BoolVar(&opt.Statistics, "statistics", false, "print a statistics report instead of records [false]")
	fs.BoolVar(&opt.Statistics, "s", false, "print statistics (shorthand) [false]")
	fs.StringVar(&opt.Output, "output", output.FormatText, "statistics report format: text | json [text]")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML tuning profile supplying defaults for unset flags")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug diagnostics on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Explicit[f.Name] = true })

	inputs, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs

	// Validation
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one input is required (use '-' for stdin)")
	}
	if _, err := filter.ParseKind(opt.Filter); err != nil {
		return opt, err
	}
	if opt.Output != output.FormatText && opt.Output != output.FormatJSON {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.BloomRate != 0 && (opt.BloomRate < 0 || opt.BloomRate >= 1) {
		return opt, errors.New("--bloom-rate must be in (0, 1)")
	}
	if opt.BloomGrowth == 1 {
		return opt, errors.New("--bloom-growth must be >= 2")
	}
	return opt, nil
}
