// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"guniq-core/filter"
	"guniq/internal/cli"
	"guniq/internal/cmdutil"
	"guniq/internal/config"
	"guniq/internal/output"
	"guniq/internal/pipeline"
	"guniq/internal/version"
	"guniq/internal/writers"
)

// RunContext parses argv, runs one filtering pass, and returns the process
// exit code: 0 success (including a downstream consumer closing the pipe
// early), 2 usage or configuration error, 3 I/O error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("guniq")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "guniq version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	if opts.ConfigFile != "" {
		profile, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		config.Merge(&opts, profile)
	}

	kind, err := filter.ParseKind(opts.Filter)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	f, err := filter.New(kind, filter.Config{
		Capacity:        opts.BloomCapacity,
		Rate:            opts.BloomRate,
		GrowthFactor:    opts.BloomGrowth,
		TighteningRatio: opts.BloomTightening,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	log.Debug().
		Str("filter", string(kind)).
		Strs("inputs", opts.Inputs).
		Bool("invert", opts.Invert).
		Msg("starting run")

	sink := writers.NewLineWriter(outw)
	visit := func(record []byte) error { return sink.Write(record) }
	if opts.Statistics {
		// Stats mode consumes records without echoing them.
		visit = func([]byte) error { return nil }
	}

	st, perr := pipeline.Run(parent, pipeline.Config{
		Invert:     opts.Invert,
		TrackBytes: opts.Statistics,
	}, opts.Inputs, f, visit)

	if e := sink.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		if writers.IsBrokenPipe(perr) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if sf, ok := f.(*filter.Scaling); ok {
		log.Debug().
			Int("generations", sf.Generations()).
			Uint64("filter_bytes", sf.SizeBytes()).
			Msg("bloom filter state")
	}
	log.Debug().
		Uint64("total", st.Total()).
		Uint64("unique", st.Unique()).
		Uint64("duplicates", st.Duplicates()).
		Msg("run complete")

	if opts.Statistics {
		if err := output.WriteStats(outw, opts.Output, st); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return flushExit(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushExit drains the stdout buffer, mapping broken pipes to success.
func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
