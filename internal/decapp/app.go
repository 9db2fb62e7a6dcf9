// Package decapp implements picalc-dec, the decimal arbitrary-precision
// surface: every value carries the significand digit count given on the
// command line.
package decapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"picalc-core/num"
	"picalc/internal/appcore"
	"picalc/internal/cli"
	"picalc/internal/cmdutil"
	"picalc/internal/version"
)

const (
	name     = "picalc-dec"
	precName = "digits"
)

// Run parses argv and executes one estimate at the requested decimal
// precision. Exit codes: 0 success, 1 malformed invocation, 2 unknown
// method, 3 write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	flush := func(code int) int {
		err := outw.Flush()
		if cmdutil.IsBrokenPipe(err) {
			return 0
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fmt.Fprintln(stderr, cli.ErrArgCount)
		cli.Usage(stderr, name, precName, appcore.Methods)
		return 1
	}

	opts, err := cli.ParseArgs(fs, argv, precName)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(outw, name, precName, appcore.Methods)
			return flush(0)
		}
		fmt.Fprintln(stderr, err)
		cli.Usage(stderr, name, precName, appcore.Methods)
		return 1
	}
	if opts.Version {
		fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}

	code := appcore.Run(outw, stderr, num.Decimal(opts.Prec), appcore.Options{
		Tool:    name,
		Method:  opts.Method,
		N:       opts.N,
		Verbose: opts.Verbose,
	})
	if code == 2 {
		fmt.Fprintf(stderr, "unknown method %q\n", opts.Method)
		cli.Usage(stderr, name, precName, appcore.Methods)
		return 2
	}
	return flush(code)
}
