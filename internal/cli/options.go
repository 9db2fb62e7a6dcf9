// Package cli parses the picalc command line: a small flag set plus the
// positional method / precision / count arguments shared by all surfaces.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"picalc/internal/cliutil"
)

// ErrArgCount reports a malformed invocation with the wrong number of
// positional arguments.
var ErrArgCount = errors.New("wrong number of arguments")

// Options holds flags and positional arguments shared by the picalc tools.
type Options struct {
	Method  string
	Prec    uint  // mantissa bits or decimal digits; unused by the native tool
	N       int64 // series terms, trials or grid intervals
	Verbose bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers flags, parses argv and extracts the positionals.
// precName is "" for the native surface, or the name of the precision
// argument ("bits", "digits") for the arbitrary-precision surfaces.
func ParseArgs(fs *flag.FlagSet, argv []string, precName string) (Options, error) {
	var opt Options
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log parameters and timing to stderr")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	args := posArgs
	want := 2
	if precName != "" {
		want = 3
	}
	if len(args) != want {
		return opt, ErrArgCount
	}
	opt.Method = args[0]

	rest := args[1:]
	if precName != "" {
		p, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil || p == 0 {
			return opt, fmt.Errorf("invalid %s %q", precName, rest[0])
		}
		opt.Prec = uint(p)
		rest = rest[1:]
	}
	n, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil || n < 1 {
		return opt, fmt.Errorf("invalid count %q", rest[0])
	}
	opt.N = n
	return opt, nil
}
