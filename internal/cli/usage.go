package cli

import (
	"fmt"
	"io"

	"picalc/internal/version"
)

var methodHelp = map[string]string{
	"mc":    "Monte Carlo sampling of the unit square (n = trials)",
	"trap":  "trapezoid-rule quadrature of the quarter circle (n = grid intervals)",
	"atan":  "Machin's two-term arctangent formula (n = series terms)",
	"atan2": "six-term Machin-like formula, faster convergence (n = series terms)",
}

// Usage writes one tool's usage text to out. precName selects the
// three-argument form used by the arbitrary-precision surfaces.
func Usage(out io.Writer, name, precName string, methods []string) {
	fmt.Fprintf(out, "%s - pi approximation toolkit\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	if precName != "" {
		fmt.Fprintf(out, "Usage: %s [flags] <method> <%s> <n>\n\n", name, precName)
	} else {
		fmt.Fprintf(out, "Usage: %s [flags] <method> <n>\n\n", name)
	}

	fmt.Fprintln(out, "Methods:")
	for _, m := range methods {
		fmt.Fprintf(out, "  %-6s %s\n", m, methodHelp[m])
	}

	switch precName {
	case "bits":
		fmt.Fprintln(out, "\nEvery intermediate value carries a mantissa of <bits> bits.")
	case "digits":
		fmt.Fprintln(out, "\nEvery intermediate value carries a significand of <digits> decimal digits.")
	}

	fmt.Fprintln(out, "\nFlags:")
	fmt.Fprintln(out, "      --verbose   log parameters and timing to stderr")
	fmt.Fprintln(out, "  -v, --version   print version and exit")
	fmt.Fprintln(out, "  -h, --help      show this help and exit")
}
