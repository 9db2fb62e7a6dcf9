// Package appcore runs one validated estimator invocation and prints the
// approximation. It is shared by the picalc, picalc-mp and picalc-dec apps.
package appcore

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"picalc-core/machin"
	"picalc-core/montecarlo"
	"picalc-core/num"
	"picalc-core/quadrature"
	"picalc/internal/cmdutil"
)

// Method names accepted by the command surfaces.
const (
	MethodMC    = "mc"
	MethodTrap  = "trap"
	MethodAtan  = "atan"
	MethodAtan2 = "atan2"
)

// Methods lists every method in usage order.
var Methods = []string{MethodMC, MethodTrap, MethodAtan, MethodAtan2}

// Options describes one estimator invocation.
type Options struct {
	Tool    string
	Method  string
	N       int64
	Verbose bool
}

// Estimate dispatches method onto f with n iterations, trials or grid
// intervals. ok is false when the method is not recognized.
func Estimate(f num.Field, method string, n int64) (v num.Value, ok bool) {
	switch method {
	case MethodMC:
		return montecarlo.Estimate(f, n), true
	case MethodTrap:
		return quadrature.Trapezoid(f, n), true
	case MethodAtan:
		return machin.Classic(f, int(n)), true
	case MethodAtan2:
		return machin.Fast(f, int(n)), true
	}
	return nil, false
}

// Run executes one estimator on f and writes the decimal approximation and
// a trailing newline to stdout. It returns 0 on success and 2 when the
// method is unknown; usage output on failure is the caller's concern.
func Run(stdout, stderr io.Writer, f num.Field, o Options) int {
	log := cmdutil.NewLogger(o.Verbose, stderr).With(
		zap.String("tool", o.Tool),
		zap.String("method", o.Method),
		zap.Int64("n", o.N),
	)
	defer func() { _ = log.Sync() }()

	start := time.Now()
	v, ok := Estimate(f, o.Method, o.N)
	if !ok {
		return 2
	}
	text := v.Text()
	log.Debug("estimate complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("leading", clip(text, 12)),
	)
	_, _ = fmt.Fprintln(stdout, text)
	return 0
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
