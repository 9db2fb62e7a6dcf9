package decintegration

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"picalc/internal/decapp"
)

const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

func run(t *testing.T, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = decapp.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestAtanDigitsMatchReference(t *testing.T) {
	code, out, _ := run(t, "atan", "60", "50")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, piDigits[:52]), "got %q", out)
}

func TestTrapSingleIntervalIsExactlyTwo(t *testing.T) {
	code, out, _ := run(t, "trap", "25", "1")
	require.Equal(t, 0, code)
	require.Regexp(t, regexp.MustCompile(`^2\.0+\n$`), out)
}

func TestMonteCarloDeterministic(t *testing.T) {
	_, first, _ := run(t, "mc", "20", "500")
	_, second, _ := run(t, "mc", "20", "500")
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

func TestUnknownMethodExitsTwo(t *testing.T) {
	code, out, errOut := run(t, "chudnovsky", "30", "10")
	require.Equal(t, 2, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "Usage:")
}

func TestWrongArgCountExitsOne(t *testing.T) {
	for _, argv := range [][]string{{}, {"mc", "20"}, {"mc", "20", "10", "1"}} {
		code, out, errOut := run(t, argv...)
		require.Equal(t, 1, code, "argv=%v", argv)
		require.Empty(t, out, "argv=%v", argv)
		require.Contains(t, errOut, "Usage:")
	}
}

func TestInvalidDigitsExitsOne(t *testing.T) {
	code, _, errOut := run(t, "mc", "zero", "10")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "invalid digits")
}
