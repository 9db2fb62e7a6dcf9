package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgsNative(t *testing.T) {
	opt, err := ParseArgs(NewFlagSet("picalc"), []string{"mc", "1000"}, "")
	require.NoError(t, err)
	require.Equal(t, "mc", opt.Method)
	require.Equal(t, int64(1000), opt.N)
}

func TestParseArgsPrecision(t *testing.T) {
	opt, err := ParseArgs(NewFlagSet("picalc-mp"), []string{"atan", "256", "50"}, "bits")
	require.NoError(t, err)
	require.Equal(t, "atan", opt.Method)
	require.Equal(t, uint(256), opt.Prec)
	require.Equal(t, int64(50), opt.N)
}

func TestParseArgsWrongCount(t *testing.T) {
	cases := []struct {
		argv     []string
		precName string
	}{
		{[]string{"mc"}, ""},
		{[]string{"mc", "10", "20"}, ""},
		{[]string{"mc", "10"}, "bits"},
		{[]string{"mc", "64", "10", "extra"}, "bits"},
		{[]string{}, ""},
	}
	for _, c := range cases {
		_, err := ParseArgs(NewFlagSet("t"), c.argv, c.precName)
		require.ErrorIs(t, err, ErrArgCount, "argv=%v precName=%q", c.argv, c.precName)
	}
}

func TestParseArgsInvalidNumbers(t *testing.T) {
	cases := []struct {
		argv     []string
		precName string
	}{
		{[]string{"mc", "0"}, ""},
		{[]string{"mc", "-3"}, ""},
		{[]string{"mc", "many"}, ""},
		{[]string{"atan", "0", "5"}, "bits"},
		{[]string{"atan", "wide", "5"}, "bits"},
		{[]string{"atan", "64", "0"}, "digits"},
	}
	for _, c := range cases {
		_, err := ParseArgs(NewFlagSet("t"), c.argv, c.precName)
		require.Error(t, err, "argv=%v precName=%q", c.argv, c.precName)
		require.NotErrorIs(t, err, ErrArgCount)
	}
}

func TestParseArgsVersionSkipsPositionals(t *testing.T) {
	opt, err := ParseArgs(NewFlagSet("picalc"), []string{"-v"}, "")
	require.NoError(t, err)
	require.True(t, opt.Version)
}

func TestParseArgsVerbose(t *testing.T) {
	opt, err := ParseArgs(NewFlagSet("picalc"), []string{"--verbose", "trap", "100"}, "")
	require.NoError(t, err)
	require.True(t, opt.Verbose)
	require.Equal(t, "trap", opt.Method)
}

func TestUsageMentionsMethodsAndArgs(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "picalc-mp", "bits", []string{"mc", "trap", "atan", "atan2"})
	out := buf.String()
	require.Contains(t, out, "Usage: picalc-mp")
	require.Contains(t, out, "<bits>")
	for _, m := range []string{"mc", "trap", "atan", "atan2"} {
		require.Contains(t, out, m)
	}
}
