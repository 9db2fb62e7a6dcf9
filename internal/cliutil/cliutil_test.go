package cliutil

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Bool("verbose", false, "")
	fs.String("mode", "", "")
	return fs
}

func TestSplitFlagsAfterPositionals(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"mc", "100", "--verbose"})
	require.Equal(t, []string{"--verbose"}, flagArgs)
	require.Equal(t, []string{"mc", "100"}, posArgs)
}

func TestSplitValueFlagConsumesArgument(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"--mode", "x", "trap", "10"})
	require.Equal(t, []string{"--mode", "x"}, flagArgs)
	require.Equal(t, []string{"trap", "10"}, posArgs)
}

func TestSplitDoubleDashEndsFlags(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"--verbose", "--", "--mode"})
	require.Equal(t, []string{"--verbose"}, flagArgs)
	require.Equal(t, []string{"--mode"}, posArgs)
}

func TestBoolFlags(t *testing.T) {
	m := BoolFlags(newFS())
	require.True(t, m["verbose"])
	require.False(t, m["mode"])
}
