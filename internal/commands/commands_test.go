package commands

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("place cube")
	require.True(t, ok)
	assert.Equal(t, []string{"place", "cube"}, args)

	_, ok = Parse("   ")
	assert.False(t, ok)
}

func TestExecuteRunsCommand(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	visible := fs.Bool("visible", true, "")
	var got bool
	r.Register("grid", fs, func() error {
		got = *visible
		return nil
	})

	require.NoError(t, r.Execute([]string{"grid", "-visible=false"}))
	assert.False(t, got)
}

func TestExecutePositionalArgs(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("place", flag.ContinueOnError)
	var kind string
	r.Register("place", fs, func() error {
		kind = fs.Arg(0)
		return nil
	})

	require.NoError(t, r.Execute([]string{"place", "sphere"}))
	assert.Equal(t, "sphere", kind)
}

func TestExecuteUnknownCommand(t *testing.T) {
	r := NewRegistry()
	err := r.Execute([]string{"warp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warp")
}

func TestExecuteFlagError(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	fs.Bool("visible", true, "")
	r.Register("grid", fs, func() error { return nil })

	err := r.Execute([]string{"grid", "-nope"})
	assert.Error(t, err)
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"reset", "grid", "place"} {
		r.Register(n, flag.NewFlagSet(n, flag.ContinueOnError), func() error { return nil })
	}
	assert.Equal(t, []string{"grid", "place", "reset"}, r.Names())
}
