package console

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateShortLineUnchanged(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello"))
	exact := strings.Repeat("a", maxLineBytes)
	assert.Equal(t, exact, truncate(exact))
}

func TestTruncateLongLine(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := truncate(long)
	assert.Equal(t, maxLineBytes, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// Place a two-byte rune straddling the cut position so a byte-level slice would
	// split it mid-sequence.
	line := strings.Repeat("a", maxLineBytes-4) + "é" + strings.Repeat("b", 50)
	got := truncate(line)
	assert.True(t, utf8.ValidString(got), "truncated line must stay valid UTF-8")
	assert.True(t, strings.HasSuffix(got, "..."))
}
