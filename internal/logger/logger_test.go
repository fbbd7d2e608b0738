package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLogRecordsLines(t *testing.T) {
	chtemp(t)
	l := New()
	l.Log("placed cube")
	l.Logf("placed %s", "sphere")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "placed cube"))
	assert.True(t, strings.HasSuffix(lines[1], "placed sphere"))
}

func TestLogAppendsToFile(t *testing.T) {
	chtemp(t)
	l := New()
	l.Log("one")
	l.Log("two")

	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "one")
	assert.Contains(t, string(data), "two")
}

func TestHistoryIsCapped(t *testing.T) {
	chtemp(t)
	l := New()
	for i := 0; i < maxLines+50; i++ {
		l.Log("line")
	}
	assert.Len(t, l.Lines(), maxLines)
}
