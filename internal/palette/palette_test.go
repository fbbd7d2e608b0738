package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPalette(t *testing.T) {
	p := Default()
	assert.Equal(t, RGB{1, 0, 0}, p.Color(0))
	assert.Equal(t, RGB{1, 1, 1}, p.Color(Size-1))
}

func TestColorWraps(t *testing.T) {
	p := Default()
	assert.Equal(t, p.Color(0), p.Color(Size))
	assert.Equal(t, p.Color(Size-1), p.Color(-1))
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("colors: {not a list"), 0644))
	p := Load(path)
	assert.Equal(t, Default(), p)
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	data := "colors:\n  - {r: 0.1, g: 0.2, b: 0.3}\n  - {r: 0.4, g: 0.5, b: 0.6}\n"
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	p := Load(path)
	assert.Equal(t, RGB{0.1, 0.2, 0.3}, p.Color(0))
	assert.Equal(t, RGB{0.4, 0.5, 0.6}, p.Color(1))
	assert.Equal(t, Default().Color(2), p.Color(2), "entries past the override keep defaults")
}
