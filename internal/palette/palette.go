package palette

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where a palette override is looked up, relative to the process
// working directory (project root when run via go run ./cmd/modeller).
const DefaultPath = "assets/palette.yaml"

// Size is the number of palette entries. Node color indices live in [0, Size) and
// wrap modulo Size when cycled.
const Size = 8

// RGB is one palette entry with components in [0, 1].
type RGB struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// file is the YAML shape of a palette override (see assets/palette.yaml).
// Entries beyond Size are ignored; missing entries keep their default.
type file struct {
	Colors []RGB `yaml:"colors"`
}

// defaults is the built-in palette: red, green, blue, yellow, magenta, cyan,
// orange, white.
var defaults = [Size]RGB{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
	{1, 0.5, 0},
	{1, 1, 1},
}

// Palette maps color indices to RGB values.
type Palette struct {
	colors [Size]RGB
}

// Default returns the built-in palette.
func Default() *Palette {
	return &Palette{colors: defaults}
}

// Load reads a palette override from path. A missing or invalid file falls back to
// the built-in palette; a partial file overrides only the entries it defines.
func Load(path string) *Palette {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return p
	}
	for i, c := range f.Colors {
		if i >= Size {
			break
		}
		p.colors[i] = c
	}
	return p
}

// Color returns the entry for index. Out-of-range indices wrap, so callers that
// already cycle modulo Size never see a default-by-accident.
func (p *Palette) Color(index int) RGB {
	i := index % Size
	if i < 0 {
		i += Size
	}
	return p.colors[i]
}
