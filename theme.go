package chalk

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme is the immutable styling configuration shared by all structures in a
// scene. Construct one via DefaultTheme or LoadTheme and pass it by value;
// structures never mutate it, so a single Theme can back any number of
// structure instances without cross-instance bleed.
type Theme struct {
	FontSize  float64
	FontColor Color

	ContainerColor Color // cell / node border
	FillColor      Color // cell / node interior
	Background     Color // quote cells and resting marker color

	CellGap    float64 // horizontal gap between array cells
	NodeRadius float64 // linked list node radius
	MarkerSize float64 // pointer triangle edge length
	MarkerGap  float64 // distance between a cell edge and its marker

	AnimSeconds float64 // duration of animated transitions

	// Highlight palette. Color1..Color3 color distinct indices in order;
	// the pair and triple entries resolve same-index collisions.
	Color1, Color2, Color3    Color
	Color12, Color13, Color23 Color
	Color123                  Color
	ValueMatch                Color // highlight-by-value default
}

// DefaultTheme returns the stock dark styling used by the examples.
func DefaultTheme() Theme {
	return Theme{
		FontSize:  32,
		FontColor: ColorWhite,

		ContainerColor: Hex("#bbbbbb"),
		FillColor:      Hex("#444444"),
		Background:     Hex("#2a2a2a"),

		CellGap:    6,
		NodeRadius: 28,
		MarkerSize: 12,
		MarkerGap:  9,

		AnimSeconds: 0.2,

		Color1:     Hex("#fc6255"),
		Color2:     Hex("#58c4dd"),
		Color3:     Hex("#83c167"),
		Color12:    Hex("#caa3e8"),
		Color13:    Hex("#e8c11c"),
		Color23:    Hex("#5cd0b3"),
		Color123:   Hex("#ffffff"),
		ValueMatch: Hex("#e8c11c"),
	}
}

// themeFile mirrors the TOML layout. All fields are optional; unset fields
// keep their DefaultTheme value.
type themeFile struct {
	FontSize   *float64 `toml:"font_size"`
	FontColor  *string  `toml:"font_color"`
	Container  *string  `toml:"container_color"`
	Fill       *string  `toml:"fill_color"`
	Background *string  `toml:"background_color"`

	CellGap    *float64 `toml:"cell_gap"`
	NodeRadius *float64 `toml:"node_radius"`
	MarkerSize *float64 `toml:"marker_size"`
	MarkerGap  *float64 `toml:"marker_gap"`

	AnimSeconds *float64 `toml:"anim_seconds"`

	Highlight struct {
		Color1     *string `toml:"color_1"`
		Color2     *string `toml:"color_2"`
		Color3     *string `toml:"color_3"`
		Color12    *string `toml:"color_12"`
		Color13    *string `toml:"color_13"`
		Color23    *string `toml:"color_23"`
		Color123   *string `toml:"color_123"`
		ValueMatch *string `toml:"value_match"`
	} `toml:"highlight"`
}

// LoadTheme reads a TOML theme file and merges it over DefaultTheme.
// Malformed files and invalid values fail here, not at first render.
func LoadTheme(path string) (Theme, error) {
	var f themeFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Theme{}, &ConfigError{Field: "theme", Reason: err.Error()}
	}
	return mergeTheme(DefaultTheme(), f)
}

// ParseTheme is LoadTheme for in-memory TOML data.
func ParseTheme(data string) (Theme, error) {
	var f themeFile
	if _, err := toml.Decode(data, &f); err != nil {
		return Theme{}, &ConfigError{Field: "theme", Reason: err.Error()}
	}
	return mergeTheme(DefaultTheme(), f)
}

func mergeTheme(t Theme, f themeFile) (Theme, error) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	var firstErr error
	setC := func(dst *Color, src *string, field string) {
		if src == nil {
			return
		}
		c, err := ParseColor(*src)
		if err != nil && firstErr == nil {
			firstErr = &ConfigError{Field: field, Reason: err.Error()}
			return
		}
		*dst = c
	}

	setF(&t.FontSize, f.FontSize)
	setF(&t.CellGap, f.CellGap)
	setF(&t.NodeRadius, f.NodeRadius)
	setF(&t.MarkerSize, f.MarkerSize)
	setF(&t.MarkerGap, f.MarkerGap)
	setF(&t.AnimSeconds, f.AnimSeconds)

	setC(&t.FontColor, f.FontColor, "font_color")
	setC(&t.ContainerColor, f.Container, "container_color")
	setC(&t.FillColor, f.Fill, "fill_color")
	setC(&t.Background, f.Background, "background_color")
	setC(&t.Color1, f.Highlight.Color1, "highlight.color_1")
	setC(&t.Color2, f.Highlight.Color2, "highlight.color_2")
	setC(&t.Color3, f.Highlight.Color3, "highlight.color_3")
	setC(&t.Color12, f.Highlight.Color12, "highlight.color_12")
	setC(&t.Color13, f.Highlight.Color13, "highlight.color_13")
	setC(&t.Color23, f.Highlight.Color23, "highlight.color_23")
	setC(&t.Color123, f.Highlight.Color123, "highlight.color_123")
	setC(&t.ValueMatch, f.Highlight.ValueMatch, "highlight.value_match")

	if firstErr != nil {
		return Theme{}, firstErr
	}
	if err := t.validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// validate rejects values that would produce degenerate geometry.
func (t Theme) validate() error {
	checks := []struct {
		name string
		v    float64
		min  float64
	}{
		{"font_size", t.FontSize, 1},
		{"cell_gap", t.CellGap, 0},
		{"node_radius", t.NodeRadius, 1},
		{"marker_size", t.MarkerSize, 1},
		{"marker_gap", t.MarkerGap, 0},
		{"anim_seconds", t.AnimSeconds, 0},
	}
	for _, c := range checks {
		if c.v < c.min {
			return &ConfigError{
				Field:  c.name,
				Reason: fmt.Sprintf("%g is below the minimum %g", c.v, c.min),
			}
		}
	}
	return nil
}
