package chalk

// StringConfig configures a new String visual.
type StringConfig struct {
	Theme *Theme
	Font  Font
	Name  string
	Pos   Vec2

	// Centered centers the row on Pos instead of anchoring its left edge.
	Centered bool
	// Animated makes highlight and movement changes tween by default.
	Animated bool
}

// String renders a text value as a row of square character cells flanked by
// quote cells. Each character is one logical element: highlights and pointers
// address characters by index, exactly like Array cells.
type String struct {
	core
}

// NewString builds the initial visual for value and attaches it to the scene.
func NewString(scene *Scene, value string, cfg StringConfig) (*String, error) {
	if scene == nil {
		return nil, &ConfigError{Field: "scene", Reason: "required"}
	}
	if cfg.Font == nil {
		return nil, &ConfigError{Field: "font", Reason: "required"}
	}
	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	if err := theme.validate(); err != nil {
		return nil, err
	}
	name := cfg.Name
	if name == "" {
		name = "string"
	}

	s := &String{}
	s.core.init(scene, theme, cfg.Font, name, cfg.Pos, cfg.Animated)
	s.core.layout = &rectLayout{
		c:        &s.core,
		gap:      0,
		square:   true,
		quotes:   true,
		centered: cfg.Centered,
		emptyLit: `""`,
	}
	if err := s.core.seed(charsOf(value)); err != nil {
		s.core.Dispose()
		return nil, err
	}
	return s, nil
}

// UpdateValue reconciles the visual against a new text value.
func (s *String) UpdateValue(value string, animated bool) error {
	return s.core.updateValue(charsOf(value), animated)
}

// Text returns the current logical value as a plain string.
func (s *String) Text() string {
	out := make([]byte, 0, len(s.data))
	for _, a := range s.data {
		out = append(out, a.text...)
	}
	return string(out)
}

// charsOf splits a string into per-rune atoms.
func charsOf(s string) []any {
	out := make([]any, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
