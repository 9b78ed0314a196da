package chalk

// ArrayConfig configures a new Array. Theme and most fields are optional;
// Font is required because all geometry derives from real glyph metrics.
type ArrayConfig struct {
	Theme *Theme
	Font  Font
	Name  string
	Pos   Vec2

	// Gap overrides Theme.CellGap when greater than zero.
	Gap float64
	// Centered centers the row on Pos instead of anchoring its left edge
	// there. Left anchoring is the default so the row does not shift when
	// cells grow or shrink.
	Centered bool
	// AlignLeftText pins cell text to the left padding instead of centering
	// it inside each cell.
	AlignLeftText bool
	// Animated makes highlight and movement changes tween by default.
	// UpdateValue takes its own animated flag per call.
	Animated bool
}

// Array renders a slice of ints, floats, and strings as a row of bordered
// cells. The visual state is reconciled against each new value passed to
// UpdateValue; highlights and pointers survive the rebuild.
type Array struct {
	core
}

// NewArray builds the initial visual for values and attaches it to the scene.
func NewArray(scene *Scene, values []any, cfg ArrayConfig) (*Array, error) {
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
		name = "array"
	}
	gap := theme.CellGap
	if cfg.Gap > 0 {
		gap = cfg.Gap
	}

	a := &Array{}
	a.core.init(scene, theme, cfg.Font, name, cfg.Pos, cfg.Animated)
	a.core.layout = &rectLayout{
		c:         &a.core,
		gap:       gap,
		alignLeft: cfg.AlignLeftText,
		centered:  cfg.Centered,
		emptyLit:  "[]",
	}
	if err := a.core.seed(values); err != nil {
		a.core.Dispose()
		return nil, err
	}
	return a, nil
}

// UpdateValue reconciles the visual against a new logical value. With
// animated set, surviving cells slide to their new positions and additions
// fade in; otherwise the change is instant. On error the visual is untouched.
func (a *Array) UpdateValue(values []any, animated bool) error {
	return a.core.updateValue(values, animated)
}
