package editor

// Default style for new objects
const (
	FillColor   = "rgba(0,0,0,1)"
	StrokeColor = "rgba(0,0,0,1)"
	StrokeWidth = 2.0
)

// Style is the session's default style. It applies to objects created
// after it changes; placed objects only change while selected.
type Style struct {
	FillColor   string
	StrokeColor string
	StrokeWidth float64
}

// DefaultStyle returns the built-in defaults
func DefaultStyle() Style {
	return Style{
		FillColor:   FillColor,
		StrokeColor: StrokeColor,
		StrokeWidth: StrokeWidth,
	}
}

// withDefaults fills empty or invalid fields from DefaultStyle
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.FillColor == "" {
		s.FillColor = d.FillColor
	}
	if s.StrokeColor == "" {
		s.StrokeColor = d.StrokeColor
	}
	if s.StrokeWidth < 0 {
		s.StrokeWidth = d.StrokeWidth
	}
	return s
}
