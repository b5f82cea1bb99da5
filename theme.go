package ember

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Theme holds the shared visual defaults the typed constructors apply.
// Colors are CSS-style hex strings so themes stay hand-editable as TOML.
type Theme struct {
	Background string `toml:"background"`
	Surface    string `toml:"surface"`
	Text       string `toml:"text"`
	MutedText  string `toml:"muted_text"`
	Accent     string `toml:"accent"`
	Border     string `toml:"border"`

	ButtonBg       string `toml:"button_bg"`
	ButtonHoverBg  string `toml:"button_hover_bg"`
	ButtonActiveBg string `toml:"button_active_bg"`
	InputBg        string `toml:"input_bg"`

	FontFamily   string  `toml:"font_family"`
	FontSize     float32 `toml:"font_size"`
	LineHeight   float32 `toml:"line_height"`
	CornerRadius float32 `toml:"corner_radius"`
}

// DefaultTheme is a dark theme with a blue accent.
func DefaultTheme() Theme {
	return Theme{
		Background: "#1e1e2e",
		Surface:    "#27273a",
		Text:       "#ffffff",
		MutedText:  "#9ca3af",
		Accent:     "#3b82f6",
		Border:     "#3f3f5a",

		ButtonBg:       "#3b82f6",
		ButtonHoverBg:  "#2563eb",
		ButtonActiveBg: "#1d4ed8",
		InputBg:        "#16161f",

		FontFamily:   "sans-serif",
		FontSize:     14,
		LineHeight:   1.4,
		CornerRadius: 6,
	}
}

// LoadTheme reads a TOML theme file. Fields absent from the file keep the
// default theme's values, so partial themes are valid.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	t := DefaultTheme()
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// validate checks every color field parses so bad themes fail at load time
// instead of producing black widgets.
func (t Theme) validate() error {
	fields := map[string]string{
		"background":       t.Background,
		"surface":          t.Surface,
		"text":             t.Text,
		"muted_text":       t.MutedText,
		"accent":           t.Accent,
		"border":           t.Border,
		"button_bg":        t.ButtonBg,
		"button_hover_bg":  t.ButtonHoverBg,
		"button_active_bg": t.ButtonActiveBg,
		"input_bg":         t.InputBg,
	}
	for name, hex := range fields {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("bad color %s=%q: %w", name, hex, err)
		}
	}
	return nil
}

// mustColor parses a theme hex color, falling back to opaque magenta so a bad
// value is visible rather than invisible. Load-time validation makes the
// fallback unreachable for file-loaded themes.
func (t Theme) mustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		return RGB(1, 0, 1)
	}
	return c
}

// textStyle derives the default text style from the theme.
func (t Theme) textStyle() TextStyle {
	return TextStyle{
		FontFamily: t.FontFamily,
		FontSize:   t.FontSize,
		Color:      t.mustColor(t.Text),
		LineHeight: t.LineHeight,
		VAlign:     TextVAlignMiddle,
	}
}

var currentTheme = DefaultTheme()

// SetTheme replaces the active theme. It affects widgets constructed after
// the call; existing widgets keep the styles they were built with.
func SetTheme(t Theme) { currentTheme = t }

// CurrentTheme returns the active theme.
func CurrentTheme() Theme { return currentTheme }
