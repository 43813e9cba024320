// Package style renders emphasized text and color swatches for terminal output.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/palette/internal/palette"
)

// SwatchWidth is the number of block characters in a rendered swatch.
const SwatchWidth = 14

const swatchBlock = "█"

// Styler applies visual styles to formatted text.
type Styler interface {
	Emphasize(text string) string
	Swatch(color palette.Color) string
}

// Plain renders without escape sequences.
type Plain struct{}

// Emphasize returns text unchanged.
func (Plain) Emphasize(text string) string {
	return text
}

// Swatch returns the bare block run.
func (Plain) Swatch(palette.Color) string {
	return strings.Repeat(swatchBlock, SwatchWidth)
}

// Lipgloss renders styles through a lipgloss renderer bound to the output writer.
type Lipgloss struct {
	renderer *lipgloss.Renderer
	emphasis lipgloss.Style
}

// NewLipgloss creates a Styler for w. Without WithProfile the color profile is detected from w.
func NewLipgloss(w io.Writer, opts ...Option) *Lipgloss {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	renderer := lipgloss.NewRenderer(w)
	if cfg.profileSet {
		renderer.SetColorProfile(cfg.profile)
	}

	return &Lipgloss{
		renderer: renderer,
		emphasis: renderer.NewStyle().Bold(true),
	}
}

type options struct {
	profile    termenv.Profile
	profileSet bool
}

// Option customizes a Lipgloss styler.
type Option func(*options)

// WithProfile forces a color profile instead of detecting one from the writer.
func WithProfile(profile termenv.Profile) Option {
	return func(o *options) {
		o.profile = profile
		o.profileSet = true
	}
}

// Emphasize renders text in bold.
func (l *Lipgloss) Emphasize(text string) string {
	return l.emphasis.Render(text)
}

// Swatch renders a solid block using the color's RGB value as foreground.
func (l *Lipgloss) Swatch(color palette.Color) string {
	fg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color.RGB[0], color.RGB[1], color.RGB[2]))
	return l.renderer.NewStyle().Foreground(fg).Render(strings.Repeat(swatchBlock, SwatchWidth))
}

// ColorMode controls when styled output is produced.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists accepted mode names.
func ColorModes() []string {
	return []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}
}

// ParseColorMode validates a mode name. An empty name means ColorAuto.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unknown color mode %q, must be one of %s", value, strings.Join(ColorModes(), ", "))
	}
}

// ForMode returns the Styler appropriate for mode when writing to w.
func ForMode(mode ColorMode, w io.Writer) Styler {
	switch mode {
	case ColorNever:
		return Plain{}
	case ColorAlways:
		return NewLipgloss(w, WithProfile(termenv.TrueColor))
	default:
		if !isTerminal(w) {
			return Plain{}
		}
		return NewLipgloss(w)
	}
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
