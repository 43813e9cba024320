// Package format interprets palette entry templates.
//
// A template is literal text interleaved with two-character directives. A '%'
// directive substitutes a field of the color being painted and a '\' directive
// produces a control character:
//
//	%%  literal percent sign     \n  newline
//	%n  name, padded to 14       \t  tab
//	%b  colored swatch           \r  carriage return
//	%x  hex value                \\  literal backslash
//	%r  rgb(R, G, B)
//	%h  hsl(H, S%, L%)
//
// Templates are scanned once, left to right, on every Paint; there is no
// compiled form.
package format

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/palette/internal/palette"
	"github.com/alexisbeaulieu97/palette/internal/style"
	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// DefaultTemplate prints one color per line: name, swatch, hex, rgb and hsl.
const DefaultTemplate Template = "%n %b │ %x │ %r │ %h\n"

// NameWidth is the minimum width of the %n field.
const NameWidth = 14

const (
	colorMarker  = '%'
	escapeMarker = '\\'
)

var (
	colorDirectives  = []rune{'%', 'n', 'b', 'r', 'h', 'x'}
	escapeDirectives = []rune{'n', 't', 'r', '\\'}
)

// Template is a palette entry format string.
type Template string

// Paint renders template for a single color into w.
func Paint(template string, w io.Writer, color palette.Color, styler style.Styler) error {
	return Template(template).Paint(w, color, styler)
}

// Paint renders the template for a single color into w.
//
// The whole expansion is rendered in memory and handed to w in a single
// write, so a grammar error leaves w untouched. A write fault is returned as
// *errors.WriteError; whatever w accepted before failing stays there.
func (t Template) Paint(w io.Writer, color palette.Color, styler style.Styler) error {
	var out strings.Builder
	out.Grow(len(t))
	sc := scanner{rest: string(t)}

	for {
		offset := sc.offset
		ch, raw, ok := sc.next()
		if !ok {
			break
		}

		switch ch {
		case colorMarker:
			next, _, ok := sc.next()
			if !ok {
				return paletteerrors.NewUnterminatedDirective(ch, offset)
			}
			text, ok := colorDirective(next, color, styler)
			if !ok {
				return paletteerrors.NewUnknownColorDirective(next, colorDirectives, offset)
			}
			out.WriteString(text)
		case escapeMarker:
			next, _, ok := sc.next()
			if !ok {
				return paletteerrors.NewUnterminatedDirective(ch, offset)
			}
			text, ok := escapeDirective(next)
			if !ok {
				return paletteerrors.NewUnknownEscapeDirective(next, escapeDirectives, offset)
			}
			out.WriteString(text)
		default:
			// Raw bytes keep invalid UTF-8 intact.
			out.WriteString(raw)
		}
	}

	if _, err := io.WriteString(w, out.String()); err != nil {
		return paletteerrors.NewWriteError(err)
	}
	return nil
}

// Validate reports the first grammar error in the template without rendering it.
func (t Template) Validate() error {
	return t.Paint(io.Discard, palette.Color{}, style.Plain{})
}

func colorDirective(ch rune, color palette.Color, styler style.Styler) (string, bool) {
	switch ch {
	case '%':
		return "%", true
	case 'n':
		return fmt.Sprintf("%-*s", NameWidth, color.Name), true
	case 'b':
		return styler.Swatch(color), true
	case 'x':
		return styler.Emphasize(color.Hex), true
	case 'r':
		return styler.Emphasize(formatRGB(color.RGB)), true
	case 'h':
		return styler.Emphasize(formatHSL(color.HSL)), true
	default:
		return "", false
	}
}

func escapeDirective(ch rune) (string, bool) {
	switch ch {
	case 'n':
		return "\n", true
	case 't':
		return "\t", true
	case 'r':
		return "\r", true
	case '\\':
		return "\\", true
	default:
		return "", false
	}
}

func formatRGB(rgb [3]uint8) string {
	return fmt.Sprintf("rgb(%3d, %3d, %3d)", rgb[0], rgb[1], rgb[2])
}

// formatHSL expects saturation and lightness as fractions and prints them as percentages.
func formatHSL(hsl [3]float64) string {
	return fmt.Sprintf("hsl(%3d, %3s%%, %3s%%)", int(math.Round(hsl[0])), percent(hsl[1]), percent(hsl[2]))
}

func percent(fraction float64) string {
	return strconv.FormatFloat(math.Round(fraction*100*100)/100, 'f', -1, 64)
}

// scanner walks a template one rune at a time, tracking the rune offset.
type scanner struct {
	rest   string
	offset int
}

// next returns the decoded rune and the bytes it was decoded from.
func (s *scanner) next() (rune, string, bool) {
	if s.rest == "" {
		return 0, "", false
	}
	r, size := utf8.DecodeRuneInString(s.rest)
	raw := s.rest[:size]
	s.rest = s.rest[size:]
	s.offset++
	return r, raw, true
}
