package printer

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/palette/internal/format"
	"github.com/alexisbeaulieu97/palette/internal/logger"
	"github.com/alexisbeaulieu97/palette/internal/palette"
	"github.com/alexisbeaulieu97/palette/internal/style"
	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// Printer renders every color of a flavor through a format template.
//
// Print only reads the printer's state, so concurrent Print calls to
// different writers are safe as long as nothing calls SetTemplate or
// SetFlavor at the same time.
type Printer struct {
	provider palette.Provider
	styler   style.Styler
	log      *logger.Logger
	template format.Template
	flavor   palette.Flavor
}

// Option customizes a Printer.
type Option func(*Printer)

// WithFlavor selects the initial flavor.
func WithFlavor(flavor palette.Flavor) Option {
	return func(p *Printer) {
		p.flavor = flavor
	}
}

// WithTemplate selects the initial template.
func WithTemplate(template format.Template) Option {
	return func(p *Printer) {
		p.template = template
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(log *logger.Logger) Option {
	return func(p *Printer) {
		p.log = log
	}
}

// New creates a Printer using the default template and flavor unless overridden.
func New(provider palette.Provider, styler style.Styler, opts ...Option) *Printer {
	p := &Printer{
		provider: provider,
		styler:   styler,
		template: format.DefaultTemplate,
		flavor:   palette.DefaultFlavor,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetTemplate replaces the template used by later Print calls. The template is
// not checked until it is painted.
func (p *Printer) SetTemplate(template format.Template) {
	p.template = template
}

// SetFlavor replaces the flavor used by later Print calls.
func (p *Printer) SetFlavor(flavor palette.Flavor) {
	p.flavor = flavor
}

// Template returns the active template.
func (p *Printer) Template() format.Template {
	return p.template
}

// Flavor returns the active flavor.
func (p *Printer) Flavor() palette.Flavor {
	return p.flavor
}

// Print paints every color of the active flavor into w, in provider order.
// The first error stops printing and is returned as is; output from colors
// painted before it stays in w.
func (p *Printer) Print(w io.Writer) error {
	log := p.log.WithFields(map[string]any{"flavor": p.flavor.String()})

	if !p.flavor.Valid() {
		return paletteerrors.NewFlavorError(p.flavor.String(), fmt.Errorf("not a declared flavor"))
	}

	colors, err := p.provider.Colors(p.flavor)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Debug("resolving palette failed")
		return err
	}

	log.Debug("printing palette")

	for i, color := range colors {
		if err := p.template.Paint(w, color, p.styler); err != nil {
			log.WithFields(map[string]any{"index": i, "color": color.Name, "error": err.Error()}).Debug("painting color failed")
			return err
		}
	}

	log.WithFields(map[string]any{"colors": len(colors)}).Debug("palette printed")
	return nil
}
