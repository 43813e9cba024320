package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/format"
	"github.com/alexisbeaulieu97/palette/internal/printer"
	"github.com/alexisbeaulieu97/palette/internal/style"
)

type paletteOptions struct {
	format string
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print every color of a flavor",
		Long: `Print every color of a flavor, one template expansion per color.

Format directives:
  %n  name (padded to 14)    \n  newline
  %b  color swatch           \t  tab
  %x  hex                    \r  carriage return
  %r  rgb(R, G, B)           \\  backslash
  %h  hsl(H, S%, L%)
  %%  literal %`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "F", "", "Per-color format template (default \""+escapeTemplate(format.DefaultTemplate)+"\")")

	return cmd
}

func runPalette(cmd *cobra.Command, root *rootFlags, opts *paletteOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := printer.New(app.Provider, style.ForMode(app.Color, out),
		printer.WithFlavor(app.Flavor),
		printer.WithLogger(app.Log),
	)

	switch {
	case cmd.Flags().Changed("format"):
		p.SetTemplate(format.Template(opts.format))
	case app.Config.Format != "":
		p.SetTemplate(format.Template(app.Config.Format))
	}

	return p.Print(out)
}

// escapeTemplate renders control characters back into their directive form for help text.
func escapeTemplate(t format.Template) string {
	out := make([]rune, 0, len(t))
	for _, r := range string(t) {
		switch r {
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		case '\r':
			out = append(out, '\\', 'r')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
