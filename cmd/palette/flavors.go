package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/palette"
)

func newFlavorsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flavors",
		Short: "List available palette flavors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlavors(cmd, root)
		},
	}

	return cmd
}

func runFlavors(cmd *cobra.Command, root *rootFlags) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "FLAVOR\tCOLORS\tSELECTED")

	for _, flavor := range palette.Flavors() {
		count := "-"
		if colors, err := app.Provider.Colors(flavor); err == nil {
			count = fmt.Sprint(len(colors))
		} else {
			app.Log.WithFields(map[string]any{"flavor": flavor.String(), "error": err.Error()}).Warn("flavor unavailable")
		}

		selected := ""
		if flavor == app.Flavor {
			selected = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", flavor, count, selected)
	}

	return writer.Flush()
}
