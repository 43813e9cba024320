package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/palette"
	"github.com/alexisbeaulieu97/palette/internal/style"
)

type rootFlags struct {
	flavor      palette.Flavor
	color       string
	paletteFile string
	configPath  string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{flavor: palette.DefaultFlavor, color: string(style.ColorAuto)}

	cmd := &cobra.Command{
		Use:           "palette",
		Short:         "Print the Catppuccin color palette",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand prints the palette with its defaults.
			return runPalette(cmd, flags, &paletteOptions{})
		},
	}

	cmd.PersistentFlags().VarP(&flags.flavor, "flavor", "f", "Palette flavor ("+strings.Join(palette.FlavorNames(), ", ")+")")
	cmd.PersistentFlags().StringVar(&flags.color, "color", flags.color, "When to style output ("+strings.Join(style.ColorModes(), ", ")+")")
	cmd.PersistentFlags().StringVar(&flags.paletteFile, "palette", "", "Path to a palette catalog replacing the built-in colors")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to configuration file (default: $XDG_CONFIG_HOME/palette/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	_ = cmd.RegisterFlagCompletionFunc("flavor", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return palette.FlavorNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return style.ColorModes(), cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newFlavorsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
