package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/config"
	"github.com/alexisbeaulieu97/palette/internal/logger"
	"github.com/alexisbeaulieu97/palette/internal/palette"
	"github.com/alexisbeaulieu97/palette/internal/style"
)

// AppContext bundles the settings and services resolved for one invocation.
// Flags win over the config file, which wins over built-in defaults.
type AppContext struct {
	Config   *config.Config
	Log      *logger.Logger
	Provider palette.Provider
	Flavor   palette.Flavor
	Color    style.ColorMode
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, cfgPath, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", cfgPath, err, "Fix the configuration file or pass --config with a valid path.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("create logger", level, err, "Use one of trace, debug, info, warn or error for log_level.")
	}
	if cfgPath != "" {
		log.WithFields(map[string]any{"path": cfgPath}).Info("loaded configuration")
	}

	flavor := flags.flavor
	if !cmd.Flags().Changed("flavor") && cfg.Flavor != "" {
		// Already validated with the config.
		flavor, _ = palette.ParseFlavor(cfg.Flavor)
	}

	colorValue := flags.color
	if !cmd.Flags().Changed("color") && cfg.Color != "" {
		colorValue = cfg.Color
	}
	mode, err := style.ParseColorMode(colorValue)
	if err != nil {
		return nil, newCommandError("resolve color mode", colorValue, err, "Pass --color auto, always or never.")
	}

	catalogPath := flags.paletteFile
	if catalogPath == "" {
		catalogPath = cfg.Palette
	}
	provider, err := loadProvider(catalogPath)
	if err != nil {
		return nil, newCommandError("load palette", catalogPath, err, "Check the palette catalog file and try again.")
	}

	return &AppContext{
		Config:   cfg,
		Log:      log,
		Provider: provider,
		Flavor:   flavor,
		Color:    mode,
	}, nil
}

func loadProvider(path string) (palette.Provider, error) {
	if path == "" {
		return palette.Builtin()
	}
	return palette.LoadCatalog(path)
}
