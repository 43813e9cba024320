package config

// Config holds user defaults for the palette command. Every field is optional;
// command-line flags take precedence over values set here. Palette points at a
// catalog file that replaces the built-in colors.
type Config struct {
	Flavor   string `yaml:"flavor,omitempty" toml:"flavor" validate:"omitempty,flavor"`
	Format   string `yaml:"format,omitempty" toml:"format" validate:"omitempty,template"`
	Color    string `yaml:"color,omitempty" toml:"color" validate:"omitempty,color_mode"`
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	Palette  string `yaml:"palette,omitempty" toml:"palette"`
}
