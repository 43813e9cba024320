package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// isolateConfig points XDG lookups at an empty directory so a developer's own
// config file cannot leak into command tests.
func isolateConfig(t *testing.T) string {
	t.Helper()

	t.Cleanup(xdg.Reload)

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "system"))
	xdg.Reload()
	return home
}

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootDefaultsToPaletteCommand(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 26)
	require.Equal(t, "Rosewater      "+strings.Repeat("█", 14)+" │ #f4dbd6 │ rgb(244, 219, 214) │ hsl( 10,  58%,  90%)", lines[0])
	require.True(t, strings.HasPrefix(lines[25], "Crust "))
}

func TestPaletteCommandMatchesRootDefault(t *testing.T) {
	isolateConfig(t)

	fromRoot, _, err := executeCommand(newRootCmd(), "--color", "never")
	require.NoError(t, err)

	fromSub, _, err := executeCommand(newRootCmd(), "--color", "never", "palette")
	require.NoError(t, err)

	require.Equal(t, fromRoot, fromSub)
}

func TestPaletteCommandFormatAndFlavor(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "--flavor", "mocha", "--color", "never", "palette", "-F", `%n|%x\n`)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "Rosewater     |#f5e0dc\nFlamingo      |#f2cdcd\n"))
	require.Equal(t, 26, strings.Count(stdout, "\n"))
}

func TestPaletteCommandShortFlavorFlag(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "-f", "latte", "--color", "never", "palette", "--format", "%x ")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "#dc8a78 #dd7878 "))
}

func TestPaletteCommandRejectsUnknownFlavor(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "--flavor", "espresso")
	require.Error(t, err)
	require.Contains(t, err.Error(), "espresso")
	require.Empty(t, stdout)
}

func TestPaletteCommandReportsFormatErrors(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "palette", "-F", "%n %z")
	require.ErrorIs(t, err, paletteerrors.ErrUnknownColorDirective)
	require.Contains(t, err.Error(), "{%, n, b, r, h, x}")
	require.Empty(t, stdout)

	_, _, err = executeCommand(newRootCmd(), "palette", "-F", `%n\`)
	require.ErrorIs(t, err, paletteerrors.ErrUnterminatedDirective)
}

func TestPaletteCommandColorAlways(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "--color", "always", "palette", "-F", `%b\n`)
	require.NoError(t, err)
	require.Contains(t, stdout, "38;2;244;219;214")
}

func TestPaletteCommandRejectsUnknownColorMode(t *testing.T) {
	isolateConfig(t)

	_, _, err := executeCommand(newRootCmd(), "--color", "sometimes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color mode")
}

func TestPaletteCommandUsesConfigDefaults(t *testing.T) {
	home := isolateConfig(t)

	dir := filepath.Join(home, "palette")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`flavor: frappe
format: "%x,"
color: never
`), 0o644))

	stdout, _, err := executeCommand(newRootCmd())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "#f2d5cf,#eebebe,"))

	stdout, _, err = executeCommand(newRootCmd(), "--flavor", "latte", "palette", "-F", "%n|")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "Rosewater     |Flamingo      |"))
}

func TestPaletteCommandInvalidConfig(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`format = "%q"`), 0o644))

	stdout, _, err := executeCommand(newRootCmd(), "--config", path)
	require.Error(t, err)

	var validationErr *paletteerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "format", validationErr.Field)
	require.Contains(t, err.Error(), "Suggestion:")
	require.Empty(t, stdout)
}

func TestPaletteCommandCustomCatalog(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`flavors:
  - name: macchiato
    colors:
      - {name: "Ink", hex: "#101010", rgb: [16, 16, 16], hsl: [0, 0, 0.06]}
`), 0o644))

	stdout, _, err := executeCommand(newRootCmd(), "--palette", path, "--color", "never", "palette", "-F", `%n%r%h\n`)
	require.NoError(t, err)
	require.Equal(t, "Ink           rgb( 16,  16,  16)hsl(  0,   0%,   6%)\n", stdout)

	_, _, err = executeCommand(newRootCmd(), "--palette", path, "--flavor", "mocha")
	var flavorErr *paletteerrors.FlavorError
	require.ErrorAs(t, err, &flavorErr)
}

func TestPaletteCommandVerboseLogsToStderr(t *testing.T) {
	isolateConfig(t)

	stdout, stderr, err := executeCommand(newRootCmd(), "-v", "--color", "never", "palette", "-F", "%x")
	require.NoError(t, err)
	require.NotContains(t, stdout, "printing palette")
	require.Contains(t, stderr, "printing palette")
}

func TestFlavorsCommand(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCommand(newRootCmd(), "--flavor", "mocha", "flavors")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "FLAVOR")
	require.Equal(t, []string{"latte", "26"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"mocha", "26", "*"}, strings.Fields(lines[4]))
}

func TestFlavorsCommandWarnsAboutMissingFlavors(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`flavors:
  - name: macchiato
    colors:
      - {name: "Ink", hex: "#101010", rgb: [16, 16, 16], hsl: [0, 0, 0.06]}
`), 0o644))

	stdout, stderr, err := executeCommand(newRootCmd(), "--palette", path, "flavors")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, []string{"latte", "-"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"macchiato", "1", "*"}, strings.Fields(lines[3]))
	require.Equal(t, 3, strings.Count(stderr, "flavor unavailable"))
}

func TestConfigLoadIsLoggedAtInfo(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o644))

	_, stderr, err := executeCommand(newRootCmd(), "--config", path, "--color", "never", "palette", "-F", "%x")
	require.NoError(t, err)
	require.Contains(t, stderr, "loaded configuration")
	require.NotContains(t, stderr, "printing palette")
}

func TestEscapeTemplate(t *testing.T) {
	t.Parallel()

	require.Equal(t, `%n %b │ %x │ %r │ %h\n`, escapeTemplate("%n %b │ %x │ %r │ %h\n"))
	require.Equal(t, `a\tb\rc`, escapeTemplate("a\tb\rc"))
}
