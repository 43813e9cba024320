package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectiveErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "unterminated",
			err:      NewUnterminatedDirective('%', 3),
			sentinel: ErrUnterminatedDirective,
			contains: `after '%'`,
		},
		{
			name:     "unknown color",
			err:      NewUnknownColorDirective('z', []rune("%nbrhx"), 0),
			sentinel: ErrUnknownColorDirective,
			contains: "{%, n, b, r, h, x}",
		},
		{
			name:     "unknown escape",
			err:      NewUnknownEscapeDirective('q', []rune("ntr\\"), 5),
			sentinel: ErrUnknownEscapeDirective,
			contains: `{n, t, r, \}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, tt.err, tt.sentinel)
			require.Contains(t, tt.err.Error(), tt.contains)

			var directiveErr *DirectiveError
			require.ErrorAs(t, tt.err, &directiveErr)
		})
	}
}

func TestDirectiveErrorDoesNotMatchOtherKinds(t *testing.T) {
	t.Parallel()

	err := NewUnknownColorDirective('z', []rune("%nbrhx"), 1)
	require.False(t, stdErrors.Is(err, ErrUnterminatedDirective))
	require.False(t, stdErrors.Is(err, ErrUnknownEscapeDirective))

	var directiveErr *DirectiveError
	require.ErrorAs(t, err, &directiveErr)
	require.Equal(t, 'z', directiveErr.Char)
	require.Equal(t, 1, directiveErr.Offset)
	require.Contains(t, err.Error(), `'z'`)
}

func TestWriteErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("broken pipe")
	err := NewWriteError(underlying)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "broken pipe")
}

func TestFlavorErrorIncludesName(t *testing.T) {
	t.Parallel()

	err := NewFlavorError("espresso", nil)

	var flavorErr *FlavorError
	require.ErrorAs(t, err, &flavorErr)
	require.Equal(t, "espresso", flavorErr.Name)
	require.Contains(t, err.Error(), "unknown flavor")

	underlying := stdErrors.New("missing from catalog")
	wrapped := NewFlavorError("mocha", underlying)
	require.True(t, stdErrors.Is(wrapped, underlying))
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml")
}

func TestNewYAMLParseErrorExtractsLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		line int
	}{
		{"decoder message", fmt.Errorf("yaml: line 7: did not find expected node content"), 7},
		{"type error", fmt.Errorf("yaml: unmarshal errors:\n  line 3: cannot unmarshal !!seq into string"), 3},
		{"no line", fmt.Errorf("yaml: input error"), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewYAMLParseError("palette.yaml", tt.err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, "palette.yaml", parseErr.Path)
			require.Equal(t, tt.line, parseErr.Line)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("flavor", "unknown flavor \"espresso\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "flavor", validationErr.Field)
	require.Contains(t, validationErr.Message, "espresso")
}
