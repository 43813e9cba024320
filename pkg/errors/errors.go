package errors

import (
	stdErrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// Sentinels matched by DirectiveError through errors.Is.
var (
	ErrUnterminatedDirective  = stdErrors.New("unterminated directive")
	ErrUnknownColorDirective  = stdErrors.New("unknown color directive")
	ErrUnknownEscapeDirective = stdErrors.New("unknown escape directive")
)

// DirectiveKind classifies a template grammar failure.
type DirectiveKind int

const (
	KindUnterminated DirectiveKind = iota
	KindUnknownColor
	KindUnknownEscape
)

func (k DirectiveKind) sentinel() error {
	switch k {
	case KindUnknownColor:
		return ErrUnknownColorDirective
	case KindUnknownEscape:
		return ErrUnknownEscapeDirective
	default:
		return ErrUnterminatedDirective
	}
}

// DirectiveError reports a malformed directive in a format template.
type DirectiveError struct {
	Kind    DirectiveKind
	Marker  rune
	Char    rune
	Allowed []rune
	Offset  int
}

// NewUnterminatedDirective constructs a DirectiveError for a marker at the end of the template.
func NewUnterminatedDirective(marker rune, offset int) error {
	return &DirectiveError{Kind: KindUnterminated, Marker: marker, Offset: offset}
}

// NewUnknownColorDirective constructs a DirectiveError for an unsupported character after '%'.
func NewUnknownColorDirective(char rune, allowed []rune, offset int) error {
	return &DirectiveError{Kind: KindUnknownColor, Marker: '%', Char: char, Allowed: allowed, Offset: offset}
}

// NewUnknownEscapeDirective constructs a DirectiveError for an unsupported character after '\'.
func NewUnknownEscapeDirective(char rune, allowed []rune, offset int) error {
	return &DirectiveError{Kind: KindUnknownEscape, Marker: '\\', Char: char, Allowed: allowed, Offset: offset}
}

func (e *DirectiveError) Error() string {
	if e == nil {
		return ""
	}

	switch e.Kind {
	case KindUnknownColor:
		return fmt.Sprintf("format error at offset %d: unknown color directive %q, must be one of %s", e.Offset, e.Char, allowedSet(e.Allowed))
	case KindUnknownEscape:
		return fmt.Sprintf("format error at offset %d: unknown escape directive %q, must be one of %s", e.Offset, e.Char, allowedSet(e.Allowed))
	default:
		return fmt.Sprintf("format error at offset %d: expected directive character after %q", e.Offset, e.Marker)
	}
}

// Is reports whether target is the sentinel for this error's kind.
func (e *DirectiveError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.Kind.sentinel()
}

func allowedSet(allowed []rune) string {
	parts := make([]string, len(allowed))
	for i, r := range allowed {
		parts[i] = string(r)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// WriteError indicates the output sink rejected formatted output.
type WriteError struct {
	Err error
}

// NewWriteError constructs a WriteError.
func NewWriteError(err error) error {
	return &WriteError{Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FlavorError indicates a flavor the palette provider cannot resolve.
type FlavorError struct {
	Name string
	Err  error
}

// NewFlavorError constructs a FlavorError for the given flavor name.
func NewFlavorError(name string, err error) error {
	return &FlavorError{Name: name, Err: err}
}

func (e *FlavorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("flavor error [%s]: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("flavor error [%s]: unknown flavor", e.Name)
}

// Unwrap exposes the underlying error.
func (e *FlavorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a configuration or catalog parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

// NewYAMLParseError constructs a ParseError for a yaml.v3 decode failure,
// taking the line number from the decoder's message when it carries one.
func NewYAMLParseError(path string, err error) error {
	return NewParseError(path, yamlLine(err), err)
}

func yamlLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLinePattern.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
