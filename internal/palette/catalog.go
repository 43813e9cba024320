package palette

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

//go:embed catppuccin.yaml
var builtinCatalog []byte

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

type catalogFile struct {
	Flavors []flavorEntry `yaml:"flavors" validate:"required,min=1,dive"`
}

type flavorEntry struct {
	Name   string       `yaml:"name" validate:"required,flavor"`
	Colors []colorEntry `yaml:"colors" validate:"required,min=1,dive"`
}

type colorEntry struct {
	Name string    `yaml:"name" validate:"required"`
	Hex  string    `yaml:"hex" validate:"required,hex_color"`
	RGB  []int     `yaml:"rgb" validate:"len=3,dive,min=0,max=255"`
	HSL  []float64 `yaml:"hsl" validate:"len=3"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("flavor", func(fl validator.FieldLevel) bool {
			_, err := ParseFlavor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexPattern.MatchString(fl.Field().String())
		})

		v.RegisterStructValidation(validateHSL, colorEntry{})

		validateInst = v
	})

	return validateInst
}

// validateHSL rejects hues outside [0, 360] and saturation or lightness
// outside [0, 1]. Percent-scale values such as 58 are caught here.
func validateHSL(sl validator.StructLevel) {
	c := sl.Current().Interface().(colorEntry)
	if len(c.HSL) != 3 {
		return
	}

	limits := [3]float64{360, 1, 1}
	for i, value := range c.HSL {
		if value < 0 || value > limits[i] {
			sl.ReportError(value, fmt.Sprintf("HSL[%d]", i), fmt.Sprintf("HSL[%d]", i), "hsl_range", "")
		}
	}
}

// Catalog is a Provider backed by a decoded palette catalog document.
type Catalog struct {
	flavors map[Flavor][]Color
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Builtin returns the embedded Catppuccin catalog. It is decoded once per process.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = ParseCatalog("catppuccin.yaml", builtinCatalog)
	})
	return builtin, builtinErr
}

// LoadCatalog reads and decodes a catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, paletteerrors.NewParseError(path, 0, err)
	}
	return ParseCatalog(path, data)
}

// ParseCatalog decodes and validates a catalog document. The source name is only used in errors.
func ParseCatalog(source string, data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, paletteerrors.NewYAMLParseError(source, err)
	}

	if err := validatorInstance().Struct(&file); err != nil {
		return nil, convertValidationError(err)
	}

	catalog := &Catalog{flavors: make(map[Flavor][]Color, len(file.Flavors))}
	for i, entry := range file.Flavors {
		flavor, _ := ParseFlavor(entry.Name)
		if _, exists := catalog.flavors[flavor]; exists {
			return nil, paletteerrors.NewValidationError(fmt.Sprintf("flavors[%d].name", i), fmt.Sprintf("duplicate flavor %q", entry.Name), nil)
		}

		colors := make([]Color, len(entry.Colors))
		for j, c := range entry.Colors {
			colors[j] = Color{
				Name: c.Name,
				RGB:  [3]uint8{uint8(c.RGB[0]), uint8(c.RGB[1]), uint8(c.RGB[2])},
				HSL:  [3]float64{c.HSL[0], c.HSL[1], c.HSL[2]},
				Hex:  strings.ToLower(c.Hex),
			}
		}
		catalog.flavors[flavor] = colors
	}

	return catalog, nil
}

// Colors returns a copy of the flavor's colors in catalog order.
func (c *Catalog) Colors(flavor Flavor) ([]Color, error) {
	if c == nil {
		return nil, paletteerrors.NewFlavorError(flavor.String(), fmt.Errorf("no catalog loaded"))
	}

	colors, ok := c.flavors[flavor]
	if !ok {
		return nil, paletteerrors.NewFlavorError(flavor.String(), fmt.Errorf("flavor not present in catalog"))
	}

	out := make([]Color, len(colors))
	copy(out, colors)
	return out, nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(strings.TrimPrefix(ve.Namespace(), "catalogFile."))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return paletteerrors.NewValidationError(field, msg, err)
	}

	return paletteerrors.NewValidationError("catalog", err.Error(), err)
}
