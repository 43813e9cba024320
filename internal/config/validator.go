package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/palette/internal/format"
	"github.com/alexisbeaulieu97/palette/internal/palette"
	"github.com/alexisbeaulieu97/palette/internal/style"
	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("flavor", func(fl validator.FieldLevel) bool {
			_, err := palette.ParseFlavor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("template", func(fl validator.FieldLevel) bool {
			return format.Template(fl.Field().String()).Validate() == nil
		})

		_ = v.RegisterValidation("color_mode", func(fl validator.FieldLevel) bool {
			_, err := style.ParseColorMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks field values. Templates are checked eagerly here so a
// broken config fails before anything is printed.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return paletteerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(cfg, err)
	}

	return nil
}

func convertValidationError(cfg *Config, err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return paletteerrors.NewValidationError("config", err.Error(), err)
	}

	ve := ves[0]
	field := ve.Field()

	switch ve.Tag() {
	case "flavor":
		msg := fmt.Sprintf("unknown flavor %q, must be one of %s", ve.Value(), strings.Join(palette.FlavorNames(), ", "))
		return paletteerrors.NewValidationError(field, msg, err)
	case "template":
		return paletteerrors.NewValidationError(field, format.Template(cfg.Format).Validate().Error(), err)
	case "color_mode":
		_, modeErr := style.ParseColorMode(cfg.Color)
		return paletteerrors.NewValidationError(field, modeErr.Error(), err)
	default:
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return paletteerrors.NewValidationError(field, msg, err)
	}
}
