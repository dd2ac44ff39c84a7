package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/mineral/pkg/mineral"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("hook", func(fl validator.FieldLevel) bool {
		_, ok := mineral.LookupHook(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
		_, err := regexp.Compile(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("bytesize", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "0" {
			return true
		}
		_, err := humanize.ParseBytes(s)
		return err == nil
	})
	return v
}

// fieldPath drops the root struct name from the namespace, so errors read
// "fetch.mode" rather than "Config.fetch.mode".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "hook":
		return fmt.Sprintf("names unknown hook %q (available: %s)", e.Value(), strings.Join(mineral.HookNames(), ", "))
	case "regexp":
		return fmt.Sprintf("is not a valid regular expression: %q", e.Value())
	case "bytesize":
		return fmt.Sprintf("is not a valid size: %q", e.Value())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
