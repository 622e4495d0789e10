package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel for custom rules
type FieldLevel = validator.FieldLevel

// Validator pairs go-playground/validator with english messages keyed by json names
type Validator struct {
	v  *validator.Validate
	tr ut.Translator
}

// Get returns the process validator
var Get = sync.OnceValue(newValidator)

// messages overrides the stock english text for tags
var messages = map[string]string{
	"min":         "{0} must be at least {1}",
	"max":         "{0} must be at most {1}",
	"entity_type": "{0} must be a lowercase entity type such as task or report",
}

func newValidator() *Validator {
	loc := en.New()
	tr, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, tr)
	_ = v.RegisterValidation("entity_type", func(fl FieldLevel) bool { return IsEntityType(fl.Field().String()) })

	for tag, text := range messages {
		_ = v.RegisterTranslation(tag, tr,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &Validator{v: v, tr: tr}
}

// jsonName reports fields by their json name, the Go name when there is none
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// RegisterValidation adds a custom tag to the process validator
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().v.RegisterValidation(tag, fn)
}

// IsEntityType reports whether s is shaped like a management protocol entity
// type: 1..64 lowercase ascii letters or underscores, not starting with one
func IsEntityType(s string) bool {
	if s == "" || len(s) > 64 || s[0] == '_' {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return (r < 'a' || r > 'z') && r != '_' }) < 0
}

// Validate checks v against its validate tags. The first failing field becomes
// a validation error carrying that field
func Validate(v any) error {
	err := Get().v.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// FieldAndMessage returns the first failing field and its english message;
// other errors pass through with no field
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return "", err.Error()
	}
	return ves[0].Field(), ves[0].Translate(Get().tr)
}
