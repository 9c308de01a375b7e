package router

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// personNameRe allows letters, Latin-1 diacritics and spaces.
var personNameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)

// CustomValidator wraps validator for Echo, turning field violations into a
// single comma-joined message that lists every failed rule.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the personname rule
// registered and json tag names used in messages.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, messageFor(fe))
	}
	return errors.New(strings.Join(msgs, ", "))
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " is invalid"
	case "min":
		return field + " is too short"
	case "max":
		return field + " is too long"
	case "personname":
		return field + " must contain only letters and spaces"
	default:
		return field + " is invalid"
	}
}
