package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

// Validator checks request payloads and renders readable field messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator builds a validator with the directory tags registered:
// section, department and status.
func NewValidator() *Validator {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	validate := validator.New()
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{validate: validate, trans: trans}
	v.register("section", "{0} must be one of "+strings.Join(models.Sections, ", "), func(fl validator.FieldLevel) bool {
		return contains(models.Sections, fl.Field().String())
	})
	v.register("department", "{0} must be a known department", func(fl validator.FieldLevel) bool {
		return contains(models.Departments, fl.Field().String())
	})
	v.register("status", "{0} must be Active or Inactive", func(fl validator.FieldLevel) bool {
		return models.StudentStatus(fl.Field().String()).Valid()
	})
	return v
}

func (v *Validator) register(tag, text string, fn validator.Func) {
	_ = v.validate.RegisterValidation(tag, fn)
	_ = v.validate.RegisterTranslation(tag, v.trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field())
			return msg
		},
	)
}

// Struct validates req. Failures come back as ErrValidation carrying one
// message per offending field.
func (v *Validator) Struct(req interface{}, message string) error {
	if err := v.validate.Struct(req); err != nil {
		return v.validationError(err, message)
	}
	return nil
}

func (v *Validator) validationError(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fieldPath(fe.Namespace())] = fe.Translate(v.trans)
	}
	return appErrors.WithDetails(appErrors.ErrValidation, message, details)
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
