// Package validation turns validator failures into field level messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/linskybing/portal-go/pkg/i18n"
)

type Violation struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// Errors collects every violation of a single input.
type Errors struct {
	Violations []Violation
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Tag)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Errors) Add(field, tag, param string) {
	e.Violations = append(e.Violations, Violation{Field: field, Tag: tag, Param: param})
}

func (e *Errors) Empty() bool {
	return e == nil || len(e.Violations) == 0
}

var validate = New()

// New returns a validator reading `binding` tags, matching gin's binder.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

// Register reports fields by their json name.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// Struct validates s and returns *Errors on failure.
func Struct(s any) error {
	if err := validate.Struct(s); err != nil {
		if ve, ok := FromError(err); ok {
			return ve
		}
		return err
	}
	return nil
}

// FromError extracts violations from validator or *Errors values.
func FromError(err error) (*Errors, bool) {
	var own *Errors
	if errors.As(err, &own) {
		return own, true
	}
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return nil, false
	}
	out := &Errors{}
	for _, fe := range verr {
		out.Add(fe.Field(), fe.Tag(), fe.Param())
	}
	return out, true
}

// Localize renders one message per field; the first violation of a field wins.
func (e *Errors) Localize(tr *i18n.Translator, lang i18n.Language) map[string]string {
	out := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, seen := out[v.Field]; seen {
			continue
		}
		out[v.Field] = message(tr, lang, v)
	}
	return out
}

func message(tr *i18n.Translator, lang i18n.Language, v Violation) string {
	switch v.Tag {
	case "required":
		return tr.Format(i18n.KeyValidationRequired, lang, v.Field)
	case "required_if", "domain_required":
		return tr.Translate(i18n.KeyValidationDomainRequired, lang)
	case "min":
		return tr.Format(i18n.KeyValidationMinLength, lang, v.Field, v.Param)
	case "email":
		return tr.Format(i18n.KeyValidationEmail, lang, v.Field)
	case "oneof":
		return tr.Format(i18n.KeyValidationOneOf, lang, v.Field, v.Param)
	case "url", "http_url":
		return tr.Format(i18n.KeyValidationURL, lang, v.Field)
	default:
		return tr.Format(i18n.KeyValidationInvalid, lang, v.Field)
	}
}
