// Package bind decodes query strings and form bodies into tagged structs and validates
// them, turning the first failure into a field-tagged validation error
package bind

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
)

type binder struct {
	validate *validator.Validate
	trans    ut.Translator
	decoder  *form.Decoder
}

var get = sync.OnceValue(func() *binder {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = entrans.RegisterDefaultTranslations(v, trans)
	for tag, text := range map[string]string{
		"min":   "{0} must be at least {1}",
		"max":   "{0} must be at most {1}",
		"oneof": "{0} must be one of [{1}]",
	} {
		override(v, trans, tag, text)
	}

	dec := form.NewDecoder()
	dec.SetTagName("form")
	dec.SetMode(form.ModeExplicit)
	return &binder{validate: v, trans: trans, decoder: dec}
})

// fieldName names a field in messages by its form tag, then json tag, then Go name
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func override(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ParseQuery decodes r's query string into T and validates it
func ParseQuery[T any](r *http.Request) (T, error) {
	return decode[T](r.URL.Query())
}

// ParseForm decodes r's urlencoded or multipart body into T and validates it
func ParseForm[T any](r *http.Request) (T, error) {
	if err := r.ParseForm(); err != nil {
		var zero T
		return zero, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid form body")
	}
	return decode[T](r.PostForm)
}

func decode[T any](vals url.Values) (T, error) {
	var dst, zero T
	if err := get().decoder.Decode(&dst, vals); err != nil {
		var de form.DecodeErrors
		if !errors.As(err, &de) || len(de) == 0 {
			return zero, perr.Wrap(err, perr.ErrorCodeValidation, "invalid parameters")
		}
		fields := make([]string, 0, len(de))
		for f := range de {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s has an invalid value", fields[0]), fields[0])
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate checks v's validate tags and reports the first failure with its field
func Validate(v any) error {
	err := get().validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(get().trans)), fe.Field())
	}
	logger.Named("bind").Error().Err(err).Msg("validator misuse")
	return perr.Wrap(err, perr.ErrorCodeValidation, "validation error")
}
