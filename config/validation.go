package config

import (
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	schemaValidator *validator.Validate
	trans           ut.Translator
)

func init() {
	schemaValidator = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(schemaValidator, trans)

	_ = schemaValidator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})
}

func validateSchema(definition *SchemaDefinition) error {
	if err := schemaValidator.Struct(definition); err != nil {
		return translateValidatorError(err)
	}
	return nil
}

// translateValidatorError flattens the validator's error map into a single
// readable error.
func translateValidatorError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	translated := validationErrors.Translate(trans)
	vals := make([]string, 0, len(translated))
	for _, value := range translated {
		vals = append(vals, value)
	}

	return errors.New(strings.Join(vals, " "))
}
