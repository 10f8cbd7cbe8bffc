package handler

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	requestValidator *validator.Validate
	translator       ut.Translator
)

func init() {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ = uni.GetTranslator("en")

	requestValidator = validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(requestValidator, translator); err != nil {
		panic(err)
	}
}

// decodeAndValidate decodes a JSON request body into dst and validates it
// against the struct's validate tags. The returned error message is already
// human readable.
func decodeAndValidate(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body")
	}

	if err := requestValidator.Struct(dst); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			return fmt.Errorf("%s", validationErrors[0].Translate(translator))
		}

		return fmt.Errorf("invalid request payload")
	}

	return nil
}
