package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// MinSessionSecretLength is the shortest HMAC key accepted for signing session tokens.
const MinSessionSecretLength = 32

type customValidation struct {
	tag     string
	fn      validator.Func
	message string
}

var customValidations = []customValidation{
	{tag: "file", fn: isFileReadable, message: "{0} must be an existing and readable file"},
	{tag: "secret", fn: isLongEnoughSecret, message: fmt.Sprintf("{0} must be at least %d characters", MinSessionSecretLength)},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, cv := range customValidations {
		if err := registerCustomValidation(validate, trans, cv); err != nil {
			return nil, nil, err
		}
	}
	return validate, trans, nil
}

func registerCustomValidation(validate *validator.Validate, trans ut.Translator, cv customValidation) error {
	if err := validate.RegisterValidation(cv.tag, cv.fn); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", cv.tag, err)
	}
	if err := validate.RegisterTranslation(cv.tag, trans, func(ut ut.Translator) error {
		return ut.Add(cv.tag, cv.message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(cv.tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", cv.tag, err)
	}
	return nil
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// owner read bit
	return info.Mode().Perm()&(1<<(uint(8))) != 0
}

func isLongEnoughSecret(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= MinSessionSecretLength
}
