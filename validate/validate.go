package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

var validate *validator.Validate

var translator ut.Translator

func init() {

	validate = validator.New()

	// Report fields by the name clients send them with.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, translator)
}

// Check validates val and returns the first failure, translated.
func Check(val any) error {
	if err := validate.Struct(val); err != nil {

		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		if len(verrors) < 1 {
			return nil
		}

		return errors.New(verrors[0].Translate(translator))
	}

	return nil
}

// Fields validates val and reports every failing field, keyed by its JSON
// name, in struct order. It returns nil when val is valid.
func Fields(val any) ([]FieldError, error) {
	err := validate.Struct(val)
	if err == nil {
		return nil, nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) {
		return nil, err
	}

	out := make([]FieldError, 0, len(verrors))
	for _, fe := range verrors {
		out = append(out, FieldError{Field: fe.Field(), Message: fe.Translate(translator)})
	}
	return out, nil
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func GenerateID() string {
	return uuid.NewString()
}

func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("ID is not in its proper form")
	}
	return nil
}
