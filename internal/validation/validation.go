package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report failures under the JSON slot name rather than the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name
			return fld.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ErrorsToJson renders field failures as a compact {"slot":"rule"} JSON map.
func ErrorsToJson(verrs validator.ValidationErrors) (string, error) {
	errsMap := make(map[string]string, len(verrs))
	for _, fieldErr := range verrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}

// Message flattens any failure into a single line for error wrapping: the
// slot map for field validation errors, the plain error text for anything
// else.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		if msg, jerr := ErrorsToJson(verrs); jerr == nil {
			return msg
		}
	}
	return err.Error()
}
