package middleware

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names from json tags so error keys match the payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the struct's validate tags and returns one message per
// failing field, keyed by the field's JSON name. An empty map means valid.
func ValidateStruct(s interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return errors
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fieldErr := range validationErrs {
		errors[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return errors
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email!"
	case "min":
		return "Must be at least " + fieldErr.Param() + " characters long!"
	case "oneof":
		return "Must be one of " + fieldErr.Param() + "!"
	case "gte":
		return "Must be at least " + fieldErr.Param() + "!"
	}
	return "Invalid value!"
}
