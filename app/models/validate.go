package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct validation against the `validate` tags carried by
// the models and request payloads.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
