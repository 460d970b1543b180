package utils

import "github.com/go-playground/validator/v10"

var validate *validator.Validate

func InitValidator() *validator.Validate {
	if validate == nil {
		validate = validator.New()
	}
	return validate
}

func Validate(s any) error {
	return InitValidator().Struct(s)
}
