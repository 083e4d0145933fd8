package utils

import (
	"casepay-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
