package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewAppError(fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
	}
	return nil
}
