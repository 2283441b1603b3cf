package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status and stable error code for a failure class.
// Every failure surfaced to a client maps to one of these; the codes mirror
// the ones the mobile client already matches on.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, code, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

// ErrorHandlerMiddleware translates errors escaping controllers into the
// {error, code} envelope. Unknown errors become INTERNAL_ERROR without
// leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.StatusCode).JSON(fiber.Map{
				"error": appErr.Message,
				"code":  appErr.Code,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
				"code":  "HTTP_ERROR",
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
			"code":  "INTERNAL_ERROR",
		})
	}
}
