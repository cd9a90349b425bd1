package serverutils

import (
	"errors"

	"braik-ai-be/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts domain errors escaping a controller
// into the JSON envelope. Internals are never leaked: unknown errors
// become a generic 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		switch {
		case errors.Is(err, apperr.ErrValidation):
			code, message = fiber.StatusBadRequest, err.Error()
		case errors.Is(err, apperr.ErrNotFound):
			code, message = fiber.StatusNotFound, "Utente non trovato."
		case errors.Is(err, apperr.ErrInvalidCredential):
			code, message = fiber.StatusUnauthorized, "Password errata."
		case errors.Is(err, apperr.ErrAlreadyExists):
			code, message = fiber.StatusConflict, "Questa email è già registrata."
		case errors.Is(err, apperr.ErrTrialExpired):
			code, message = fiber.StatusPaymentRequired, "Periodo di prova scaduto."
		case errors.Is(err, apperr.ErrGatewayUnavailable):
			code, message = fiber.StatusServiceUnavailable, "Errore di connessione ai sistemi di intelligenza centrale. Verifica la tua connessione o riprova più tardi."
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
