package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/vconf-api/internal/application/dto"
	"github.com/jhoicas/vconf-api/internal/domain"
)

var validate = validator.New()

// validateBody aplica las etiquetas validate del DTO. Devuelve nil si es válido.
func validateBody(in any) *dto.ErrorResponse {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("campo %s inválido (%s)", fe.Field(), fe.Tag()),
		}
	}
	return &dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
}

// writeError traduce errores de dominio a status HTTP. El orden importa: los errores más
// específicos (que envuelven a otros) van primero.
func writeError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrQuantityBelowMinimum):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "QUANTITY_BELOW_MINIMUM", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"}
	case errors.Is(err, domain.ErrModelNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "MODEL_NOT_FOUND", Message: "modelo no encontrado"}
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "INVOICE_NOT_FOUND", Message: "factura no encontrada"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"}
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"}
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "tiempo de espera agotado"}
	case errors.Is(err, domain.ErrPersistence):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "PERSISTENCE", Message: "no se pudo guardar la factura"}
	default:
		log.Error().Err(err).Msg("error no mapeado")
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
