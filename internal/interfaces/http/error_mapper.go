package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	domcash "github.com/Danielpnvs/usekaylla-api/internal/domain/cashflow"
)

// respondError traduce los errores de dominio a respuestas HTTP. Cualquier
// error no reconocido se reporta como 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *domcash.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":      "INSUFFICIENT_BALANCE",
			"message":   insufficient.Error(),
			"bucket":    insufficient.Bucket,
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de entrada inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrReadOnlyMode):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "READ_ONLY", Message: "modo visualizador: operación de solo lectura"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este rol"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la variación"})
	case errors.Is(err, domain.ErrInsufficientBalance):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
