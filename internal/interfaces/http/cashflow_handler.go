package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
)

// CashFlowHandler maneja el flujo de caja: corte de saldos, libro de
// movimientos, CRUD de salidas y configuración de la división del caixa.
type CashFlowHandler struct {
	outflow    *cashflow.OutflowUseCase
	allocation *cashflow.AllocationUseCase
}

// NewCashFlowHandler construye el handler.
func NewCashFlowHandler(outflow *cashflow.OutflowUseCase, allocation *cashflow.AllocationUseCase) *CashFlowHandler {
	return &CashFlowHandler{outflow: outflow, allocation: allocation}
}

// GetSnapshot godoc
// @Summary      Corte actual del flujo de caja
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SnapshotResponse
// @Router       /api/cashflow/snapshot [get]
func (h *CashFlowHandler) GetSnapshot(c *fiber.Ctx) error {
	out, err := h.outflow.GetSnapshot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Libro de salidas, más reciente primero
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/cashflow/movements [get]
func (h *CashFlowHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.outflow.ListMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterOutflow godoc
// @Summary      Registrar una salida
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutflowRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cashflow/movements [post]
func (h *CashFlowHandler) RegisterOutflow(c *fiber.Ctx) error {
	var in dto.OutflowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.outflow.RegisterOutflow(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EditOutflow godoc
// @Summary      Editar una salida existente
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.OutflowRequest  true  "Datos de la salida"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cashflow/movements/{id} [put]
func (h *CashFlowHandler) EditOutflow(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.OutflowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.outflow.EditOutflow(c.Context(), GetSession(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteOutflow godoc
// @Summary      Eliminar una salida
// @Tags         cashflow
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cashflow/movements/{id} [delete]
func (h *CashFlowHandler) DeleteOutflow(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.outflow.DeleteOutflow(c.Context(), GetSession(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAllocation godoc
// @Summary      División porcentual vigente del caixa
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AllocationResponse
// @Router       /api/cashflow/allocation [get]
func (h *CashFlowHandler) GetAllocation(c *fiber.Ctx) error {
	out, err := h.allocation.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateAllocation godoc
// @Summary      Actualizar un porcentaje de la división
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AllocationUpdateRequest  true  "field y value"
// @Success      200   {object}  dto.AllocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cashflow/allocation [put]
func (h *CashFlowHandler) UpdateAllocation(c *fiber.Ctx) error {
	var in dto.AllocationUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.allocation.SetPercentage(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
