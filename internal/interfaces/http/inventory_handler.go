package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-entries/internal/application/dto"
	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain"
)

// InventoryHandler maneja las entradas de inventario y la consulta de existencias.
type InventoryHandler struct {
	entries    *inventory.CreateInventoryEntryUseCase
	projection *inventory.StockProjectionUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(entries *inventory.CreateInventoryEntryUseCase, projection *inventory.StockProjectionUseCase) *InventoryHandler {
	return &InventoryHandler{entries: entries, projection: projection}
}

// CreateEntry godoc
// @Summary      Registrar entrada de inventario
// @Description  Resuelve proveedor y ubicación; crea producto (si no existe el SKU), lote, seriales y movimiento IN en una sola transacción.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-Company-ID  header  string                           true  "Empresa"
// @Param        body          body    dto.CreateInventoryEntryRequest  true  "Entrada"
// @Success      201   {object}  dto.InventoryEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateInventoryEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.entries.CreateInventoryEntry(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeEntryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListItems godoc
// @Summary      Existencias de un producto
// @Tags         inventory
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Empresa"
// @Param        product_id    query   string  true  "Producto"
// @Success      200  {array}   dto.InventoryItemDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.projection.ListItems(c.UserContext(), GetCompanyID(c), c.Query("product_id"))
	if err != nil {
		return writeQueryError(c, err)
	}
	return c.JSON(items)
}

// Reconcile godoc
// @Summary      Conciliar existencias contra el libro de movimientos
// @Tags         inventory
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Empresa"
// @Param        product_id    query   string  true  "Producto"
// @Success      200  {object}  dto.ReconciliationReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/reconcile [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	report, err := h.projection.Reconcile(c.UserContext(), GetCompanyID(c), c.Query("product_id"))
	if err != nil {
		return writeQueryError(c, err)
	}
	return c.JSON(report)
}

func writeEntryError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: verr.Fields})
	case errors.Is(err, domain.ErrValidationFailed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSupplierNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SUPPLIER_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrLocationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LOCATION_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrSupplierInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUPPLIER_INACTIVE", Message: err.Error()})
	case errors.Is(err, domain.ErrSerialCreationFailed):
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrDuplicate) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "SERIAL_CREATION_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrProductCreationFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PRODUCT_CREATION_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrLotCreationFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOT_CREATION_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrMovementRecordingFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MOVEMENT_RECORDING_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func writeQueryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTenantMissing):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TENANT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id requerido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
