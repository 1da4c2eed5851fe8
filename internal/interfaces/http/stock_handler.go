package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/application/ledger"
	"github.com/jhoicas/ScanStock-api/internal/application/session"
	"github.com/jhoicas/ScanStock-api/internal/domain"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// StockHandler maneja los ajustes de stock: delta individual y guardado de
// sesión de reconciliación (protegido).
type StockHandler struct {
	ledger   *ledger.UseCase
	products repository.ProductRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(l *ledger.UseCase, products repository.ProductRepository) *StockHandler {
	return &StockHandler{ledger: l, products: products}
}

// ApplyDelta godoc
// @Summary      Aplicar un delta a una ubicación de stock
// @Description  El ajuste es relativo (+n/-n), nunca un valor absoluto: dos
// @Description  sesiones concurrentes que envían "+3" y "-1" componen en vez de
// @Description  pisarse.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  int  true  "ID del producto"
// @Param        stockId  path  int  true  "ID de la ubicación de stock"
// @Param        body     body  dto.ApplyDeltaRequest  true  "delta entero"
// @Success      200  {object}  dto.ApplyDeltaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stocks/{stockId}/delta [post]
func (h *StockHandler) ApplyDelta(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	stockID, err := strconv.ParseInt(c.Params("stockId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de ubicación inválido"})
	}
	var in dto.ApplyDeltaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	newQty, err := h.ledger.ApplyDelta(c.Context(), productID, stockID, in.Delta, GetWarehousemanID(c))
	if err != nil {
		return deltaError(c, err)
	}
	return c.JSON(dto.ApplyDeltaResponse{StockLocationID: stockID, NewQuantity: newQty})
}

// Reconcile godoc
// @Summary      Guardar una sesión de edición (batch de deltas)
// @Description  Recibe el snapshot tomado al escanear y las cantidades finales;
// @Description  el servidor calcula los deltas mínimos y los aplica por
// @Description  ubicación de forma independiente y concurrente. Sin transacción
// @Description  entre ubicaciones: las que fallan se reportan individualmente
// @Description  para reintento dirigido, las demás quedan aplicadas.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ReconcileRequest  true  "snapshot y cantidades finales"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reconcile [post]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	product, err := h.products.GetByID(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, err)
	}

	sess, err := session.Restore(product, GetWarehousemanID(c), in.Snapshot, in.Quantities)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación de stock no encontrada"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidades inválidas"})
	}

	result := sess.Save(c.Context(), h.ledger)
	out := dto.ReconcileResponse{
		Committed: result.Committed,
		Results:   make([]dto.ReconcileLocationResult, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		item := dto.ReconcileLocationResult{
			StockLocationID: r.StockLocationID,
			Delta:           r.Delta,
			NewQuantity:     r.NewQuantity,
		}
		if r.Err != nil {
			item.Error = errorCode(r.Err)
		}
		out.Results = append(out.Results, item)
	}
	return c.JSON(out)
}

// deltaError mapea los errores del ledger a HTTP.
func deltaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDelta):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DELTA", Message: "delta debe ser un entero finito"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrado"})
	case errors.Is(err, domain.ErrNegativeStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "la cantidad resultante sería negativa"})
	default:
		return internalError(c, err)
	}
}

// errorCode código estable por tipo de error para los resultados por ubicación.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeStock):
		return "NEGATIVE_STOCK"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidDelta):
		return "INVALID_DELTA"
	case errors.Is(err, domain.ErrPersistence):
		return "PERSISTENCE"
	default:
		return "INTERNAL"
	}
}
