package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanStock-api/internal/application/dto"
	"github.com/jhoicas/ScanStock-api/internal/application/stats"
)

// StatisticsHandler maneja el reporte de estadísticas por bodeguero (protegido).
type StatisticsHandler struct {
	uc *stats.Aggregator
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *stats.Aggregator) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Get godoc
// @Summary      Estadísticas de un bodeguero
// @Description  Solo cuentan los productos con al menos una edición atribuida
// @Description  al bodeguero solicitado. El warehouseId del token no interviene
// @Description  en el filtro.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        warehousemanId  path  int  true  "ID del bodeguero"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics/{warehousemanId} [get]
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("warehousemanId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de bodeguero inválido"})
	}
	out, err := h.uc.Aggregate(c.Context(), id)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
