package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-finder/internal/application/dto"
	"github.com/jhoicas/stock-finder/internal/application/inventory"
	"github.com/jhoicas/stock-finder/internal/domain"
)

// StockHandler consultas de stock vendible por SKU (protegido).
type StockHandler struct {
	uc *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetBySKU godoc
// @Summary      Stock vendible de un producto
// @Description  Cantidad vendible para el website; con gestión de stock apagada o website 0 se usa la cantidad por fuente.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sku         path   string  true   "SKU del producto"
// @Param        website_id  query  int     false  "ID del website (0 = scope default)"
// @Success      200  {object}  dto.StockQtyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/{sku} [get]
func (h *StockHandler) GetBySKU(c *fiber.Ctx) error {
	websiteID, err := parseWebsiteID(c.Query("website_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "website_id inválido"})
	}
	res, err := h.uc.GetStockQtyBySKU(c.UserContext(), c.Params("sku"), websiteID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// GetBatch godoc
// @Summary      Stock vendible de varios productos
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockQtyBatchRequest  true  "skus (máx. 200), website_id"
// @Success      200   {object}  dto.StockQtyBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/stock/batch [post]
func (h *StockHandler) GetBatch(c *fiber.Ctx) error {
	var in dto.StockQtyBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.GetStockQtyBatch(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

func parseWebsiteID(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
