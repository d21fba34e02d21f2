package handlers

import (
	"pricescout/internal/dto"
	"pricescout/internal/service"
	"pricescout/internal/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyzeHandler struct {
	analyzeService *service.AnalyzeService
	logger         *zap.Logger
}

func NewAnalyzeHandler(analyzeService *service.AnalyzeService, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
		logger:         logger,
	}
}

// Analyze godoc
// @Summary Run an AI analysis of a product listing
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Analyze request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	if _, authed := userID(c); !authed {
		return unauthorized(c)
	}

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if missing := validate.FirstMissing([]validate.Field{
		{Name: "productName", Value: req.ProductName},
		{Name: "productUrl", Value: req.ProductURL},
	}); missing != "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: "+missing)
	}
	if req.ProductPrice == nil {
		return fail(c, fiber.StatusBadRequest, "missing required field: productPrice")
	}

	req.ProductName = validate.Sanitize(req.ProductName)
	req.ProductDescription = validate.Sanitize(req.ProductDescription)

	result, err := h.analyzeService.Analyze(c.Context(), &req)
	if err != nil {
		// Provider failures surface as a generic internal error; raw
		// upstream error text never reaches the caller.
		h.logger.Error("Analysis failed", zap.Error(err))
		return err
	}

	return ok(c, result)
}
