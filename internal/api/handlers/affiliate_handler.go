package handlers

import (
	"pricescout/internal/dto"
	"pricescout/internal/service"
	"pricescout/internal/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AffiliateHandler struct {
	affiliateService *service.AffiliateService
	logger           *zap.Logger
}

func NewAffiliateHandler(affiliateService *service.AffiliateService, logger *zap.Logger) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService: affiliateService,
		logger:           logger,
	}
}

// BuildLink godoc
// @Summary Produce a tracked affiliate redirect URL
// @Tags affiliate
// @Accept json
// @Produce json
// @Param request body dto.AffiliateRequest true "Affiliate request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/affiliate [post]
func (h *AffiliateHandler) BuildLink(c *fiber.Ctx) error {
	if _, authed := userID(c); !authed {
		return unauthorized(c)
	}

	var req dto.AffiliateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if missing := validate.FirstMissing([]validate.Field{
		{Name: "productUrl", Value: req.ProductURL},
		{Name: "store", Value: req.Store},
	}); missing != "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: "+missing)
	}

	if !validate.IsURL(req.ProductURL) {
		return fail(c, fiber.StatusBadRequest, "productUrl must be a valid http or https URL")
	}
	req.Store = validate.Sanitize(req.Store)

	resp, err := h.affiliateService.BuildLink(req.ProductURL, req.Store)
	if err != nil {
		if err == service.ErrInvalidQuery {
			return fail(c, fiber.StatusBadRequest, "productUrl must be a valid http or https URL")
		}
		h.logger.Error("Affiliate link build failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}
