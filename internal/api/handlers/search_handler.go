package handlers

import (
	"pricescout/internal/dto"
	"pricescout/internal/service"
	"pricescout/internal/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

func NewSearchHandler(searchService *service.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search godoc
// @Summary Search for a product by URL or keyword
// @Tags search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if req.Query == "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: query")
	}

	query := validate.Sanitize(req.Query)

	resp, err := h.searchService.Search(c.Context(), uid, query)
	if err != nil {
		if err == service.ErrInvalidQuery {
			return fail(c, fiber.StatusBadRequest, "invalid query")
		}
		h.logger.Error("Search failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}
