package handlers

import (
	"pricescout/internal/dto"
	"pricescout/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HistoryHandler struct {
	historyService *service.HistoryService
	logger         *zap.Logger
}

func NewHistoryHandler(historyService *service.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// List godoc
// @Summary List the caller's search history, newest first
// @Tags history
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	records, err := h.historyService.List(c.Context(), uid)
	if err != nil {
		h.logger.Error("History list failed", zap.Error(err))
		return err
	}

	return ok(c, records)
}

// Delete godoc
// @Summary Delete one history record by id, or all records when id is absent
// @Tags history
// @Produce json
// @Param id query string false "Record id"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/history [delete]
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	deleted, err := h.historyService.Delete(c.Context(), uid, c.Query("id"))
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "history record not found")
		}
		h.logger.Error("History delete failed", zap.Error(err))
		return err
	}

	return ok(c, dto.HistoryDeleteResponse{Deleted: deleted})
}

// Retry godoc
// @Summary Return the original query of a past search and a redirect target
// @Tags history
// @Accept json
// @Produce json
// @Param request body dto.HistoryRetryRequest true "Retry request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/history/retry [post]
func (h *HistoryHandler) Retry(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	var req dto.HistoryRetryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if req.HistoryID == "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: historyId")
	}

	resp, err := h.historyService.Retry(c.Context(), uid, req.HistoryID)
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "history record not found")
		}
		h.logger.Error("History retry failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}
