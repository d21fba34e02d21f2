package handlers

import (
	"pricescout/internal/dto"
	"pricescout/internal/service"
	"pricescout/internal/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SavedHandler struct {
	savedService *service.SavedProductService
	logger       *zap.Logger
}

func NewSavedHandler(savedService *service.SavedProductService, logger *zap.Logger) *SavedHandler {
	return &SavedHandler{
		savedService: savedService,
		logger:       logger,
	}
}

// List godoc
// @Summary List the caller's saved products
// @Tags saved
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/saved [get]
func (h *SavedHandler) List(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	products, err := h.savedService.List(c.Context(), uid)
	if err != nil {
		h.logger.Error("Saved products list failed", zap.Error(err))
		return err
	}

	return ok(c, products)
}

// Create godoc
// @Summary Save a product
// @Tags saved
// @Accept json
// @Produce json
// @Param request body dto.SaveProductRequest true "Save request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/saved [post]
func (h *SavedHandler) Create(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	var req dto.SaveProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if missing := validate.FirstMissing([]validate.Field{
		{Name: "productName", Value: req.ProductName},
		{Name: "productUrl", Value: req.ProductURL},
		{Name: "currency", Value: req.Currency},
		{Name: "store", Value: req.Store},
	}); missing != "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: "+missing)
	}

	// Price and currency are checked before anything touches the database.
	if req.ProductPrice == nil || *req.ProductPrice <= 0 {
		return fail(c, fiber.StatusBadRequest, "productPrice must be greater than zero")
	}
	if !validate.IsValidCurrency(req.Currency) {
		return fail(c, fiber.StatusBadRequest, "currency must be a 3-letter uppercase code")
	}
	if !validate.IsURL(req.ProductURL) {
		return fail(c, fiber.StatusBadRequest, "productUrl must be a valid http or https URL")
	}

	req.ProductName = validate.Sanitize(req.ProductName)
	req.Store = validate.Sanitize(req.Store)
	req.Notes = validate.Sanitize(req.Notes)

	resp, err := h.savedService.Create(c.Context(), uid, &req)
	if err != nil {
		h.logger.Error("Save product failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}

// Update godoc
// @Summary Update the notes of a saved product
// @Tags saved
// @Accept json
// @Produce json
// @Param request body dto.UpdateSavedProductRequest true "Update request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/saved [patch]
func (h *SavedHandler) Update(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	var req dto.UpdateSavedProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if req.ID == "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: id")
	}

	notes := ""
	if req.Notes != nil {
		notes = validate.Sanitize(*req.Notes)
	}

	resp, err := h.savedService.UpdateNotes(c.Context(), uid, req.ID, notes)
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "saved product not found")
		}
		h.logger.Error("Saved product update failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}

// Delete godoc
// @Summary Delete a saved product
// @Tags saved
// @Produce json
// @Param id query string true "Saved product id"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/v1/saved [delete]
func (h *SavedHandler) Delete(c *fiber.Ctx) error {
	uid, authed := userID(c)
	if !authed {
		return unauthorized(c)
	}

	id := c.Query("id")
	if id == "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: id")
	}

	if err := h.savedService.Delete(c.Context(), uid, id); err != nil {
		if err == service.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "saved product not found")
		}
		h.logger.Error("Saved product delete failed", zap.Error(err))
		return err
	}

	return ok(c, dto.SavedDeleteResponse{Deleted: true})
}
