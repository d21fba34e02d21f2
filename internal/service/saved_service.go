package service

import (
	"context"
	"time"

	"pricescout/internal/dto"
	"pricescout/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type savedProductStore interface {
	Create(ctx context.Context, p *models.SavedProduct) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SavedProduct, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SavedProduct, error)
	UpdateNotes(ctx context.Context, userID, id uuid.UUID, notes string) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

type SavedProductService struct {
	saved  savedProductStore
	logger *zap.Logger
}

func NewSavedProductService(saved savedProductStore, logger *zap.Logger) *SavedProductService {
	return &SavedProductService{
		saved:  saved,
		logger: logger,
	}
}

func (s *SavedProductService) List(ctx context.Context, userID uuid.UUID) ([]dto.SavedProductResponse, error) {
	products, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SavedProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toSavedResponse(p))
	}
	return out, nil
}

func (s *SavedProductService) Create(ctx context.Context, userID uuid.UUID, req *dto.SaveProductRequest) (*dto.SavedProductResponse, error) {
	now := time.Now()
	product := &models.SavedProduct{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.ProductName,
		URL:       req.ProductURL,
		Price:     *req.ProductPrice,
		Currency:  req.Currency,
		Store:     req.Store,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.ImageURL != "" {
		img := req.ImageURL
		product.ImageURL = &img
	}

	if err := s.saved.Create(ctx, product); err != nil {
		return nil, err
	}

	resp := toSavedResponse(product)
	return &resp, nil
}

// UpdateNotes is the only mutation a saved product supports.
func (s *SavedProductService) UpdateNotes(ctx context.Context, userID uuid.UUID, id, notes string) (*dto.SavedProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	updated, err := s.saved.UpdateNotes(ctx, userID, productID, notes)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, ErrNotFound
	}

	product, err := s.saved.GetByID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	resp := toSavedResponse(product)
	return &resp, nil
}

func (s *SavedProductService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	deleted, err := s.saved.Delete(ctx, userID, productID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func toSavedResponse(p *models.SavedProduct) dto.SavedProductResponse {
	resp := dto.SavedProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		URL:       p.URL,
		Price:     p.Price,
		Currency:  p.Currency,
		Store:     p.Store,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.ImageURL != nil {
		resp.ImageURL = *p.ImageURL
	}
	return resp
}
