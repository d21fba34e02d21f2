package service

import (
	"context"
	"net/url"
	"time"

	"pricescout/internal/dto"
	"pricescout/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type historyStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SearchRecord, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SearchRecord, error)
	DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type HistoryService struct {
	history historyStore
	logger  *zap.Logger
}

func NewHistoryService(history historyStore, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		history: history,
		logger:  logger,
	}
}

func (s *HistoryService) List(ctx context.Context, userID uuid.UUID) ([]dto.SearchRecordResponse, error) {
	records, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SearchRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.SearchRecordResponse{
			ID:            rec.ID.String(),
			Query:         rec.Query,
			Type:          string(rec.InputKind),
			StoreType:     rec.StoreType,
			ResultCount:   rec.ResultCount,
			CheapestPrice: rec.CheapestPrice,
			CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Delete removes one record when id is set, or the caller's entire history
// when it is empty. Returns the exact number of rows removed; deleting an
// absent or foreign record is NotFound, never a silent no-op.
func (s *HistoryService) Delete(ctx context.Context, userID uuid.UUID, id string) (int64, error) {
	if id == "" {
		return s.history.DeleteAllByUser(ctx, userID)
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return 0, ErrNotFound
	}

	deleted, err := s.history.DeleteByID(ctx, userID, recordID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrNotFound
	}
	return deleted, nil
}

// Retry hands back the original query and a client-navigable redirect target.
// It does not re-execute the search; resubmission is the client's job.
func (s *HistoryService) Retry(ctx context.Context, userID uuid.UUID, historyID string) (*dto.HistoryRetryResponse, error) {
	recordID, err := uuid.Parse(historyID)
	if err != nil {
		return nil, ErrNotFound
	}

	rec, err := s.history.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	return &dto.HistoryRetryResponse{
		Query:       rec.Query,
		RedirectURL: "/search?q=" + url.QueryEscape(rec.Query),
	}, nil
}
