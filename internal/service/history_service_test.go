package service

import (
	"context"
	"testing"
	"time"

	"pricescout/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeHistoryStore keeps records in memory with the same owner-scoping rules
// as the real repository.
type fakeHistoryStore struct {
	records []*models.SearchRecord
}

func (f *fakeHistoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.SearchRecord, error) {
	var out []*models.SearchRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistoryStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.SearchRecord, error) {
	for _, r := range f.records {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeHistoryStore) DeleteByID(_ context.Context, userID, id uuid.UUID) (int64, error) {
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeHistoryStore) DeleteAllByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var kept []*models.SearchRecord
	var deleted int64
	for _, r := range f.records {
		if r.UserID == userID {
			deleted++
		} else {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return deleted, nil
}

func historyRecord(userID uuid.UUID, query string) *models.SearchRecord {
	return &models.SearchRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Query:     query,
		InputKind: models.InputKeyword,
		CreatedAt: time.Now(),
	}
}

func TestHistoryDeleteOne(t *testing.T) {
	userID := uuid.New()
	rec := historyRecord(userID, "headphones")
	store := &fakeHistoryStore{records: []*models.SearchRecord{rec}}
	svc := NewHistoryService(store, zap.NewNop())

	deleted, err := svc.Delete(context.Background(), userID, rec.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, store.records)
}

func TestHistoryDeleteAllReturnsPriorCount(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()
	store := &fakeHistoryStore{records: []*models.SearchRecord{
		historyRecord(userID, "a"),
		historyRecord(userID, "b"),
		historyRecord(userID, "c"),
		historyRecord(other, "not mine"),
	}}
	svc := NewHistoryService(store, zap.NewNop())

	deleted, err := svc.Delete(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	require.Len(t, store.records, 1)
	assert.Equal(t, other, store.records[0].UserID)
}

func TestHistoryDeleteForeignRecordIsNotFound(t *testing.T) {
	owner := uuid.New()
	rec := historyRecord(owner, "headphones")
	store := &fakeHistoryStore{records: []*models.SearchRecord{rec}}
	svc := NewHistoryService(store, zap.NewNop())

	_, err := svc.Delete(context.Background(), uuid.New(), rec.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	// The other owner's row is untouched.
	assert.Len(t, store.records, 1)
}

func TestHistoryDeleteBadIDIsNotFound(t *testing.T) {
	svc := NewHistoryService(&fakeHistoryStore{}, zap.NewNop())

	_, err := svc.Delete(context.Background(), uuid.New(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryRetry(t *testing.T) {
	userID := uuid.New()
	rec := historyRecord(userID, "4k monitor")
	store := &fakeHistoryStore{records: []*models.SearchRecord{rec}}
	svc := NewHistoryService(store, zap.NewNop())

	resp, err := svc.Retry(context.Background(), userID, rec.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "4k monitor", resp.Query)
	assert.Equal(t, "/search?q=4k+monitor", resp.RedirectURL)
}

func TestHistoryRetryForeignRecordIsNotFound(t *testing.T) {
	owner := uuid.New()
	rec := historyRecord(owner, "4k monitor")
	store := &fakeHistoryStore{records: []*models.SearchRecord{rec}}
	svc := NewHistoryService(store, zap.NewNop())

	_, err := svc.Retry(context.Background(), uuid.New(), rec.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryList(t *testing.T) {
	userID := uuid.New()
	store := &fakeHistoryStore{records: []*models.SearchRecord{
		historyRecord(userID, "a"),
		historyRecord(uuid.New(), "not mine"),
	}}
	svc := NewHistoryService(store, zap.NewNop())

	records, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].Query)
}
