package service

import (
	"context"
	"errors"
	"testing"

	"pricescout/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	records []*models.SearchRecord
	err     error
}

func (f *fakeRecorder) Create(_ context.Context, rec *models.SearchRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func TestCheapest(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 30},
		{ID: "b", Price: 10},
		{ID: "c", Price: 20},
	}
	cheapest := Cheapest(products)
	require.NotNil(t, cheapest)
	assert.Equal(t, "b", cheapest.ID)
}

func TestCheapestFirstWinsOnTie(t *testing.T) {
	products := []models.Product{
		{ID: "first", Price: 10},
		{ID: "second", Price: 10},
		{ID: "third", Price: 10},
	}
	cheapest := Cheapest(products)
	require.NotNil(t, cheapest)
	assert.Equal(t, "first", cheapest.ID)
}

func TestCheapestSkipsNonPositivePrices(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 0},
		{ID: "b", Price: 15},
	}
	cheapest := Cheapest(products)
	require.NotNil(t, cheapest)
	assert.Equal(t, "b", cheapest.ID)

	assert.Nil(t, Cheapest([]models.Product{{ID: "a", Price: 0}}))
	assert.Nil(t, Cheapest(nil))
}

func TestSearchClassifiesKeyword(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewSearchService(recorder, zap.NewNop())

	resp, err := svc.Search(context.Background(), uuid.New(), "wireless headphones")
	require.NoError(t, err)

	assert.Equal(t, "keyword", resp.Type)
	assert.Empty(t, resp.URLType)
	assert.NotNil(t, resp.Product)
	assert.NotEmpty(t, resp.Alternatives)
	assert.NotNil(t, resp.Cheapest)
	assert.NotEmpty(t, resp.SearchID)
}

func TestSearchClassifiesURL(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewSearchService(recorder, zap.NewNop())

	resp, err := svc.Search(context.Background(), uuid.New(), "https://www.amazon.com/dp/B0001")
	require.NoError(t, err)

	assert.Equal(t, "url", resp.Type)
	assert.Equal(t, "amazon", resp.URLType)
}

func TestSearchRecordsHistory(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewSearchService(recorder, zap.NewNop())
	userID := uuid.New()

	resp, err := svc.Search(context.Background(), userID, "mechanical keyboard")
	require.NoError(t, err)

	require.Len(t, recorder.records, 1)
	rec := recorder.records[0]
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, "mechanical keyboard", rec.Query)
	assert.Equal(t, models.InputKeyword, rec.InputKind)
	assert.Equal(t, len(resp.Alternatives)+1, rec.ResultCount)
	require.NotNil(t, rec.CheapestPrice)
	assert.Equal(t, resp.Cheapest.Price, *rec.CheapestPrice)
	assert.Equal(t, rec.ID.String(), resp.SearchID)
}

func TestSearchSwallowsRecorderFailure(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("db down")}
	svc := NewSearchService(recorder, zap.NewNop())

	resp, err := svc.Search(context.Background(), uuid.New(), "usb hub")
	require.NoError(t, err)
	assert.NotNil(t, resp.Product)
	assert.Empty(t, resp.SearchID)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewSearchService(&fakeRecorder{}, zap.NewNop())

	_, err := svc.Search(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSearchIsDeterministic(t *testing.T) {
	svc := NewSearchService(&fakeRecorder{}, zap.NewNop())

	first, err := svc.Search(context.Background(), uuid.New(), "laptop stand")
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), uuid.New(), "laptop stand")
	require.NoError(t, err)

	assert.Equal(t, first.Product.Price, second.Product.Price)
	assert.Equal(t, first.Cheapest.Price, second.Cheapest.Price)
}
