package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"net/url"
	"strings"
	"time"

	"pricescout/internal/dto"
	"pricescout/internal/models"
	"pricescout/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// searchRecorder is the persistence slice the search path needs. Recording a
// search is a non-critical side effect: its failure is logged and swallowed,
// never surfaced to the caller.
type searchRecorder interface {
	Create(ctx context.Context, rec *models.SearchRecord) error
}

type SearchService struct {
	history searchRecorder
	logger  *zap.Logger
}

func NewSearchService(history searchRecorder, logger *zap.Logger) *SearchService {
	return &SearchService{
		history: history,
		logger:  logger,
	}
}

// Search classifies the query, produces a result set and records the search.
// The caller is expected to have sanitized the query already.
func (s *SearchService) Search(ctx context.Context, userID uuid.UUID, query string) (*dto.SearchResponse, error) {
	if query == "" {
		return nil, ErrInvalidQuery
	}

	kind := models.InputKeyword
	storeType := ""
	if validate.IsURL(query) {
		kind = models.InputURL
		storeType = validate.ClassifyStore(query)
	}

	product, alternatives := lookupProducts(query, kind)

	all := make([]models.Product, 0, len(alternatives)+1)
	all = append(all, product)
	all = append(all, alternatives...)
	cheapest := Cheapest(all)

	rec := &models.SearchRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Query:       query,
		InputKind:   kind,
		StoreType:   storeType,
		ResultCount: len(all),
		CreatedAt:   time.Now(),
	}
	if cheapest != nil {
		price := cheapest.Price
		rec.CheapestPrice = &price
	}

	searchID := rec.ID.String()
	if err := s.history.Create(ctx, rec); err != nil {
		s.logger.Warn("Failed to record search history",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		searchID = ""
	}

	return &dto.SearchResponse{
		Query:        query,
		Type:         string(kind),
		URLType:      storeType,
		Product:      &product,
		Alternatives: alternatives,
		Cheapest:     cheapest,
		SearchID:     searchID,
	}, nil
}

// Cheapest returns the minimum-priced product. Ties resolve to the
// first-encountered item: later products win only on strictly lower price.
func Cheapest(products []models.Product) *models.Product {
	var best *models.Product
	for i := range products {
		if products[i].Price <= 0 {
			continue
		}
		if best == nil || products[i].Price < best.Price {
			best = &products[i]
		}
	}
	return best
}

// lookupProducts substitutes for the external product-lookup collaborator.
// Results are deterministic per query so repeated searches are stable.
// TODO: replace with the scraping backend once it ships.
func lookupProducts(query string, kind models.InputKind) (models.Product, []models.Product) {
	name := query
	if kind == models.InputURL {
		if u, err := url.Parse(query); err == nil && u.Host != "" {
			name = "Product at " + strings.TrimPrefix(u.Host, "www.")
		}
	}

	h := fnv.New32a()
	h.Write([]byte(query))
	seed := h.Sum32()

	basePrice := round2(20 + float64(seed%48000)/100)
	rating := round2(3.5 + float64(seed%15)/10)
	reviews := int(seed%5000) + 12

	product := models.Product{
		ID:          fmt.Sprintf("ps-%08x", seed),
		Name:        name,
		Price:       basePrice,
		Currency:    "USD",
		URL:         productURL(query, kind, "amazon.com", seed),
		Store:       "Amazon",
		Rating:      &rating,
		ReviewCount: &reviews,
	}

	altStores := []struct {
		store  string
		host   string
		factor float64
	}{
		{"eBay", "ebay.com", 0.85},
		{"Walmart", "walmart.com", 0.92},
		{"AliExpress", "aliexpress.com", 1.07},
	}

	alternatives := make([]models.Product, 0, len(altStores))
	for i, alt := range altStores {
		alternatives = append(alternatives, models.Product{
			ID:       fmt.Sprintf("ps-%08x-%d", seed, i),
			Name:     name,
			Price:    round2(basePrice * alt.factor),
			Currency: "USD",
			URL:      productURL(name, models.InputKeyword, alt.host, seed),
			Store:    alt.store,
		})
	}

	return product, alternatives
}

func productURL(query string, kind models.InputKind, host string, seed uint32) string {
	if kind == models.InputURL {
		return query
	}
	return fmt.Sprintf("https://www.%s/item/%08x?q=%s", host, seed, url.QueryEscape(query))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
