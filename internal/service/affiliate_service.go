package service

import (
	"net/url"
	"strings"

	"pricescout/internal/dto"
	"pricescout/internal/validate"
	"pricescout/pkg/config"

	"go.uber.org/zap"
)

type AffiliateService struct {
	cfg    *config.AffiliateConfig
	logger *zap.Logger
}

func NewAffiliateService(cfg *config.AffiliateConfig, logger *zap.Logger) *AffiliateService {
	return &AffiliateService{
		cfg:    cfg,
		logger: logger,
	}
}

// BuildLink produces a tracked redirect URL for a store listing. The
// transform is deterministic: the configured tag is appended as a query
// parameter. With no tag configured for the store the original URL is
// returned untracked rather than failing the request.
func (s *AffiliateService) BuildLink(rawURL, store string) (*dto.AffiliateResponse, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !validate.IsURL(rawURL) {
		return nil, ErrInvalidQuery
	}

	tag := s.tagFor(store)
	if tag == "" {
		return &dto.AffiliateResponse{
			AffiliateURL: rawURL,
			OriginalURL:  rawURL,
			Store:        store,
			Tracked:      false,
		}, nil
	}

	q := u.Query()
	if strings.EqualFold(store, validate.StoreAmazon) {
		q.Set("tag", tag)
	} else {
		q.Set("ref", tag)
	}
	u.RawQuery = q.Encode()

	return &dto.AffiliateResponse{
		AffiliateURL: u.String(),
		OriginalURL:  rawURL,
		Store:        store,
		Tracked:      true,
	}, nil
}

func (s *AffiliateService) tagFor(store string) string {
	if strings.EqualFold(store, validate.StoreAmazon) && s.cfg.AmazonTag != "" {
		return s.cfg.AmazonTag
	}
	return s.cfg.DefaultTag
}
