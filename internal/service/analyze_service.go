package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pricescout/internal/dto"
	"pricescout/internal/llm"
	"pricescout/internal/models"

	"go.uber.org/zap"
)

const analysisSystemPrompt = `You are a product analyst for a price-comparison service. Given a product, assess whether it is worth buying at the stated price and suggest cheaper or better alternatives.

Always respond with a single valid JSON object in exactly this format, with no markdown fences and no commentary before or after:
{
  "summary": "two or three sentence verdict on the product and its price",
  "pros": ["short point", ...],
  "cons": ["short point", ...],
  "alternatives": [{"name": "product name", "reason": "why it is a better deal"}, ...]
}

RULES:
- summary must never be empty
- pros, cons and alternatives may be empty arrays but must be present
- never invent exact prices you cannot justify from the input`

type AnalyzeService struct {
	client *llm.Client
	logger *zap.Logger
}

func NewAnalyzeService(client *llm.Client, logger *zap.Logger) *AnalyzeService {
	return &AnalyzeService{
		client: client,
		logger: logger,
	}
}

// Analyze walks the provider chain: the first provider whose reply both
// arrives and parses wins. A malformed reply counts as that provider's
// failure. With no providers configured a canned analysis is returned so the
// endpoint never depends on external credentials.
func (s *AnalyzeService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*models.AnalysisResult, error) {
	providers := s.client.Providers()
	if len(providers) == 0 {
		s.logger.Debug("No analysis providers configured, using canned analysis")
		return mockAnalysis(req), nil
	}

	userPrompt := buildAnalysisPrompt(req)

	var lastErr error
	for _, p := range providers {
		reply, err := p.Complete(ctx, analysisSystemPrompt, userPrompt)
		if err != nil {
			s.logger.Warn("Analysis provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		result, err := parseAnalysis(reply)
		if err != nil {
			s.logger.Warn("Analysis provider returned malformed reply",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		result.Provider = p.Name()
		return result, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUpstream, lastErr)
}

func buildAnalysisPrompt(req *dto.AnalyzeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s\n", req.ProductName)
	if req.ProductPrice != nil {
		fmt.Fprintf(&b, "Price: %.2f\n", *req.ProductPrice)
	}
	fmt.Fprintf(&b, "URL: %s\n", req.ProductURL)
	if req.ProductDescription != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.ProductDescription)
	}
	b.WriteString("\nAnalyze this product and return the JSON object.")
	return b.String()
}

// parseAnalysis extracts the JSON object from a provider reply. Providers
// sometimes wrap the object in markdown fences or prose, so everything
// outside the outermost braces is ignored.
func parseAnalysis(reply string) (*models.AnalysisResult, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(reply[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	if strings.TrimSpace(result.Summary) == "" {
		return nil, fmt.Errorf("analysis has empty summary")
	}

	// Empty lists are fine, nil lists are not: the envelope promises arrays.
	if result.Pros == nil {
		result.Pros = []string{}
	}
	if result.Cons == nil {
		result.Cons = []string{}
	}
	if result.Alternatives == nil {
		result.Alternatives = []models.Alternative{}
	}

	return &result, nil
}

func mockAnalysis(req *dto.AnalyzeRequest) *models.AnalysisResult {
	summary := fmt.Sprintf("%s looks like a reasonable purchase, but comparable items are often listed cheaper at other stores. Check the alternatives before buying.", req.ProductName)
	if req.ProductPrice != nil {
		summary = fmt.Sprintf("At %.2f, %s sits in the typical range for this category. Comparable items are often listed cheaper at other stores, so check the alternatives before buying.", *req.ProductPrice, req.ProductName)
	}

	return &models.AnalysisResult{
		Summary: summary,
		Pros: []string{
			"Listed at an established store",
			"Price is within the usual range for the category",
		},
		Cons: []string{
			"No live market comparison was performed",
			"Price history for this listing is unknown",
		},
		Alternatives: []models.Alternative{
			{Name: req.ProductName + " (refurbished)", Reason: "Refurbished units typically sell 20-40% below new"},
			{Name: "Previous-generation model", Reason: "Older revisions drop sharply in price after a refresh"},
		},
		Provider: "mock",
	}
}
