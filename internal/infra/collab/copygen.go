package collab

import (
	"context"
	"net/http"
	"time"

	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/shared"
)

type CopyGenClient struct {
	url    string
	apiKey string
	client *http.Client
}

func NewCopyGenerator(cfg config.CollaboratorsConfig) shared.CopyGenerator {
	if cfg.CopyGenURL == "" {
		return NoopCopyGenerator{}
	}
	return &CopyGenClient{
		url:    cfg.CopyGenURL,
		apiKey: cfg.CopyGenAPIKey,
		client: &http.Client{Timeout: cfg.CopyGenTimeout},
	}
}

type copyGenRequest struct {
	ProductName   string    `json:"product_name"`
	Description   string    `json:"description,omitempty"`
	OriginalPrice int64     `json:"original_price"`
	DiscountPrice int64     `json:"discount_price"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type copyGenResponse struct {
	SalesCopy  string   `json:"sales_copy"`
	BestMoment string   `json:"best_moment"`
	TasteTags  []string `json:"taste_tags"`
}

func (c *CopyGenClient) Generate(ctx context.Context, req shared.CopyRequest) (*shared.MarketingCopy, error) {
	var out copyGenResponse
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["X-API-Key"] = c.apiKey
	}
	err := postJSON(ctx, c.client, c.url, headers, copyGenRequest{
		ProductName:   req.Name,
		Description:   req.Description,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		ExpiresAt:     req.ExpiresAt,
	}, &out)
	if err != nil {
		return nil, err
	}

	tags := out.TasteTags
	if out.BestMoment != "" {
		tags = append(tags, out.BestMoment)
	}
	return &shared.MarketingCopy{Copy: out.SalesCopy, Tags: tags}, nil
}

// NoopCopyGenerator leaves listings unannotated.
type NoopCopyGenerator struct{}

func (NoopCopyGenerator) Generate(context.Context, shared.CopyRequest) (*shared.MarketingCopy, error) {
	return nil, nil
}
