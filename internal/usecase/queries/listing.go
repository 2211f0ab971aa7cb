package queries

import (
	"context"
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/pricing"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"

	"github.com/google/uuid"
)

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	// FindInViewport returns listings inside vp (inclusive) expiring after visibleAfter,
	// ordered by (expires_at, id).
	FindInViewport(ctx context.Context, vp listing.Viewport, visibleAfter time.Time, limit int32) ([]*ListingView, error)
}

type ListingQueries interface {
	InViewport(ctx context.Context, vp listing.Viewport, limit int) ([]*ListingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	repo  ListingReadStore
	clock clock.Clock
	cfg   config.ListingConfig
}

func NewListingQueries(repo ListingReadStore, clk clock.Clock, cfg config.ListingConfig) ListingQueries {
	return &listingQueriesImpl{repo: repo, clock: clk, cfg: cfg}
}

func (q *listingQueriesImpl) InViewport(ctx context.Context, vp listing.Viewport, limit int) ([]*ListingView, error) {
	maxResults := q.cfg.MaxViewport
	if maxResults <= 0 {
		maxResults = MaxListLimit
	}
	if limit <= 0 || limit > maxResults {
		limit = maxResults
	}

	now := q.clock.Now()
	rows, err := q.repo.FindInViewport(ctx, vp, now.Add(-q.cfg.ExpiredGrace), int32(limit)) // #nosec G115 -- bounded above
	if err != nil {
		return nil, readErr(err)
	}

	views := make([]*ListingView, 0, len(rows))
	for _, v := range rows {
		decorate(v, now)
		views = append(views, v)
	}
	return views, nil
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err)
	}
	decorate(v, q.clock.Now())
	return v, nil
}

// decorate fills the fields derived at read time.
func decorate(v *ListingView, now time.Time) {
	v.IsSoldOut = v.Stock <= 0
	v.Pricing = pricing.Evaluate(now, v.ExpiresAt, v.GoldenTimeOptIn)
	original, oerr := listing.NewMoney(v.OriginalPrice)
	discount, derr := listing.NewMoney(v.DiscountPrice)
	if oerr == nil && derr == nil {
		v.DiscountPercent = discount.DiscountPercentFrom(original)
	}
	if v.MarketingTags == nil {
		v.MarketingTags = []string{}
	}
}
