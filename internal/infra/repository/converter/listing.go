package converter

import (
	"math"

	"closeout-market/internal/domain/listing"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	tags := l.MarketingTags()
	if tags == nil {
		tags = []string{}
	}

	return sqlc.CreateListingParams{
		ID:              l.ID(),
		StoreID:         l.StoreID(),
		Name:            l.Name(),
		Description:     pgconv.OptionalStringToPgtype(l.Description()),
		OriginalPrice:   l.OriginalPrice().Minor(),
		DiscountPrice:   l.DiscountPrice().Minor(),
		Stock:           clampInt32(l.Stock()),
		ExpiresAt:       pgconv.TimeToPgtype(l.ExpiresAt()),
		GoldenTimeOptIn: l.GoldenTimeOptIn(),
		Lat:             l.Location().Lat(),
		Lng:             l.Location().Lng(),
		ImageUrl:        pgconv.OptionalStringToPgtype(l.ImageURL()),
		MarketingCopy:   pgconv.OptionalStringToPgtype(l.MarketingCopy()),
		MarketingTags:   tags,
		CreatedAt:       pgconv.TimeToPgtype(l.CreatedAt()),
	}
}

// Stock is validated non-negative by the domain; the column is INTEGER.
func clampInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < 0 {
		return 0
	}
	return int32(n)
}
