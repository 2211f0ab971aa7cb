//go:build unit || e2e

package builder

import (
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/pricing"
	reqdto "closeout-market/internal/handler/dto/request"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	Now             time.Time
	StoreID         uuid.UUID
	SellerID        uuid.UUID
	Name            string
	Description     string
	OriginalPrice   int64
	DiscountPrice   int64
	Stock           int
	ExpiresAt       time.Time
	GoldenTimeOptIn bool
	Lat             float64
	Lng             float64
	ImageURL        string
}

func NewListingBuilder() *ListingBuilder {
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	return &ListingBuilder{
		Now:           now,
		StoreID:       uuid.New(),
		SellerID:      uuid.New(),
		Name:          "Croissant box",
		Description:   "Six butter croissants baked this morning",
		OriginalPrice: 12000,
		DiscountPrice: 6000,
		Stock:         5,
		ExpiresAt:     now.Add(3 * time.Hour),
		Lat:           37.5665,
		Lng:           126.9780,
		ImageURL:      "https://img.example.com/croissant.jpg",
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithStock(stock int) *ListingBuilder {
	b.Stock = stock
	return b
}

func (b *ListingBuilder) ExpiringIn(d time.Duration) *ListingBuilder {
	b.ExpiresAt = b.Now.Add(d)
	return b
}

// Build methods
func (b *ListingBuilder) BuildParams() listing.NewListingParams {
	return listing.NewListingParams{
		StoreID:         b.StoreID,
		Name:            b.Name,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountPrice:   b.DiscountPrice,
		Stock:           b.Stock,
		ExpiresAt:       b.ExpiresAt,
		GoldenTimeOptIn: b.GoldenTimeOptIn,
		Lat:             b.Lat,
		Lng:             b.Lng,
		ImageURL:        b.ImageURL,
	}
}

func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	return listing.NewListing(b.Now, b.BuildParams())
}

func (b *ListingBuilder) BuildInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Name:            b.Name,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountPrice:   b.DiscountPrice,
		Stock:           b.Stock,
		ExpiresAt:       b.ExpiresAt,
		GoldenTimeOptIn: b.GoldenTimeOptIn,
		Lat:             b.Lat,
		Lng:             b.Lng,
		ImageURL:        b.ImageURL,
	}
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	stock := b.Stock
	optIn := b.GoldenTimeOptIn
	lat, lng := b.Lat, b.Lng
	return reqdto.CreateListingRequest{
		Name:            b.Name,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountPrice:   b.DiscountPrice,
		Stock:           &stock,
		ExpiresAt:       b.ExpiresAt,
		GoldenTimeOptIn: &optIn,
		Lat:             &lat,
		Lng:             &lng,
		ImageURL:        b.ImageURL,
	}
}

// BuildView returns the raw read-store row; derived fields are left zero.
func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:              uuid.New(),
		StoreID:         b.StoreID,
		SellerID:        b.SellerID,
		StoreName:       "Morning Bakery",
		StoreAddress:    "12 Sejong-daero, Jung-gu, Seoul",
		Name:            b.Name,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountPrice:   b.DiscountPrice,
		Stock:           b.Stock,
		ExpiresAt:       b.ExpiresAt,
		GoldenTimeOptIn: b.GoldenTimeOptIn,
		Lat:             b.Lat,
		Lng:             b.Lng,
		ImageURL:        b.ImageURL,
		CreatedAt:       b.Now.Add(-time.Hour),
	}
}

// BuildDecoratedView is BuildView with the fields the query layer derives.
func (b *ListingBuilder) BuildDecoratedView(now time.Time) *queries.ListingView {
	v := b.BuildView()
	v.IsSoldOut = v.Stock == 0
	v.Pricing = pricing.Evaluate(now, v.ExpiresAt, v.GoldenTimeOptIn)
	orig, _ := listing.NewMoney(v.OriginalPrice)
	disc, _ := listing.NewMoney(v.DiscountPrice)
	v.DiscountPercent = disc.DiscountPercentFrom(orig)
	v.MarketingTags = []string{}
	return v
}
