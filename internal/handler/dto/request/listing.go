package request

import (
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/pkg/patch"
	"closeout-market/internal/usecase/commands"
)

type ViewportQuery struct {
	MinLat *float64 `form:"minLat" binding:"required"`
	MinLng *float64 `form:"minLng" binding:"required"`
	MaxLat *float64 `form:"maxLat" binding:"required"`
	MaxLng *float64 `form:"maxLng" binding:"required"`
	Limit  int      `form:"limit" binding:"omitempty,min=1"`
}

func (q ViewportQuery) ToDomain() (listing.Viewport, error) {
	return listing.NewViewport(*q.MinLat, *q.MinLng, *q.MaxLat, *q.MaxLng)
}

type CreateListingRequest struct {
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	OriginalPrice   int64     `json:"original_price" binding:"gte=0"`
	DiscountPrice   int64     `json:"discount_price" binding:"gte=0"`
	Stock           *int      `json:"stock" binding:"required,gte=0"`
	ExpiresAt       time.Time `json:"expires_at" binding:"required"`
	GoldenTimeOptIn *bool     `json:"golden_time_opt_in"`
	Lat             *float64  `json:"lat" binding:"required"`
	Lng             *float64  `json:"lng" binding:"required"`
	ImageURL        string    `json:"image_url" binding:"omitempty,url"`
}

func (r CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Name:            r.Name,
		Description:     r.Description,
		OriginalPrice:   r.OriginalPrice,
		DiscountPrice:   r.DiscountPrice,
		Stock:           patch.Coalesce(r.Stock, 0),
		ExpiresAt:       r.ExpiresAt,
		GoldenTimeOptIn: patch.Coalesce(r.GoldenTimeOptIn, false),
		Lat:             patch.Coalesce(r.Lat, 0),
		Lng:             patch.Coalesce(r.Lng, 0),
		ImageURL:        r.ImageURL,
	}
}
