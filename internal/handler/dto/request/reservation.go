package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
}

type ListReservationsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
