package request

import "github.com/google/uuid"

type OpenChannelRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
}

type PostMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type HistoryQuery struct {
	AfterSeq int64 `form:"afterSeq" binding:"gte=0"`
	Limit    int   `form:"limit" binding:"omitempty,min=1,max=200"`
}

type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
