package queries

import (
	"time"

	"closeout-market/internal/domain/message"
	"closeout-market/internal/domain/pricing"

	"github.com/google/uuid"
)

// ListingView is the read model served by the viewport query and the detail page.
// IsSoldOut and Pricing are derived at read time.
type ListingView struct {
	ID              uuid.UUID      `json:"id"`
	StoreID         uuid.UUID      `json:"store_id"`
	SellerID        uuid.UUID      `json:"seller_id"`
	StoreName       string         `json:"store_name"`
	StoreAddress    string         `json:"store_address"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	OriginalPrice   int64          `json:"original_price"`
	DiscountPrice   int64          `json:"discount_price"`
	DiscountPercent int            `json:"discount_percent"`
	Stock           int            `json:"stock"`
	IsSoldOut       bool           `json:"is_sold_out"`
	ExpiresAt       time.Time      `json:"expires_at"`
	GoldenTimeOptIn bool           `json:"golden_time_opt_in"`
	Lat             float64        `json:"lat"`
	Lng             float64        `json:"lng"`
	ImageURL        string         `json:"image_url,omitempty"`
	MarketingCopy   string         `json:"marketing_copy,omitempty"`
	MarketingTags   []string       `json:"marketing_tags"`
	Pricing         pricing.Window `json:"pricing"`
	CreatedAt       time.Time      `json:"created_at"`
}

type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	ListingID        uuid.UUID `json:"listing_id"`
	BuyerID          uuid.UUID `json:"buyer_id"`
	Outcome          string    `json:"outcome"`
	RejectReason     string    `json:"reject_reason,omitempty"`
	ListingName      string    `json:"listing_name"`
	DiscountPrice    int64     `json:"discount_price"`
	ListingExpiresAt time.Time `json:"listing_expires_at"`
	StoreName        string    `json:"store_name"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReservationListItem struct {
	ID               uuid.UUID `json:"id"`
	ListingID        uuid.UUID `json:"listing_id"`
	ListingName      string    `json:"listing_name"`
	StoreName        string    `json:"store_name"`
	DiscountPrice    int64     `json:"discount_price"`
	ListingExpiresAt time.Time `json:"listing_expires_at"`
	CreatedAt        time.Time `json:"created_at"`
}

type ChannelView struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	LastSeq   int64     `json:"last_seq"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *ChannelView) IsParticipant(userID uuid.UUID) bool {
	return userID != uuid.Nil && (userID == v.BuyerID || userID == v.SellerID)
}

type ChannelListItem struct {
	ChannelView
	ListingName string `json:"listing_name"`
	StoreName   string `json:"store_name"`
}

// MessageView is also the live wire encoding pushed through the transport.
type MessageView struct {
	ID        uuid.UUID `json:"id"`
	ChannelID uuid.UUID `json:"channel_id"`
	Seq       int64     `json:"seq"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func MessageViewFrom(m *message.Message) *MessageView {
	return &MessageView{
		ID:        m.ID(),
		ChannelID: m.ChannelID(),
		Seq:       m.Seq(),
		SenderID:  m.SenderID(),
		Body:      m.Body().String(),
		CreatedAt: m.CreatedAt(),
	}
}

type StoreView struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	BizNumber  string     `json:"biz_number"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
