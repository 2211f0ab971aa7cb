package listing

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"closeout-market/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyName             = errors.New("listing name cannot be empty")
	ErrNameTooLong           = errors.New("listing name is too long (max 255 characters)")
	ErrDiscountAboveOriginal = errors.New("discount price cannot exceed original price")
	ErrNegativeStock         = errors.New("stock cannot be negative")
	ErrExpiryNotInFuture     = errors.New("expiry must be in the future")
)

const MaxNameLength = 255

type State string

const (
	StateAvailable State = "available"
	StateSoldOut   State = "sold_out"
	StateExpired   State = "expired"
)

type Listing struct {
	id              uuid.UUID
	storeID         uuid.UUID
	name            string
	description     string
	originalPrice   Money
	discountPrice   Money
	stock           int
	expiresAt       time.Time
	goldenTimeOptIn bool
	location        GeoPoint
	imageURL        string
	marketingCopy   string
	marketingTags   []string
	createdAt       time.Time
}

type NewListingParams struct {
	StoreID         uuid.UUID
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

func NewListing(now time.Time, p NewListingParams) (*Listing, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	original, err := NewMoney(p.OriginalPrice)
	if err != nil {
		return nil, err
	}
	discount, err := NewMoney(p.DiscountPrice)
	if err != nil {
		return nil, err
	}
	if discount.Minor() > original.Minor() {
		return nil, ErrDiscountAboveOriginal
	}
	if p.Stock < 0 {
		return nil, ErrNegativeStock
	}
	if !p.ExpiresAt.After(now) {
		return nil, ErrExpiryNotInFuture
	}
	loc, err := NewGeoPoint(p.Lat, p.Lng)
	if err != nil {
		return nil, err
	}

	return &Listing{
		id:              uuid.New(),
		storeID:         p.StoreID,
		name:            name,
		description:     strings.TrimSpace(p.Description),
		originalPrice:   original,
		discountPrice:   discount,
		stock:           p.Stock,
		expiresAt:       p.ExpiresAt,
		goldenTimeOptIn: p.GoldenTimeOptIn,
		location:        loc,
		imageURL:        strings.TrimSpace(p.ImageURL),
		createdAt:       now,
	}, nil
}

func ReconstructListing(
	id, storeID uuid.UUID,
	name, description string,
	originalPrice, discountPrice Money,
	stock int,
	expiresAt time.Time,
	goldenTimeOptIn bool,
	location GeoPoint,
	imageURL, marketingCopy string,
	marketingTags []string,
	createdAt time.Time,
) *Listing {
	return &Listing{
		id:              id,
		storeID:         storeID,
		name:            name,
		description:     description,
		originalPrice:   originalPrice,
		discountPrice:   discountPrice,
		stock:           stock,
		expiresAt:       expiresAt,
		goldenTimeOptIn: goldenTimeOptIn,
		location:        location,
		imageURL:        imageURL,
		marketingCopy:   marketingCopy,
		marketingTags:   marketingTags,
		createdAt:       createdAt,
	}
}

// WithMarketing attaches generated copy. Empty input leaves the listing untouched.
func (l *Listing) WithMarketing(copyText string, tags []string) {
	if c := strings.TrimSpace(copyText); c != "" {
		l.marketingCopy = c
	}
	if t := NormalizeTags(tags); len(t) > 0 {
		l.marketingTags = t
	}
}

func (l *Listing) IsSoldOut() bool {
	return l.stock == 0
}

func (l *Listing) PricingAt(now time.Time) pricing.Window {
	return pricing.Evaluate(now, l.expiresAt, l.goldenTimeOptIn)
}

// StateAt reports the listing state; expiry dominates sold-out.
func (l *Listing) StateAt(now time.Time) State {
	switch {
	case l.PricingAt(now).IsExpired:
		return StateExpired
	case l.IsSoldOut():
		return StateSoldOut
	default:
		return StateAvailable
	}
}

func (l *Listing) ID() uuid.UUID           { return l.id }
func (l *Listing) StoreID() uuid.UUID      { return l.storeID }
func (l *Listing) Name() string            { return l.name }
func (l *Listing) Description() string     { return l.description }
func (l *Listing) OriginalPrice() Money    { return l.originalPrice }
func (l *Listing) DiscountPrice() Money    { return l.discountPrice }
func (l *Listing) Stock() int              { return l.stock }
func (l *Listing) ExpiresAt() time.Time    { return l.expiresAt }
func (l *Listing) GoldenTimeOptIn() bool   { return l.goldenTimeOptIn }
func (l *Listing) Location() GeoPoint      { return l.location }
func (l *Listing) ImageURL() string        { return l.imageURL }
func (l *Listing) MarketingCopy() string   { return l.marketingCopy }
func (l *Listing) MarketingTags() []string { return l.marketingTags }
func (l *Listing) CreatedAt() time.Time    { return l.createdAt }
