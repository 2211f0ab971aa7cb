package store

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyStoreName      = errors.New("store name cannot be empty")
	ErrStoreNameTooLong    = errors.New("store name is too long (max 255 characters)")
	ErrEmptyAddress        = errors.New("store address cannot be empty")
	ErrInvalidBizNumber    = errors.New("business number must have 10 digits")
	ErrInvalidBizStartDate = errors.New("business start date must be YYYYMMDD")
)

const (
	MaxStoreNameLength = 255
	bizNumberDigits    = 10
)

type Store struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	name       string
	address    string
	bizNumber  string
	verifiedAt *time.Time
	createdAt  time.Time
}

func NewStore(ownerID uuid.UUID, name, address, bizNumber string, now time.Time) (*Store, error) {
	if err := validateStoreName(name); err != nil {
		return nil, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	normalized, err := NormalizeBizNumber(bizNumber)
	if err != nil {
		return nil, err
	}

	return &Store{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      strings.TrimSpace(name),
		address:   address,
		bizNumber: normalized,
		createdAt: now,
	}, nil
}

func ReconstructStore(id, ownerID uuid.UUID, name, address, bizNumber string, verifiedAt *time.Time, createdAt time.Time) *Store {
	return &Store{
		id:         id,
		ownerID:    ownerID,
		name:       name,
		address:    address,
		bizNumber:  bizNumber,
		verifiedAt: verifiedAt,
		createdAt:  createdAt,
	}
}

// NormalizeBizNumber strips separators such as "123-45-67890".
func NormalizeBizNumber(s string) (string, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
		default:
			return "", ErrInvalidBizNumber
		}
	}
	if b.Len() != bizNumberDigits {
		return "", ErrInvalidBizNumber
	}
	return b.String(), nil
}

func validateStoreName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStoreName
	}
	if utf8.RuneCountInString(name) > MaxStoreNameLength {
		return ErrStoreNameTooLong
	}
	return nil
}

func (s *Store) IsVerified() bool {
	return s.verifiedAt != nil
}

func (s *Store) ID() uuid.UUID          { return s.id }
func (s *Store) OwnerID() uuid.UUID     { return s.ownerID }
func (s *Store) Name() string           { return s.name }
func (s *Store) Address() string        { return s.address }
func (s *Store) BizNumber() string      { return s.bizNumber }
func (s *Store) VerifiedAt() *time.Time { return s.verifiedAt }
func (s *Store) CreatedAt() time.Time   { return s.createdAt }

// Registration is what the business-verification service checks.
type Registration struct {
	BizNumber string
	OwnerName string
	StartDate string // YYYYMMDD
}

func NewRegistration(bizNumber, ownerName, startDate string) (Registration, error) {
	normalized, err := NormalizeBizNumber(bizNumber)
	if err != nil {
		return Registration{}, err
	}
	startDate = strings.ReplaceAll(strings.TrimSpace(startDate), "-", "")
	if _, err := time.Parse("20060102", startDate); err != nil {
		return Registration{}, ErrInvalidBizStartDate
	}
	return Registration{
		BizNumber: normalized,
		OwnerName: strings.TrimSpace(ownerName),
		StartDate: startDate,
	}, nil
}
