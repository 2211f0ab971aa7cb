package commands

import (
	"context"
	"log/slog"
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingInput struct {
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

type ListingCommands interface {
	Create(ctx context.Context, principal user.Principal, input CreateListingInput) (uuid.UUID, error)
}

type listingCommandsImpl struct {
	uow     shared.UnitOfWork
	copyGen shared.CopyGenerator
	clock   clock.Clock
	cfg     config.CollaboratorsConfig
}

func NewListingCommands(
	uow shared.UnitOfWork,
	copyGen shared.CopyGenerator,
	clk clock.Clock,
	cfg config.CollaboratorsConfig,
) ListingCommands {
	return &listingCommandsImpl{uow: uow, copyGen: copyGen, clock: clk, cfg: cfg}
}

func (l *listingCommandsImpl) Create(ctx context.Context, principal user.Principal, input CreateListingInput) (uuid.UUID, error) {
	if !principal.IsAuthenticated() {
		return uuid.Nil, errs.ErrUnauthenticated
	}
	if !principal.CanSell() {
		return uuid.Nil, errs.Mark(errs.New("only sellers can list items"), errs.ErrForbidden)
	}

	st, err := l.uow.CommandReads().StoreByOwner(ctx, principal.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrStoreRequired
		}
		return uuid.Nil, classifyStoreErr(err)
	}

	entity, err := listing.NewListing(l.clock.Now(), listing.NewListingParams{
		StoreID:         st.ID(),
		Name:            input.Name,
		Description:     input.Description,
		OriginalPrice:   input.OriginalPrice,
		DiscountPrice:   input.DiscountPrice,
		Stock:           input.Stock,
		ExpiresAt:       input.ExpiresAt,
		GoldenTimeOptIn: input.GoldenTimeOptIn,
		Lat:             input.Lat,
		Lng:             input.Lng,
		ImageURL:        input.ImageURL,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	l.enrich(ctx, entity)

	var id uuid.UUID
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Listings().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return uuid.Nil, classifyStoreErr(err)
	}
	return id, nil
}

// enrich attaches marketing copy when the generator answers in time.
// Any failure leaves the listing as the seller wrote it.
func (l *listingCommandsImpl) enrich(ctx context.Context, entity *listing.Listing) {
	if l.copyGen == nil {
		return
	}

	cctx := ctx
	if l.cfg.CopyGenTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, l.cfg.CopyGenTimeout)
		defer cancel()
	}

	out, err := l.copyGen.Generate(cctx, shared.CopyRequest{
		Name:          entity.Name(),
		Description:   entity.Description(),
		OriginalPrice: entity.OriginalPrice().Minor(),
		DiscountPrice: entity.DiscountPrice().Minor(),
		ExpiresAt:     entity.ExpiresAt(),
	})
	if err != nil {
		slog.Warn("marketing copy unavailable, creating listing without it",
			slog.String("listing_id", entity.ID().String()),
			sl.Err(err))
		return
	}
	if out != nil {
		entity.WithMarketing(out.Copy, out.Tags)
	}
}
