package commands

import (
	"context"
	"encoding/json"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChannelCommands interface {
	// GetOrCreate returns the single channel for (listingID, buyerID), creating it on first use.
	GetOrCreate(ctx context.Context, listingID, buyerID, sellerID uuid.UUID) (channel.GetOrCreateResult, error)
	// Open is the "contact seller" flow: the caller is the buyer, the seller comes from the listing.
	Open(ctx context.Context, principal user.Principal, listingID uuid.UUID) (channel.GetOrCreateResult, error)
}

type channelCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewChannelCommands(uow shared.UnitOfWork, clk clock.Clock) ChannelCommands {
	return &channelCommandsImpl{uow: uow, clock: clk}
}

func (c *channelCommandsImpl) GetOrCreate(ctx context.Context, listingID, buyerID, sellerID uuid.UUID) (channel.GetOrCreateResult, error) {
	ch, err := channel.NewChannel(listingID, buyerID, sellerID, c.clock.Now())
	if err != nil {
		return channel.GetOrCreateResult{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	var result channel.GetOrCreateResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, ierr := tx.Channels().Insert(ctx, tx.DB(), ch)
		if ierr != nil {
			if infra.IsKind(ierr, infra.KindDuplicateKey) {
				return errs.Mark(ierr, errs.ErrConflict)
			}
			return ierr
		}
		if ierr = appendChannelCreated(ctx, tx, created); ierr != nil {
			return ierr
		}
		result = channel.Created(created)
		return nil
	})
	if err == nil {
		return result, nil
	}
	if !errs.Is(err, errs.ErrConflict) {
		return channel.GetOrCreateResult{}, classifyStoreErr(err)
	}

	// Lost the race (or a retry of our own earlier call): the winner's row is committed.
	existing, err := c.uow.CommandReads().ChannelByListingAndBuyer(ctx, listingID, buyerID)
	if err != nil {
		return channel.GetOrCreateResult{}, classifyStoreErr(err)
	}
	return channel.AlreadyExists(existing), nil
}

func (c *channelCommandsImpl) Open(ctx context.Context, principal user.Principal, listingID uuid.UUID) (channel.GetOrCreateResult, error) {
	if !principal.IsAuthenticated() {
		return channel.GetOrCreateResult{}, errs.ErrUnauthenticated
	}

	snap, err := c.uow.CommandReads().ListingByID(ctx, listingID)
	if err != nil {
		return channel.GetOrCreateResult{}, classifyStoreErr(err)
	}
	if snap.SellerID == principal.ID() {
		return channel.GetOrCreateResult{}, ErrSellerOwnListing
	}

	return c.GetOrCreate(ctx, listingID, principal.ID(), snap.SellerID)
}

// getOrCreateInTx is the registry step of a reservation. The insert uses
// ON CONFLICT DO NOTHING, so a lost race leaves the tx usable and the winner's
// row is visible to the follow-up read under READ COMMITTED.
func getOrCreateInTx(ctx context.Context, tx shared.Tx, ch *channel.Channel) (channel.GetOrCreateResult, error) {
	created, err := tx.Channels().Insert(ctx, tx.DB(), ch)
	if err == nil {
		if err = appendChannelCreated(ctx, tx, created); err != nil {
			return channel.GetOrCreateResult{}, err
		}
		return channel.Created(created), nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return channel.GetOrCreateResult{}, err
	}

	existing, err := tx.Channels().FindByListingAndBuyer(ctx, tx.DB(), ch.ListingID(), ch.BuyerID())
	if err != nil {
		return channel.GetOrCreateResult{}, err
	}
	return channel.AlreadyExists(existing), nil
}

func appendChannelCreated(ctx context.Context, tx shared.Tx, ch *channel.Channel) error {
	payload, err := json.Marshal(channelCreatedEvent{
		ChannelID: ch.ID(),
		ListingID: ch.ListingID(),
		BuyerID:   ch.BuyerID(),
		SellerID:  ch.SellerID(),
		CreatedAt: ch.CreatedAt(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode channel.created event")
	}
	return tx.Outbox().Insert(ctx, tx.DB(), ch.ID(), shared.EventChannelCreated, payload)
}
