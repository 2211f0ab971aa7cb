//go:build unit || e2e

package fakestore

import (
	"context"
	"time"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/message"
	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/domain/store"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// Repositories run with the store lock held by Within.

type listingRepo struct{ s *Store }

func (r listingRepo) Create(_ context.Context, _ sqlc.DBTX, l *listing.Listing) (uuid.UUID, error) {
	if err := r.s.hook("Listings.Create"); err != nil {
		return uuid.Nil, err
	}
	r.s.state.listings[l.ID()] = listingRowFrom(l)
	return l.ID(), nil
}

func (r listingRepo) Reserve(_ context.Context, _ sqlc.DBTX, listingID uuid.UUID, now time.Time) (shared.ReserveOutcome, error) {
	if err := r.s.hook("Listings.Reserve"); err != nil {
		return shared.ReserveOutcome{}, err
	}
	row, ok := r.s.state.listings[listingID]
	if !ok {
		return shared.ReserveOutcome{Reason: reservation.ReasonNotFound}, nil
	}
	seller := r.s.state.stores[row.storeID].ownerID
	switch {
	case !row.expiresAt.After(now):
		return shared.ReserveOutcome{Reason: reservation.ReasonExpired, StockLeft: row.stock, SellerID: seller}, nil
	case row.stock <= 0:
		return shared.ReserveOutcome{Reason: reservation.ReasonSoldOut, SellerID: seller}, nil
	}
	row.stock--
	r.s.state.listings[listingID] = row
	return shared.ReserveOutcome{OK: true, StockLeft: row.stock, SellerID: seller}, nil
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Append(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.s.hook("Reservations.Append"); err != nil {
		return err
	}
	r.s.state.reservations = append(r.s.state.reservations, res)
	return nil
}

type channelRepo struct{ s *Store }

func (r channelRepo) Insert(_ context.Context, _ sqlc.DBTX, ch *channel.Channel) (*channel.Channel, error) {
	if err := r.s.hook("Channels.Insert"); err != nil {
		return nil, err
	}
	for _, row := range r.s.state.channels {
		if row.listingID == ch.ListingID() && row.buyerID == ch.BuyerID() {
			return nil, duplicate("channel")
		}
	}
	r.s.state.channels[ch.ID()] = channelRowFrom(ch)
	return ch, nil
}

func (r channelRepo) FindByListingAndBuyer(_ context.Context, _ sqlc.DBTX, listingID, buyerID uuid.UUID) (*channel.Channel, error) {
	if err := r.s.hook("Channels.FindByListingAndBuyer"); err != nil {
		return nil, err
	}
	return findChannel(r.s.state, listingID, buyerID)
}

func (r channelRepo) AdvanceSeq(_ context.Context, _ sqlc.DBTX, channelID uuid.UUID) (*channel.Channel, error) {
	if err := r.s.hook("Channels.AdvanceSeq"); err != nil {
		return nil, err
	}
	row, ok := r.s.state.channels[channelID]
	if !ok {
		return nil, notFound("channel")
	}
	row.lastSeq++
	r.s.state.channels[channelID] = row
	return row.domain(), nil
}

func findChannel(st *state, listingID, buyerID uuid.UUID) (*channel.Channel, error) {
	for _, row := range st.channels {
		if row.listingID == listingID && row.buyerID == buyerID {
			return row.domain(), nil
		}
	}
	return nil, notFound("channel")
}

type messageRepo struct{ s *Store }

func (r messageRepo) Insert(_ context.Context, _ sqlc.DBTX, msg *message.Message) (*message.Message, error) {
	if err := r.s.hook("Messages.Insert"); err != nil {
		return nil, err
	}
	for _, m := range r.s.state.messages[msg.ChannelID()] {
		if m.Seq() == msg.Seq() {
			return nil, duplicate("message seq")
		}
	}
	r.s.state.messages[msg.ChannelID()] = append(r.s.state.messages[msg.ChannelID()], msg)
	return msg, nil
}

type storeRepo struct{ s *Store }

func (r storeRepo) Create(_ context.Context, _ sqlc.DBTX, st *store.Store) (uuid.UUID, error) {
	if err := r.s.hook("Stores.Create"); err != nil {
		return uuid.Nil, err
	}
	for _, row := range r.s.state.stores {
		if row.ownerID == st.OwnerID() {
			return uuid.Nil, duplicate("store")
		}
	}
	id := st.ID()
	if id == uuid.Nil {
		id = uuid.New()
	}
	r.s.state.stores[id] = storeRowFrom(id, st)
	return id, nil
}

func (r storeRepo) MarkVerified(_ context.Context, _ sqlc.DBTX, storeID uuid.UUID, at time.Time) error {
	if err := r.s.hook("Stores.MarkVerified"); err != nil {
		return err
	}
	row, ok := r.s.state.stores[storeID]
	if !ok {
		return notFound("store")
	}
	row.verifiedAt = &at
	r.s.state.stores[storeID] = row
	return nil
}

type idempotencyRepo struct{ s *Store }

func (r idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	if err := r.s.hook("Idempotency.TryInsert"); err != nil {
		return false, err
	}
	k := idemKey{key, userID}
	if _, ok := r.s.state.idempotency[k]; ok {
		return false, nil
	}
	r.s.state.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	if err := r.s.hook("Idempotency.ClaimExpired"); err != nil {
		return false, err
	}
	k := idemKey{key, userID}
	rec, ok := r.s.state.idempotency[k]
	if !ok || rec.ExpiresAt.After(now) {
		return false, nil
	}
	r.s.state.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) Complete(_ context.Context, _ sqlc.DBTX, key, userID, reservationID, channelID uuid.UUID) error {
	if err := r.s.hook("Idempotency.Complete"); err != nil {
		return err
	}
	k := idemKey{key, userID}
	rec, ok := r.s.state.idempotency[k]
	if !ok || rec.Status != shared.IdempotencyStatusProcessing {
		return notFound("processing idempotency key")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultReservationID = &reservationID
	rec.ResultChannelID = &channelID
	r.s.state.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) Release(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) error {
	if err := r.s.hook("Idempotency.Release"); err != nil {
		return err
	}
	k := idemKey{key, userID}
	if rec, ok := r.s.state.idempotency[k]; ok && rec.Status == shared.IdempotencyStatusProcessing {
		delete(r.s.state.idempotency, k)
	}
	return nil
}

func (r idempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	if err := r.s.hook("Idempotency.DeleteExpired"); err != nil {
		return 0, err
	}
	var n int64
	for k, rec := range r.s.state.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(r.s.state.idempotency, k)
			n++
		}
	}
	return n, nil
}

type outboxRepo struct{ s *Store }

const (
	outboxPending = "pending"
	outboxSent    = "sent"
	outboxFailed  = "failed"
)

func (r outboxRepo) Insert(_ context.Context, _ sqlc.DBTX, aggregateID uuid.UUID, eventType string, payload []byte) error {
	if err := r.s.hook("Outbox.Insert"); err != nil {
		return err
	}
	r.s.state.outbox = append(r.s.state.outbox, OutboxRow{
		Event: shared.OutboxEvent{
			ID:          uuid.New(),
			AggregateID: aggregateID,
			EventType:   eventType,
			Payload:     payload,
			CreatedAt:   time.Now(),
		},
		Status: outboxPending,
	})
	return nil
}

func (r outboxRepo) ClaimPending(_ context.Context, _ sqlc.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	if err := r.s.hook("Outbox.ClaimPending"); err != nil {
		return nil, err
	}
	var out []shared.OutboxEvent
	for _, row := range r.s.state.outbox {
		if int32(len(out)) >= limit {
			break
		}
		if row.Status == outboxPending {
			out = append(out, row.Event)
		}
	}
	return out, nil
}

func (r outboxRepo) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := r.s.hook("Outbox.MarkSent"); err != nil {
		return err
	}
	return r.update(id, func(row *OutboxRow) {
		row.Event.Attempts++
		row.Status = outboxSent
		row.LastErr = ""
	})
}

func (r outboxRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, maxAttempts int32) error {
	if err := r.s.hook("Outbox.MarkFailed"); err != nil {
		return err
	}
	return r.update(id, func(row *OutboxRow) {
		row.Event.Attempts++
		row.LastErr = lastErr
		if int32(row.Event.Attempts) >= maxAttempts {
			row.Status = outboxFailed
		}
	})
}

func (r outboxRepo) update(id uuid.UUID, fn func(*OutboxRow)) error {
	for i := range r.s.state.outbox {
		if r.s.state.outbox[i].Event.ID == id {
			fn(&r.s.state.outbox[i])
			return nil
		}
	}
	return notFound("outbox event")
}

// reads implements shared.CommandReads. When lock is set it takes the store
// lock; inside a transaction the lock is already held.
type reads struct {
	s    *Store
	lock bool
}

func (r *reads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) ListingByID(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.ListingByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.state.listings[id]
	if !ok {
		return nil, notFound("listing")
	}
	return &shared.ListingSnapshot{
		ID:        row.id,
		StoreID:   row.storeID,
		SellerID:  r.s.state.stores[row.storeID].ownerID,
		Name:      row.name,
		Stock:     row.stock,
		ExpiresAt: row.expiresAt,
	}, nil
}

func (r *reads) StoreByID(_ context.Context, id uuid.UUID) (*store.Store, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.StoreByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.state.stores[id]
	if !ok {
		return nil, notFound("store")
	}
	return row.domain(), nil
}

func (r *reads) StoreByOwner(_ context.Context, ownerID uuid.UUID) (*store.Store, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.StoreByOwner"); err != nil {
		return nil, err
	}
	for _, row := range r.s.state.stores {
		if row.ownerID == ownerID {
			return row.domain(), nil
		}
	}
	return nil, notFound("store")
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.ReservationByID"); err != nil {
		return nil, err
	}
	for _, res := range r.s.state.reservations {
		if res.ID() == id {
			return res, nil
		}
	}
	return nil, notFound("reservation")
}

func (r *reads) ChannelByID(_ context.Context, id uuid.UUID) (*channel.Channel, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.ChannelByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.state.channels[id]
	if !ok {
		return nil, notFound("channel")
	}
	return row.domain(), nil
}

func (r *reads) ChannelByListingAndBuyer(_ context.Context, listingID, buyerID uuid.UUID) (*channel.Channel, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.ChannelByListingAndBuyer"); err != nil {
		return nil, err
	}
	return findChannel(r.s.state, listingID, buyerID)
}

func (r *reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	defer r.enter()()
	if err := r.s.hook("Reads.IdempotencyByKey"); err != nil {
		return nil, err
	}
	rec, ok := r.s.state.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}
