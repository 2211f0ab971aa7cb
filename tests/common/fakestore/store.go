//go:build unit || e2e

// Package fakestore is an in-memory shared.UnitOfWork. Transactions are
// serialized and roll back on error, which is enough to exercise command
// flows without Postgres.
package fakestore

import (
	"context"
	"slices"
	"sync"
	"time"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/message"
	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/domain/store"
	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type listingRow struct {
	id        uuid.UUID
	storeID   uuid.UUID
	name      string
	stock     int
	expiresAt time.Time
	listing   *listing.Listing
}

type storeRow struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	name       string
	address    string
	bizNumber  string
	verifiedAt *time.Time
	createdAt  time.Time
}

type channelRow struct {
	id        uuid.UUID
	listingID uuid.UUID
	buyerID   uuid.UUID
	sellerID  uuid.UUID
	lastSeq   int64
	createdAt time.Time
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type OutboxRow struct {
	Event   shared.OutboxEvent
	Status  string
	LastErr string
}

type state struct {
	stores       map[uuid.UUID]storeRow
	listings     map[uuid.UUID]listingRow
	reservations []*reservation.Reservation
	channels     map[uuid.UUID]channelRow
	messages     map[uuid.UUID][]*message.Message
	idempotency  map[idemKey]shared.IdempotencyRecord
	outbox       []OutboxRow
}

func newState() *state {
	return &state{
		stores:      map[uuid.UUID]storeRow{},
		listings:    map[uuid.UUID]listingRow{},
		channels:    map[uuid.UUID]channelRow{},
		messages:    map[uuid.UUID][]*message.Message{},
		idempotency: map[idemKey]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.stores {
		c.stores[k] = v
	}
	for k, v := range s.listings {
		c.listings[k] = v
	}
	c.reservations = slices.Clone(s.reservations)
	for k, v := range s.channels {
		c.channels[k] = v
	}
	for k, v := range s.messages {
		c.messages[k] = slices.Clone(v)
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	c.outbox = slices.Clone(s.outbox)
	return c
}

// Store is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state *state

	hookMu sync.Mutex
	fail   map[string]error
	calls  map[string]int
}

func New() *Store {
	return &Store{
		state: newState(),
		fail:  map[string]error{},
		calls: map[string]int{},
	}
}

// FailOn makes every call to op return err until cleared with a nil err.
// op is "<Repo>.<Method>", e.g. "Listings.Reserve".
func (s *Store) FailOn(op string, err error) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	if err == nil {
		delete(s.fail, op)
		return
	}
	s.fail[op] = err
}

// Calls reports how many times op was invoked.
func (s *Store) Calls(op string) int {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	return s.calls[op]
}

func (s *Store) hook(op string) error {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.calls[op]++
	return s.fail[op]
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(ctx, &fakeTx{s: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Listings() shared.ListingRepository         { return listingRepo{t.s} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *fakeTx) Channels() shared.ChannelRepository         { return channelRepo{t.s} }
func (t *fakeTx) Messages() shared.MessageRepository         { return messageRepo{t.s} }
func (t *fakeTx) Stores() shared.StoreRepository             { return storeRepo{t.s} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return idempotencyRepo{t.s} }
func (t *fakeTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.s} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &reads{s: t.s} }
func (t *fakeTx) DB() sqlc.DBTX                              { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func duplicate(what string) error {
	return infra.WrapRepoErr(what+" already exists", nil, infra.KindDuplicateKey)
}

// Seeding and inspection. These take the store lock and must not be called
// from inside a transaction.

func (s *Store) SeedStore(st *store.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.stores[st.ID()] = storeRowFrom(st.ID(), st)
}

// SeedListing inserts l owned by the store with storeID, which must be seeded first.
func (s *Store) SeedListing(l *listing.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.listings[l.ID()] = listingRowFrom(l)
}

func (s *Store) SeedChannel(ch *channel.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.channels[ch.ID()] = channelRowFrom(ch)
}

func (s *Store) SeedIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.idempotency[idemKey{rec.Key, rec.UserID}] = rec
}

func (s *Store) Stock(listingID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.listings[listingID].stock
}

func (s *Store) Listing(id uuid.UUID) (*listing.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.state.listings[id]
	return row.listing, ok
}

func (s *Store) StoreByID(id uuid.UUID) (*store.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.state.stores[id]
	if !ok {
		return nil, false
	}
	return row.domain(), true
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.reservations)
}

func (s *Store) Channels() []*channel.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*channel.Channel, 0, len(s.state.channels))
	for _, row := range s.state.channels {
		out = append(out, row.domain())
	}
	return out
}

func (s *Store) Messages(channelID uuid.UUID) []*message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.messages[channelID])
}

func (s *Store) Idempotency(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.state.idempotency[idemKey{key, userID}]
	return rec, ok
}

func (s *Store) Outbox() []OutboxRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.outbox)
}

func storeRowFrom(id uuid.UUID, st *store.Store) storeRow {
	return storeRow{
		id:         id,
		ownerID:    st.OwnerID(),
		name:       st.Name(),
		address:    st.Address(),
		bizNumber:  st.BizNumber(),
		verifiedAt: st.VerifiedAt(),
		createdAt:  st.CreatedAt(),
	}
}

func (r storeRow) domain() *store.Store {
	return store.ReconstructStore(r.id, r.ownerID, r.name, r.address, r.bizNumber, r.verifiedAt, r.createdAt)
}

func listingRowFrom(l *listing.Listing) listingRow {
	return listingRow{
		id:        l.ID(),
		storeID:   l.StoreID(),
		name:      l.Name(),
		stock:     l.Stock(),
		expiresAt: l.ExpiresAt(),
		listing:   l,
	}
}

func channelRowFrom(ch *channel.Channel) channelRow {
	return channelRow{
		id:        ch.ID(),
		listingID: ch.ListingID(),
		buyerID:   ch.BuyerID(),
		sellerID:  ch.SellerID(),
		lastSeq:   ch.LastSeq(),
		createdAt: ch.CreatedAt(),
	}
}

func (r channelRow) domain() *channel.Channel {
	return channel.ReconstructChannel(r.id, r.listingID, r.buyerID, r.sellerID, r.lastSeq, r.createdAt)
}
