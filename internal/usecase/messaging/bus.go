// Package messaging delivers channel messages to live subscribers with
// gap-free ordering backed by the stored history.
package messaging

import (
	"context"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/queries"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	historyPageSize = 100
	outBuffer       = 64
)

type Bus struct {
	publisher commands.MessageCommands
	channels  queries.ChannelReadStore
	history   queries.MessageReadStore
	transport shared.MessageTransport
}

func NewBus(
	publisher commands.MessageCommands,
	channels queries.ChannelReadStore,
	history queries.MessageReadStore,
	transport shared.MessageTransport,
) *Bus {
	return &Bus{
		publisher: publisher,
		channels:  channels,
		history:   history,
		transport: transport,
	}
}

func (b *Bus) Publish(ctx context.Context, principal user.Principal, channelID uuid.UUID, body string) (*queries.MessageView, error) {
	return b.publisher.Publish(ctx, principal, channelID, body)
}

// Subscribe streams every message with seq > afterSeq exactly once and in order.
// The transport is attached before history is read so nothing committed in
// between is missed; duplicates from the overlap are dropped by seq.
func (b *Bus) Subscribe(ctx context.Context, principal user.Principal, channelID uuid.UUID, afterSeq int64) (*Subscription, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	if afterSeq < 0 {
		return nil, queries.ErrInvalidAfterSeq
	}

	ch, err := b.channels.FindByID(ctx, channelID)
	if err != nil {
		return nil, markRead(err)
	}
	if !ch.IsParticipant(principal.ID()) {
		return nil, queries.ErrChannelAccess
	}

	live, err := b.transport.Subscribe(ctx, channelID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to attach live transport"), errs.ErrUnavailable)
	}

	pctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		out:    make(chan *queries.MessageView, outBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
		live:   live,
	}
	p := &pump{
		channelID: channelID,
		last:      afterSeq,
		history:   b.history,
		live:      live,
		out:       sub.out,
	}
	go func() {
		defer close(sub.done)
		defer close(sub.out)
		defer sub.release()
		sub.setErr(p.run(pctx))
	}()
	return sub, nil
}
