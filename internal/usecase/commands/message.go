package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"closeout-market/internal/domain/message"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/queries"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageCommands interface {
	// Publish sequences and stores the message, then pushes it live. The stored
	// history is authoritative; a live push failure is logged only.
	Publish(ctx context.Context, principal user.Principal, channelID uuid.UUID, body string) (*queries.MessageView, error)
}

type messageCommandsImpl struct {
	uow       shared.UnitOfWork
	transport shared.MessageTransport
	clock     clock.Clock
}

func NewMessageCommands(uow shared.UnitOfWork, transport shared.MessageTransport, clk clock.Clock) MessageCommands {
	return &messageCommandsImpl{uow: uow, transport: transport, clock: clk}
}

func (m *messageCommandsImpl) Publish(
	ctx context.Context,
	principal user.Principal,
	channelID uuid.UUID,
	body string,
) (*queries.MessageView, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	b, err := message.NewBody(body)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var stored *message.Message
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock on the channel is held until commit, so seq order equals commit order.
		ch, err := tx.Channels().AdvanceSeq(ctx, tx.DB(), channelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return err
		}
		if !ch.IsParticipant(principal.ID()) {
			return ErrNotChannelMember
		}

		msg, err := message.NewMessage(ch.ID(), ch.LastSeq(), principal.ID(), b, m.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		stored, err = tx.Messages().Insert(ctx, tx.DB(), msg)
		return err
	})
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	view := queries.MessageViewFrom(stored)
	m.pushLive(ctx, view)
	return view, nil
}

func (m *messageCommandsImpl) pushLive(ctx context.Context, view *queries.MessageView) {
	if m.transport == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		slog.Error("failed to encode message for live delivery", sl.Err(err))
		return
	}
	if err := m.transport.Publish(context.WithoutCancel(ctx), view.ChannelID, payload); err != nil {
		slog.Warn("live message delivery failed",
			slog.String("channel_id", view.ChannelID.String()),
			slog.Int64("seq", view.Seq),
			sl.Err(err))
	}
}
