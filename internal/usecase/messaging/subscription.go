package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/queries"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// Subscription is the handle returned by Bus.Subscribe. C is closed when the
// subscription ends; Err then reports why, nil meaning a plain cancel.
type Subscription struct {
	out    chan *queries.MessageView
	done   chan struct{}
	cancel context.CancelFunc
	live   shared.TransportSubscription
	once   sync.Once

	mu  sync.Mutex
	err error
}

func (s *Subscription) C() <-chan *queries.MessageView {
	return s.out
}

// Cancel releases the transport subscription and waits for the pump to exit.
// Safe to call more than once and from any goroutine.
func (s *Subscription) Cancel() {
	s.cancel()
	s.release()
	<-s.done
}

func (s *Subscription) release() {
	s.once.Do(func() {
		if err := s.live.Close(); err != nil {
			slog.Warn("failed to close live subscription", sl.Err(err))
		}
	})
}

func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

type pump struct {
	channelID uuid.UUID
	last      int64
	history   queries.MessageReadStore
	live      shared.TransportSubscription
	out       chan<- *queries.MessageView
}

// run ends with nil when ctx is done, which covers both Cancel and the
// caller's context ending.
func (p *pump) run(ctx context.Context) error {
	if err := p.backfill(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-p.live.Messages():
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errs.Mark(errs.New("live transport closed"), errs.ErrUnavailable)
			}
			var msg queries.MessageView
			if err := json.Unmarshal(raw, &msg); err != nil {
				slog.Warn("dropping undecodable live message",
					slog.String("channel_id", p.channelID.String()),
					sl.Err(err))
				continue
			}
			if msg.ChannelID != p.channelID || msg.Seq <= p.last {
				continue
			}
			if msg.Seq > p.last+1 {
				// Live delivery skipped ahead; history fills the hole and covers msg too.
				if err := p.backfill(ctx); err != nil {
					return err
				}
				continue
			}
			if !p.emit(ctx, &msg) {
				return nil
			}
		}
	}
}

// backfill pages stored history until it is exhausted.
func (p *pump) backfill(ctx context.Context) error {
	for {
		page, err := p.history.FindAfter(ctx, p.channelID, p.last, historyPageSize)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return markRead(err)
		}
		for _, m := range page {
			if m.Seq <= p.last {
				continue
			}
			if !p.emit(ctx, m) {
				return nil
			}
		}
		if len(page) < historyPageSize {
			return nil
		}
	}
}

func (p *pump) emit(ctx context.Context, m *queries.MessageView) bool {
	select {
	case p.out <- m:
		p.last = m.Seq
		return true
	case <-ctx.Done():
		return false
	}
}

func markRead(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsUnavailable(err):
		return errs.Mark(err, errs.ErrUnavailable)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
