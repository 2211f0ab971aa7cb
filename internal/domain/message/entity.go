package message

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyBody   = errors.New("message body cannot be empty")
	ErrBodyTooLong = errors.New("message body is too long (max 2000 characters)")
	ErrInvalidSeq  = errors.New("message sequence must be positive")
)

const MaxBodyLength = 2000

type Body struct {
	text string
}

func NewBody(s string) (Body, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Body{}, ErrEmptyBody
	}
	if utf8.RuneCountInString(t) > MaxBodyLength {
		return Body{}, ErrBodyTooLong
	}
	return Body{text: t}, nil
}

func (b Body) String() string { return b.text }

// Message is immutable once sequenced. Seq is 1-based and gap-free per channel.
type Message struct {
	id        uuid.UUID
	channelID uuid.UUID
	seq       int64
	senderID  uuid.UUID
	body      Body
	createdAt time.Time
}

func NewMessage(channelID uuid.UUID, seq int64, senderID uuid.UUID, body Body, now time.Time) (*Message, error) {
	if seq <= 0 {
		return nil, ErrInvalidSeq
	}
	return &Message{
		id:        uuid.New(),
		channelID: channelID,
		seq:       seq,
		senderID:  senderID,
		body:      body,
		createdAt: now,
	}, nil
}

func ReconstructMessage(id, channelID uuid.UUID, seq int64, senderID uuid.UUID, body string, createdAt time.Time) *Message {
	return &Message{
		id:        id,
		channelID: channelID,
		seq:       seq,
		senderID:  senderID,
		body:      Body{text: body},
		createdAt: createdAt,
	}
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) ChannelID() uuid.UUID { return m.channelID }
func (m *Message) Seq() int64           { return m.seq }
func (m *Message) SenderID() uuid.UUID  { return m.senderID }
func (m *Message) Body() Body           { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
