package game

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	outboxSize = 256

	// chat is the only client-paced event worth throttling; cursor traffic
	// is high-frequency by design and votes are one-shot
	chatRate  = rate.Limit(1)
	chatBurst = 5
)

type client struct {
	connID      string
	socket      NetworkSession
	room        *Room
	outbox      chan []byte
	pingChan    chan struct{}
	chatLimiter *rate.Limiter
	ctx         context.Context
	cancelCtx   context.CancelFunc
}

func NewClient(connID string, socket NetworkSession, room *Room) *client {
	ctx, cancel := context.WithCancel(context.Background())
	return &client{
		connID:      connID,
		socket:      socket,
		room:        room,
		outbox:      make(chan []byte, outboxSize),
		pingChan:    make(chan struct{}, 1),
		chatLimiter: rate.NewLimiter(chatRate, chatBurst),
		ctx:         ctx,
		cancelCtx:   cancel,
	}
}

// Send queues data without blocking. A full outbox drops the frame rather
// than stalling fan-out to the rest of the room; a reconnecting client gets
// a full snapshot anyway.
func (c *client) Send(data []byte) {
	select {
	case c.outbox <- data:
	default:
	}
}

// Ping nudges the write pump to emit a transport-level ping. Collapses when
// one is already pending.
func (c *client) Ping() {
	select {
	case c.pingChan <- struct{}{}:
	default:
	}
}

// CancelAndRelease stops both pumps. The write pump owns the socket close so
// the close frame never races a concurrent Write. Safe to call more than
// once.
func (c *client) CancelAndRelease() {
	c.cancelCtx()
}
