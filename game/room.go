package game

import "context"

type clientEnvelope struct {
	msg  clientMessage
	from Client
}

// Room owns all mutable session state. Everything below the channels is
// touched only by the RoomActor goroutine.
type Room struct {
	registry *registry
	board    boardState

	// departed remembers clients the registry already unbound, so the late
	// half of a leave/disconnect pair is told apart from a connection that
	// never joined. Cleared whenever the room empties.
	departed map[Client]struct{}

	inbox       chan clientEnvelope
	disconnects chan Client

	tickerCreator PeriodicTickerChannelCreator
}

func NewRoom(tickerCreator PeriodicTickerChannelCreator) *Room {
	return &Room{
		registry:      newRegistry(),
		board:         newBoardState(),
		departed:      make(map[Client]struct{}),
		inbox:         make(chan clientEnvelope, 1024),
		disconnects:   make(chan Client, 64),
		tickerCreator: tickerCreator,
	}
}

// Forward queues an inbound envelope for the actor, giving up if the
// caller's context ends first.
func (r *Room) Forward(ctx context.Context, env clientEnvelope) {
	select {
	case r.inbox <- env:
	case <-ctx.Done():
	}
}

// ReportDisconnect tells the actor a transport-level channel closed. The
// actor treats a report for an already-removed client as a no-op, so the
// read pump can report unconditionally.
func (r *Room) ReportDisconnect(c Client) {
	r.disconnects <- c
}
