package game

import (
	"context"
	"time"
)

const pingInterval = time.Second * 30

type dataSendTask struct {
	to   Client
	data []byte
}

// RoomActor serializes every state mutation: events are handled one at a
// time and each event's fan-out is fully issued before the next event is
// accepted, so no observer ever sees a partial transition.
func (r *Room) RoomActor(ctx context.Context, started chan struct{}) {
	pingTicker := r.tickerCreator.Create(pingInterval)
	close(started)

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-r.inbox:
			r.deliver(r.dispatch(env))
		case c := <-r.disconnects:
			r.deliver(r.handleDisconnect(c))
		case <-pingTicker:
			for _, c := range r.registry.clients() {
				c.Ping()
			}
		}
	}
}

func (r *Room) dispatch(env clientEnvelope) []dataSendTask {
	switch env.msg.Type {
	case TypeJoin:
		return r.handleJoin(env.from, env.msg)
	case TypeCursor:
		return r.handleCursor(env.from, env.msg)
	case TypeChat:
		return r.handleChat(env.msg)
	case TypeLeave:
		return r.handleLeave(env.from, env.msg)
	case TypeVote:
		return r.handleVote(env.msg)
	case TypeTicket:
		return r.handleTicket(env.msg)
	case TypeReveal:
		return r.handleReveal(env.msg)
	case TypeReset:
		return r.handleReset(env.msg)
	case TypeHost:
		return r.handleHostTransfer(env.msg)
	}
	// unknown type: dropped, the sender is not told
	return nil
}

func (r *Room) deliver(tasks []dataSendTask) {
	for _, t := range tasks {
		t.to.Send(t.data)
	}
}

func (r *Room) broadcastAll(data []byte) []dataSendTask {
	tasks := make([]dataSendTask, 0, r.registry.size())
	for _, c := range r.registry.clients() {
		tasks = append(tasks, dataSendTask{to: c, data: data})
	}
	return tasks
}

func (r *Room) broadcastExcept(sender Client, data []byte) []dataSendTask {
	tasks := make([]dataSendTask, 0, r.registry.size())
	for _, c := range r.registry.clients() {
		if c == sender {
			continue
		}
		tasks = append(tasks, dataSendTask{to: c, data: data})
	}
	return tasks
}

func (r *Room) rosterInfo() []participantInfo {
	ps := r.registry.participants()
	infos := make([]participantInfo, 0, len(ps))
	for _, p := range ps {
		infos = append(infos, participantInfo{ID: p.id, Name: p.name})
	}
	return infos
}

func (r *Room) handleJoin(from Client, msg clientMessage) []dataSendTask {
	r.registry.bind(from, participant{id: msg.ID, name: msg.Name})

	// The first joiner of an empty room becomes host. The stale check also
	// heals a transfer that targeted an id which never showed up.
	if r.board.hostID == "" || !r.registry.contains(r.board.hostID) {
		r.board.hostID = msg.ID
	}

	tasks := []dataSendTask{
		{to: from, data: MakeRosterMessage(r.rosterInfo(), r.board.hostID, r.board.ticket, r.board.revealed, r.board.voteTally())},
		{to: from, data: MakeJoinedMessage(msg.ID)},
	}
	return append(tasks, r.broadcastExcept(from, MakePresenceMessage(msg.ID, msg.Name))...)
}

func (r *Room) handleCursor(from Client, msg clientMessage) []dataSendTask {
	if _, ok := r.registry.lookup(from); !ok {
		return nil
	}
	return r.broadcastExcept(from, MakeCursorMessage(msg.ID, msg.Name, msg.X, msg.Y))
}

func (r *Room) handleChat(msg clientMessage) []dataSendTask {
	// chat is relayed, never persisted
	return r.broadcastAll(MakeChatMessage(msg.ID, msg.Name, msg.Text, msg.Ts))
}

func (r *Room) handleLeave(from Client, msg clientMessage) []dataSendTask {
	tasks := r.removeClient(from, msg.ID)
	from.CancelAndRelease()
	return tasks
}

func (r *Room) handleDisconnect(c Client) []dataSendTask {
	tasks := r.removeClient(c, "")
	c.CancelAndRelease()
	return tasks
}

// removeClient is the single departure path shared by explicit leave and
// transport-detected close; whichever arrives second for the same client is
// a no-op. The claimed-id fallback is honored only for connections that were
// never bound, so a leave still queued when the transport close wins the
// race cannot re-announce the departure.
func (r *Room) removeClient(c Client, claimedID string) []dataSendTask {
	var tasks []dataSendTask

	p, ok := r.registry.unbind(c)
	id := p.id
	if ok {
		r.departed[c] = struct{}{}
	} else {
		if _, gone := r.departed[c]; gone {
			delete(r.departed, c)
			return nil
		}
		id = claimedID
	}

	if id != "" {
		r.board.removeVote(id)
		tasks = r.broadcastExcept(c, MakeLeaveMessage(id))

		if r.board.hostID == id {
			next := ""
			if remaining := r.registry.participants(); len(remaining) > 0 {
				next = remaining[0].id
			}
			r.board.hostID = next
			tasks = append(tasks, r.broadcastAll(MakeHostMessage(next))...)
		}
	}

	if r.registry.size() == 0 {
		r.board.wipe()
		clear(r.departed)
	}
	return tasks
}

// fromHost authorizes host-only events. An empty claimed id never matches,
// even against an empty room whose host slot is vacant.
func (r *Room) fromHost(claimedID string) bool {
	return claimedID != "" && claimedID == r.board.hostID
}

func (r *Room) handleVote(msg clientMessage) []dataSendTask {
	// values are relayed as-is; constraining the allowed point scale is the
	// client's concern
	r.board.setVote(msg.ID, msg.Value)
	return r.broadcastAll(MakeVoteMessage(msg.ID, msg.Name, msg.Value))
}

func (r *Room) handleTicket(msg clientMessage) []dataSendTask {
	if !r.fromHost(msg.ID) {
		return nil
	}
	r.board.setTicket(msg.Title)
	return r.broadcastAll(MakeTicketMessage(msg.Title))
}

func (r *Room) handleReveal(msg clientMessage) []dataSendTask {
	if !r.fromHost(msg.ID) {
		return nil
	}
	r.board.revealed = true
	return r.broadcastAll(MakeRevealMessage())
}

func (r *Room) handleReset(msg clientMessage) []dataSendTask {
	if !r.fromHost(msg.ID) {
		return nil
	}
	r.board.reset()
	return r.broadcastAll(MakeResetMessage())
}

func (r *Room) handleHostTransfer(msg clientMessage) []dataSendTask {
	if !r.fromHost(msg.ID) || msg.TargetID == "" {
		return nil
	}
	// The target is not checked against the registry; a transfer to an id
	// that never joins is healed by the stale-host check on the next join.
	r.board.hostID = msg.TargetID
	return r.broadcastAll(MakeHostMessage(msg.TargetID))
}
