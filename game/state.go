package game

// boardState is the single shared room record: current host, ticket under
// estimation, vote tally and reveal flag. Mutators are pure state
// transitions; fan-out is the actor's job, which keeps these testable in
// isolation.
type boardState struct {
	hostID   string
	ticket   string
	revealed bool
	votes    map[string]float64
}

func newBoardState() boardState {
	return boardState{votes: make(map[string]float64)}
}

// setTicket atomically swaps the ticket and discards the previous round's
// votes; observers never see a new ticket with a stale tally.
func (b *boardState) setTicket(title string) {
	b.ticket = title
	b.revealed = false
	clear(b.votes)
}

func (b *boardState) reset() {
	b.revealed = false
	clear(b.votes)
}

func (b *boardState) setVote(id string, value float64) {
	b.votes[id] = value
}

func (b *boardState) removeVote(id string) {
	delete(b.votes, id)
}

// wipe returns the board to its initial value. Runs when the last
// participant departs so a long-lived process never carries a previous
// session's ticket or votes into the next one.
func (b *boardState) wipe() {
	b.hostID = ""
	b.ticket = ""
	b.revealed = false
	clear(b.votes)
}

// voteTally returns a copy safe to hand to the marshaller.
func (b *boardState) voteTally() map[string]float64 {
	tally := make(map[string]float64, len(b.votes))
	for id, v := range b.votes {
		tally[id] = v
	}
	return tally
}
