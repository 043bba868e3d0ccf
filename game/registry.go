package game

// participant is the identity a join message binds to a connection. Ids are
// client-generated and opaque; names are display-only and not unique.
type participant struct {
	id   string
	name string
}

// registry tracks which client carries which participant. Enumeration is
// join order, which is also the re-election order: when the host departs,
// the longest-connected remaining participant takes over.
type registry struct {
	order    []Client
	byClient map[Client]participant
}

func newRegistry() *registry {
	return &registry{byClient: make(map[Client]participant)}
}

func (r *registry) bind(c Client, p participant) {
	if _, ok := r.byClient[c]; !ok {
		r.order = append(r.order, c)
	}
	r.byClient[c] = p
}

func (r *registry) unbind(c Client) (participant, bool) {
	p, ok := r.byClient[c]
	if !ok {
		return participant{}, false
	}
	delete(r.byClient, c)
	for i, bound := range r.order {
		if bound == c {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p, true
}

func (r *registry) lookup(c Client) (participant, bool) {
	p, ok := r.byClient[c]
	return p, ok
}

func (r *registry) size() int {
	return len(r.order)
}

// participants returns a snapshot in join order.
func (r *registry) participants() []participant {
	ps := make([]participant, 0, len(r.order))
	for _, c := range r.order {
		ps = append(ps, r.byClient[c])
	}
	return ps
}

// clients returns a snapshot in join order.
func (r *registry) clients() []Client {
	return append([]Client(nil), r.order...)
}

// contains reports whether any bound participant carries the given id.
func (r *registry) contains(id string) bool {
	for _, p := range r.byClient {
		if p.id == id {
			return true
		}
	}
	return false
}
