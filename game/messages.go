package game

import "encoding/json"

// Wire-level type discriminators. Most are used in both directions; roster,
// joined and presence are server-to-client only.
const (
	TypeJoin     = "join"
	TypeRoster   = "roster"
	TypeJoined   = "joined"
	TypePresence = "presence"
	TypeCursor   = "cursor"
	TypeChat     = "chat"
	TypeLeave    = "leave"
	TypeVote     = "vote"
	TypeTicket   = "ticket"
	TypeReveal   = "reveal"
	TypeReset    = "reset"
	TypeHost     = "host"
)

// clientMessage is the inbound envelope. One struct covers every event type;
// the router reads only the fields the type defines and ignores the rest.
type clientMessage struct {
	Type     string  `json:"type"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	Ts       int64   `json:"ts"`
	Value    float64 `json:"value"`
	Title    string  `json:"title"`
	TargetID string  `json:"targetId"`
}

type participantInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Outbound message constructors. The shapes below cannot fail to marshal, so
// the error is discarded.

func MakeRosterMessage(participants []participantInfo, hostID, ticket string, revealed bool, votes map[string]float64) []byte {
	if participants == nil {
		participants = []participantInfo{}
	}
	if votes == nil {
		votes = map[string]float64{}
	}
	data, _ := json.Marshal(struct {
		Type         string             `json:"type"`
		Participants []participantInfo  `json:"participants"`
		HostID       string             `json:"hostId"`
		Ticket       string             `json:"ticket"`
		Revealed     bool               `json:"revealed"`
		Votes        map[string]float64 `json:"votes"`
	}{TypeRoster, participants, hostID, ticket, revealed, votes})
	return data
}

func MakeJoinedMessage(id string) []byte {
	data, _ := json.Marshal(struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	}{TypeJoined, id})
	return data
}

func MakePresenceMessage(id, name string) []byte {
	data, _ := json.Marshal(struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	}{TypePresence, id, name})
	return data
}

func MakeCursorMessage(id, name string, x, y float64) []byte {
	data, _ := json.Marshal(struct {
		Type string  `json:"type"`
		ID   string  `json:"id"`
		Name string  `json:"name"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}{TypeCursor, id, name, x, y})
	return data
}

func MakeChatMessage(id, name, text string, ts int64) []byte {
	data, _ := json.Marshal(struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
		Text string `json:"text"`
		Ts   int64  `json:"ts"`
	}{TypeChat, id, name, text, ts})
	return data
}

func MakeLeaveMessage(id string) []byte {
	data, _ := json.Marshal(struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	}{TypeLeave, id})
	return data
}

func MakeVoteMessage(id, name string, value float64) []byte {
	data, _ := json.Marshal(struct {
		Type  string  `json:"type"`
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}{TypeVote, id, name, value})
	return data
}

func MakeTicketMessage(title string) []byte {
	data, _ := json.Marshal(struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	}{TypeTicket, title})
	return data
}

func MakeRevealMessage() []byte {
	data, _ := json.Marshal(struct {
		Type string `json:"type"`
	}{TypeReveal})
	return data
}

func MakeResetMessage() []byte {
	data, _ := json.Marshal(struct {
		Type string `json:"type"`
	}{TypeReset})
	return data
}

// MakeHostMessage serializes an empty host id as null, which is what clients
// see when the last participant departs mid-broadcast.
func MakeHostMessage(hostID string) []byte {
	msg := struct {
		Type   string  `json:"type"`
		HostID *string `json:"hostId"`
	}{Type: TypeHost}
	if hostID != "" {
		msg.HostID = &hostID
	}
	data, _ := json.Marshal(msg)
	return data
}
