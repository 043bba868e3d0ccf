package game

import "time"

// NetworkSession is the transport-level duplex channel a client talks
// through. The gorilla adapter in websocket.go is the production
// implementation; tests substitute a mock.
type NetworkSession interface {
	Close(reason string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

// Client is a connected participant's send side as seen by the room actor.
type Client interface {
	Send(data []byte)
	Ping()
	CancelAndRelease()
}

type PeriodicTickerChannelCreator interface {
	Create(duration time.Duration) <-chan time.Time
}
