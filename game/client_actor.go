package game

import (
	"encoding/json"

	"github.com/yashsinha880/Pointify/shared/logger"
)

// ReadPump decodes inbound frames and forwards them to the room actor. It
// owns disconnect detection: whenever the socket errors the pump reports the
// client and exits, and the actor removes whatever identity was bound.
func (c *client) ReadPump() {
	defer c.room.ReportDisconnect(c)

	for {
		data, err := c.socket.Read()
		if err != nil {
			logger.Debugf("connection %s closed: %v", c.connID, err)
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// malformed frames are dropped, the connection stays open
			continue
		}

		if msg.Type == TypeChat && !c.chatLimiter.Allow() {
			continue
		}

		select {
		case c.room.inbox <- clientEnvelope{msg: msg, from: c}:
		case <-c.ctx.Done():
			return
		}
	}
}

// WritePump is the only goroutine writing to the socket, including the
// close frame on shutdown; closing here also unblocks a ReadPump parked in
// Read, which then reports the disconnect.
func (c *client) WritePump() {
	defer c.socket.Close("")

	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.outbox:
			if err := c.socket.Write(data); err != nil {
				c.cancelCtx()
				return
			}
		case <-c.pingChan:
			if err := c.socket.Ping(); err != nil {
				c.cancelCtx()
				return
			}
		}
	}
}
