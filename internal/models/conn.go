// internal/models/conn.go
package models

import (
	"github.com/sirupsen/logrus"
)

// ServerMessage is the envelope for every server-to-client event.
type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Conn is a single client's outbound queue. The websocket write pump in the
// handlers package drains Out; everything else only ever calls Write.
type Conn struct {
	Out    chan ServerMessage
	Cancel func()
}

// NewConn builds a connection wrapper with a buffered outbound channel.
func NewConn(cancel func()) *Conn {
	return &Conn{
		Out:    make(chan ServerMessage, 16),
		Cancel: cancel,
	}
}

// Write pushes an event onto the outbound channel without blocking. A full
// or closed channel drops the message; the read loop will notice a dead
// connection on its own.
func (c *Conn) Write(event string, data any) {
	select {
	case c.Out <- ServerMessage{Event: event, Data: data}:
	default:
		logrus.WithField("event", event).Warn("outbound channel full or closed, dropping message")
	}
}

// WriteError sends a protocol error event to this client only.
func (c *Conn) WriteError(msg string) {
	c.Write("error", map[string]string{"message": msg})
}
