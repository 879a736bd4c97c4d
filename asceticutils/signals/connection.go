package signals

import (
	"github.com/krew-solutions/ascetic-utils-go/asceticutils/option"
)

// Connection is returned by Signal.Connect. It shares the Signal's callback
// table, so it stays usable for as long as it is referenced.
//
// Copying a Connection value copies its id, state and cached observer but
// not the registration itself; disconnecting through two copies of the same
// registration is a programming error and panics.
type Connection[E any] struct {
	callbacks *callbackTable[E]
	id        uint64
	connected bool
	cached    option.Option[Observer[E]]
}

func (c *Connection[E]) ID() uint64 {
	return c.id
}

func (c *Connection[E]) Connected() bool {
	return c.connected
}

// Disconnect removes the observer and keeps it for Reconnect. No-op when already disconnected.
func (c *Connection[E]) Disconnect() {
	if !c.connected {
		return
	}
	c.cached = option.Some(c.callbacks.remove(c.id))
	c.connected = false
}

// Reconnect puts the observer back under its original id, i.e. at its
// original position in emission order. No-op when connected.
func (c *Connection[E]) Reconnect() {
	if c.connected {
		return
	}
	observer := c.cached.Take()
	c.callbacks.insert(c.id, observer.Unwrap())
	c.connected = true
}

func (c *Connection[E]) Dispose() {
	c.Disconnect()
}
