package signals

import (
	"github.com/hashicorp/go-multierror"
)

// CompositeSignal fans one observer out to several Signals.
type CompositeSignal[E any] struct {
	delegates []*Signal[E]
}

func NewCompositeSignal[E any](delegates ...*Signal[E]) *CompositeSignal[E] {
	return &CompositeSignal[E]{delegates: delegates}
}

func (s *CompositeSignal[E]) Connect(observer Observer[E]) *CompositeConnection[E] {
	connections := make([]*Connection[E], 0, len(s.delegates))
	for _, delegate := range s.delegates {
		connections = append(connections, delegate.Connect(observer))
	}
	return &CompositeConnection[E]{connections: connections, connected: true}
}

// Emit emits on every delegate, even after one of them failed.
// Delegate errors come back together as a *multierror.Error.
func (s *CompositeSignal[E]) Emit(event E) error {
	var result error
	for _, delegate := range s.delegates {
		if err := delegate.Emit(event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

type CompositeConnection[E any] struct {
	connections []*Connection[E]
	connected   bool
}

func (c *CompositeConnection[E]) Connected() bool {
	return c.connected
}

func (c *CompositeConnection[E]) Disconnect() {
	if !c.connected {
		return
	}
	for _, conn := range c.connections {
		conn.Disconnect()
	}
	c.connected = false
}

func (c *CompositeConnection[E]) Reconnect() {
	if c.connected {
		return
	}
	for _, conn := range c.connections {
		conn.Reconnect()
	}
	c.connected = true
}

func (c *CompositeConnection[E]) Dispose() {
	c.Disconnect()
}
