package mediator

import (
	"reflect"

	"github.com/krew-solutions/ascetic-utils-go/asceticutils/signals"
)

// EventHandler handles an event of type E.
type EventHandler[S, E any] = func(session S, event E) error

type envelope[S any] struct {
	session S
	event   any
}

type subscriberEntry[S any] struct {
	key        uintptr
	connection *signals.Connection[envelope[S]]
}

// MediatorImp routes each event to the handlers subscribed to its static type.
// Every event type gets its own signals.Signal, so handlers of one type run in
// subscription order and the first error stops the rest.
type MediatorImp[S any] struct {
	signals     map[reflect.Type]*signals.Signal[envelope[S]]
	subscribers map[reflect.Type][]subscriberEntry[S]
}

func NewMediator[S any]() *MediatorImp[S] {
	return &MediatorImp[S]{
		signals:     make(map[reflect.Type]*signals.Signal[envelope[S]]),
		subscribers: make(map[reflect.Type][]subscriberEntry[S]),
	}
}

func (m *MediatorImp[S]) signalFor(eventType reflect.Type) *signals.Signal[envelope[S]] {
	s, ok := m.signals[eventType]
	if !ok {
		s = signals.NewSignal[envelope[S]]()
		m.signals[eventType] = s
	}
	return s
}

// Publish publishes an event to all subscribers of the event's type.
func Publish[S, E any](m *MediatorImp[S], session S, event E) error {
	s, ok := m.signals[reflect.TypeFor[E]()]
	if !ok {
		return nil
	}
	return s.Emit(envelope[S]{session: session, event: event})
}

// Subscribe subscribes a typed event handler for events of type E.
// The returned subscription can be disconnected and reconnected; it keeps its place in order.
func Subscribe[S, E any](m *MediatorImp[S], handler EventHandler[S, E]) signals.Subscription {
	eventType := reflect.TypeFor[E]()
	connection := m.signalFor(eventType).Connect(func(env envelope[S]) error {
		return handler(env.session, env.event.(E))
	})
	m.subscribers[eventType] = append(m.subscribers[eventType], subscriberEntry[S]{
		key:        reflect.ValueOf(handler).Pointer(),
		connection: connection,
	})
	return connection
}

// Unsubscribe disconnects the earliest connected subscription of handler.
func Unsubscribe[S, E any](m *MediatorImp[S], handler EventHandler[S, E]) {
	key := reflect.ValueOf(handler).Pointer()
	for _, e := range m.subscribers[reflect.TypeFor[E]()] {
		if e.key == key && e.connection.Connected() {
			e.connection.Disconnect()
			return
		}
	}
}
