// Package signals is an in-process, synchronous publish/subscribe dispatcher.
//
// A Signal hands out a Connection for every observer it registers. The
// Connection can take its observer out of the Signal and put it back later
// under the same id, so it keeps its original place in emission order.
//
// Nothing here is safe for concurrent use.
package signals

import (
	"github.com/krew-solutions/ascetic-utils-go/asceticutils/disposable"
)

// Observer receives one emitted event. Signals without arguments use struct{}.
type Observer[E any] func(E) error

type Emitter[E any] interface {
	Emit(event E) error
}

// Subscription is the handle side of a registration.
type Subscription interface {
	disposable.Disposable
	Disconnect()
	Reconnect()
	Connected() bool
}
