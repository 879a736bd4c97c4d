package signals

import (
	"github.com/pkg/errors"
)

var (
	ErrNilObserver = errors.New("signals: nil observer")

	// ErrUnknownSubscriber means a connected handle found no entry for its id.
	// Only reachable by copying Connection values.
	ErrUnknownSubscriber = errors.New("signals: unknown subscriber")

	// ErrDuplicateSubscriber means a handle tried to reconnect onto an id that is still live.
	ErrDuplicateSubscriber = errors.New("signals: subscriber already connected")
)
