package signals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	payload int
}

var _ Subscription = (*Connection[sampleEvent])(nil)

var _ Emitter[sampleEvent] = (*Signal[sampleEvent])(nil)

// recorder returns an observer appending name to calls on every event.
func recorder(calls *[]string, name string) Observer[sampleEvent] {
	return func(e sampleEvent) error {
		*calls = append(*calls, name)
		return nil
	}
}

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
	}()
	fn()
	return nil
}

func TestSignal_ConnectAndEmit(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var got sampleEvent
	s.Connect(func(e sampleEvent) error { got = e; return nil })
	err := s.Emit(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, sampleEvent{1}, got)
}

func TestSignal_EmitPreservesConnectOrder(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		s.Connect(recorder(&calls, name))
	}
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, calls)
}

func TestSignal_EmitNoObservers(t *testing.T) {
	s := NewSignal[sampleEvent]()
	assert.NoError(t, s.Emit(sampleEvent{1}))
	assert.Equal(t, 0, s.Len())
}

func TestSignal_ZeroValueIsUsable(t *testing.T) {
	var s Signal[sampleEvent]
	var calls []string
	c := s.Connect(recorder(&calls, "a"))
	require.NoError(t, s.Emit(sampleEvent{}))
	c.Disconnect()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a"}, calls)
}

func TestSignal_WithoutArguments(t *testing.T) {
	s := NewSignal[struct{}]()
	count := 0
	s.Connect(func(struct{}) error { count++; return nil })
	require.NoError(t, s.Emit(struct{}{}))
	require.NoError(t, s.Emit(struct{}{}))
	assert.Equal(t, 2, count)
}

func TestSignal_ConnectNilPanics(t *testing.T) {
	s := NewSignal[sampleEvent]()
	err := recoverError(t, func() { s.Connect(nil) })
	assert.True(t, errors.Is(err, ErrNilObserver))
}

func TestSignal_IdsIncreaseAndAreNeverReused(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	a := s.Connect(recorder(&calls, "a"))
	b := s.Connect(recorder(&calls, "b"))
	assert.Equal(t, uint64(0), a.ID())
	assert.Equal(t, uint64(1), b.ID())

	b.Disconnect()
	c := s.Connect(recorder(&calls, "c"))
	b.Reconnect()
	b.Disconnect()
	b.Reconnect()
	d := s.Connect(recorder(&calls, "d"))

	assert.Equal(t, uint64(1), b.ID())
	assert.Equal(t, uint64(2), c.ID())
	assert.Equal(t, uint64(3), d.ID())
}

func TestSignal_ErrorStopsEmission(t *testing.T) {
	s := NewSignal[sampleEvent]()
	expectedErr := errors.New("fail")
	var calls []string
	s.Connect(recorder(&calls, "a"))
	s.Connect(func(e sampleEvent) error { calls = append(calls, "b"); return expectedErr })
	s.Connect(recorder(&calls, "c"))

	err := s.Emit(sampleEvent{1})

	assert.Same(t, expectedErr, err)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestSignal_PanicPropagates(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	s.Connect(func(e sampleEvent) error { panic("boom") })
	s.Connect(recorder(&calls, "b"))

	assert.PanicsWithValue(t, "boom", func() { _ = s.Emit(sampleEvent{}) })
	assert.Empty(t, calls)
	assert.Equal(t, 2, s.Len())
}

func TestConnection_DisconnectSuppresses(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	s.Connect(recorder(&calls, "a"))
	b := s.Connect(recorder(&calls, "b"))
	s.Connect(recorder(&calls, "c"))

	b.Disconnect()
	require.NoError(t, s.Emit(sampleEvent{}))

	assert.Equal(t, []string{"a", "c"}, calls)
	assert.False(t, b.Connected())
	assert.Equal(t, 2, s.Len())
}

func TestConnection_ReconnectRestoresOriginalPosition(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	a := s.Connect(recorder(&calls, "a"))
	s.Connect(recorder(&calls, "b"))
	s.Connect(recorder(&calls, "c"))

	a.Disconnect()
	a.Reconnect()
	require.NoError(t, s.Emit(sampleEvent{}))

	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.True(t, a.Connected())
}

func TestConnection_DisconnectTwiceIsIdempotent(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	s.Connect(recorder(&calls, "a"))
	b := s.Connect(recorder(&calls, "b"))

	b.Disconnect()
	b.Disconnect()
	require.NoError(t, s.Emit(sampleEvent{}))

	assert.Equal(t, []string{"a"}, calls)
	assert.Equal(t, 1, s.Len())
}

func TestConnection_ReconnectTwiceIsIdempotent(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	a := s.Connect(recorder(&calls, "a"))
	s.Connect(recorder(&calls, "b"))

	a.Disconnect()
	a.Reconnect()
	a.Reconnect()
	require.NoError(t, s.Emit(sampleEvent{}))

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, 2, s.Len())
}

func TestConnection_ReconnectWhileConnectedIsNoop(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	a := s.Connect(recorder(&calls, "a"))
	a.Reconnect()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a"}, calls)
}

func TestConnection_DisposeDisconnects(t *testing.T) {
	s := NewSignal[sampleEvent]()
	called := false
	c := s.Connect(func(e sampleEvent) error { called = true; return nil })
	c.Dispose()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.False(t, called)

	c.Reconnect()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.True(t, called)
}

func TestConnection_ReconnectInterleavesWithLaterConnections(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	s.Connect(recorder(&calls, "A"))
	b := s.Connect(recorder(&calls, "B"))
	s.Connect(recorder(&calls, "C"))

	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"A", "B", "C"}, calls)

	calls = nil
	b.Disconnect()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"A", "C"}, calls)

	d := s.Connect(recorder(&calls, "D"))
	assert.Equal(t, uint64(3), d.ID())

	calls = nil
	b.Reconnect()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"A", "B", "C", "D"}, calls)
}

func TestConnection_OutlivesDroppedSignal(t *testing.T) {
	var calls []string
	c := func() *Connection[sampleEvent] {
		s := NewSignal[sampleEvent]()
		return s.Connect(recorder(&calls, "a"))
	}()
	c.Disconnect()
	c.Reconnect()
	assert.True(t, c.Connected())
}

func TestConnection_CopySharesRegistration(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	c := s.Connect(recorder(&calls, "a"))
	copied := *c

	assert.Equal(t, c.ID(), copied.ID())
	assert.True(t, copied.Connected())
	assert.Equal(t, 1, s.Len())

	copied.Disconnect()
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Empty(t, calls)

	// the original still believes it is connected
	assert.True(t, c.Connected())
	err := recoverError(t, c.Disconnect)
	assert.True(t, errors.Is(err, ErrUnknownSubscriber))
}

func TestConnection_CopiedReconnectOntoLiveIdPanics(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	c := s.Connect(recorder(&calls, "a"))
	c.Disconnect()
	copied := *c
	c.Reconnect()

	err := recoverError(t, copied.Reconnect)
	assert.True(t, errors.Is(err, ErrDuplicateSubscriber))

	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a"}, calls)
}

func TestSignal_SelfDisconnectDuringEmit(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	var self *Connection[sampleEvent]
	s.Connect(recorder(&calls, "a"))
	self = s.Connect(func(e sampleEvent) error {
		calls = append(calls, "b")
		self.Disconnect()
		return nil
	})
	s.Connect(recorder(&calls, "c"))

	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	calls = nil
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a", "c"}, calls)
}

func TestSignal_DisconnectLaterObserverDuringEmit(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	var c *Connection[sampleEvent]
	s.Connect(func(e sampleEvent) error {
		calls = append(calls, "a")
		c.Disconnect()
		return nil
	})
	c = s.Connect(recorder(&calls, "c"))

	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a", "c"}, calls)

	calls = nil
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a"}, calls)
}

func TestSignal_ConnectDuringEmitAppliesToNextEmission(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	connected := false
	s.Connect(func(e sampleEvent) error {
		calls = append(calls, "a")
		if !connected {
			connected = true
			s.Connect(recorder(&calls, "late"))
		}
		return nil
	})

	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a"}, calls)

	calls = nil
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a", "late"}, calls)
}

func TestSignal_ReconnectDuringEmitAppliesToNextEmission(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []string
	var b *Connection[sampleEvent]
	s.Connect(func(e sampleEvent) error {
		calls = append(calls, "a")
		b.Reconnect()
		return nil
	})
	b = s.Connect(recorder(&calls, "b"))
	b.Disconnect()

	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a"}, calls)

	calls = nil
	require.NoError(t, s.Emit(sampleEvent{}))
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestSignal_NestedEmit(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var payloads []int
	s.Connect(func(e sampleEvent) error {
		payloads = append(payloads, e.payload)
		if e.payload > 0 {
			return s.Emit(sampleEvent{e.payload - 1})
		}
		return nil
	})
	require.NoError(t, s.Emit(sampleEvent{2}))
	assert.Equal(t, []int{2, 1, 0}, payloads)
}
