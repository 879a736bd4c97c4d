package signals

// Signal owns the callback table and the id counter.
// The zero value is ready to use.
type Signal[E any] struct {
	callbacks *callbackTable[E]
	nextID    uint64
}

func NewSignal[E any]() *Signal[E] {
	return &Signal[E]{callbacks: &callbackTable[E]{}}
}

func (s *Signal[E]) table() *callbackTable[E] {
	if s.callbacks == nil {
		s.callbacks = &callbackTable[E]{}
	}
	return s.callbacks
}

// Connect registers observer under the next id. Ids are never reused.
func (s *Signal[E]) Connect(observer Observer[E]) *Connection[E] {
	if observer == nil {
		panic(ErrNilObserver)
	}
	id := s.nextID
	s.table().insert(id, observer)
	s.nextID++
	return &Connection[E]{callbacks: s.table(), id: id, connected: true}
}

// Emit calls the observers registered when the emission starts, in id order.
// Changes made by observers while it runs apply to later emissions only.
// The first error stops the emission and is returned as is.
func (s *Signal[E]) Emit(event E) error {
	for _, e := range s.table().snapshot() {
		if err := e.observer(event); err != nil {
			return err
		}
	}
	return nil
}

func (s *Signal[E]) Len() int {
	return s.table().len()
}
