package signals

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

type entry[E any] struct {
	id       uint64
	observer Observer[E]
}

// callbackTable is kept sorted by id, with at most one entry per id.
type callbackTable[E any] struct {
	entries []entry[E]
}

func (t *callbackTable[E]) search(id uint64) (int, bool) {
	return slices.BinarySearchFunc(t.entries, id, func(e entry[E], id uint64) int {
		return cmp.Compare(e.id, id)
	})
}

func (t *callbackTable[E]) insert(id uint64, observer Observer[E]) {
	i, found := t.search(id)
	if found {
		panic(errors.Wrapf(ErrDuplicateSubscriber, "id %d", id))
	}
	t.entries = slices.Insert(t.entries, i, entry[E]{id: id, observer: observer})
}

func (t *callbackTable[E]) remove(id uint64) Observer[E] {
	i, found := t.search(id)
	if !found {
		panic(errors.Wrapf(ErrUnknownSubscriber, "id %d", id))
	}
	observer := t.entries[i].observer
	t.entries = slices.Delete(t.entries, i, i+1)
	return observer
}

func (t *callbackTable[E]) snapshot() []entry[E] {
	return slices.Clone(t.entries)
}

func (t *callbackTable[E]) len() int {
	return len(t.entries)
}
