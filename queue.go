package pq

import (
	"fmt"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// indexDegree is the branching factor of both index trees.
const indexDegree = 2

// CompareFunc defines a total order over T. It returns a negative number
// when a sorts before b, zero when they are equivalent, and a positive
// number when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// entry is one stored (key, value) pair. The sequence number is unique
// within its queue and is the final ordering tie-break in both indexes, so
// entries with identical content remain distinct. Entries are immutable
// once inserted.
type entry[K, V any] struct {
	key   K
	value V
	seq   uint64
}

// Queue is a priority queue over (key, value) pairs. It keeps two
// orderings of the same entries, one by (key, value) and one by
// (value, key), so the extremes by value and a lookup by key are both
// cheap. Duplicate keys and duplicate pairs are retained.
//
// A Queue must be created with New, NewOrdered, or Clone. The zero Queue
// reports itself empty and supports Clear, Swap, and use as a comparison
// operand, but no other operation.
type Queue[K, V any] struct {
	byKey   *btree.BTreeG[*entry[K, V]]
	byValue *btree.BTreeG[*entry[K, V]]

	compareKey   CompareFunc[K]
	compareValue CompareFunc[V]

	seq uint64
}

// New creates an empty queue ordered by the given comparison functions.
// Both must define a total order over their type; two elements are equal
// exactly when the function returns 0.
func New[K, V any](compareKey CompareFunc[K], compareValue CompareFunc[V]) *Queue[K, V] {
	byKey, byValue := newIndexes(compareKey, compareValue)
	return &Queue[K, V]{
		byKey:        byKey,
		byValue:      byValue,
		compareKey:   compareKey,
		compareValue: compareValue,
	}
}

// NewOrdered creates an empty queue for key and value types with built-in
// ordering.
func NewOrdered[K, V constraints.Ordered]() *Queue[K, V] {
	return New[K, V](compareOrdered[K], compareOrdered[V])
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// newIndexes builds the two empty index trees. The key index orders by
// (key, value, seq), the value index by (value, key, seq). The less
// functions close over the comparators directly so a tree stays consistent
// with its ordering wherever it travels, Swap included.
func newIndexes[K, V any](compareKey CompareFunc[K], compareValue CompareFunc[V]) (byKey, byValue *btree.BTreeG[*entry[K, V]]) {
	byKey = btree.NewG[*entry[K, V]](indexDegree, func(a, b *entry[K, V]) bool {
		if c := compareKey(a.key, b.key); c != 0 {
			return c < 0
		}
		if c := compareValue(a.value, b.value); c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	})
	byValue = btree.NewG[*entry[K, V]](indexDegree, func(a, b *entry[K, V]) bool {
		if c := compareValue(a.value, b.value); c != 0 {
			return c < 0
		}
		if c := compareKey(a.key, b.key); c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	})
	return byKey, byValue
}

// Len returns the number of entries in the queue. It is 0 for the zero
// Queue.
func (q *Queue[K, V]) Len() int {
	if q == nil || q.byKey == nil {
		return 0
	}
	return q.byKey.Len()
}

// Empty reports whether the queue holds no entries.
func (q *Queue[K, V]) Empty() bool {
	return q.Len() == 0
}

// txn undoes the completed steps of a mutating operation when the
// operation does not run to completion, which only happens when a
// comparison function panics. Steps are undone in reverse order; after
// commit the rollback is a no-op.
type txn struct {
	undo      []func()
	committed bool
}

func (t *txn) step(undo func()) { t.undo = append(t.undo, undo) }

func (t *txn) commit() { t.committed = true }

func (t *txn) rollback() {
	if t.committed {
		return
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

// Insert adds one entry with the given key and value. Duplicates are kept:
// inserting an already-present pair grows the queue by one entry. If a
// comparison function panics mid-insert, the queue is restored to its
// previous state before the panic propagates.
func (q *Queue[K, V]) Insert(key K, value V) {
	q.seq++
	e := &entry[K, V]{key: key, value: value, seq: q.seq}

	var tx txn
	defer tx.rollback()

	q.byKey.ReplaceOrInsert(e)
	tx.step(func() { q.byKey.Delete(e) })

	q.byValue.ReplaceOrInsert(e)
	tx.commit()
}

// MinValue returns the smallest value in the queue. It returns
// ErrEmptyQueue when the queue is empty.
func (q *Queue[K, V]) MinValue() (V, error) {
	if q.Empty() {
		var zero V
		return zero, ErrEmptyQueue
	}
	e, _ := q.byValue.Min()
	return e.value, nil
}

// MaxValue returns the largest value in the queue. It returns
// ErrEmptyQueue when the queue is empty.
func (q *Queue[K, V]) MaxValue() (V, error) {
	if q.Empty() {
		var zero V
		return zero, ErrEmptyQueue
	}
	e, _ := q.byValue.Max()
	return e.value, nil
}

// MinKey returns the key of the entry holding the smallest value. It
// returns ErrEmptyQueue when the queue is empty.
func (q *Queue[K, V]) MinKey() (K, error) {
	if q.Empty() {
		var zero K
		return zero, ErrEmptyQueue
	}
	e, _ := q.byValue.Min()
	return e.key, nil
}

// MaxKey returns the key of the entry holding the largest value. It
// returns ErrEmptyQueue when the queue is empty.
func (q *Queue[K, V]) MaxKey() (K, error) {
	if q.Empty() {
		var zero K
		return zero, ErrEmptyQueue
	}
	e, _ := q.byValue.Max()
	return e.key, nil
}

// DeleteMin removes one entry holding the minimum value; among entries
// sharing that value the one with the smallest key goes first. Deleting
// from an empty queue is a no-op. DeleteMin never fails.
func (q *Queue[K, V]) DeleteMin() {
	if q.Empty() {
		return
	}
	e, _ := q.byValue.DeleteMin()
	q.byKey.Delete(e)
}

// DeleteMax removes one entry holding the maximum value; among entries
// sharing that value the one with the largest key goes first. Deleting
// from an empty queue is a no-op. DeleteMax never fails.
func (q *Queue[K, V]) DeleteMax() {
	if q.Empty() {
		return
	}
	e, _ := q.byValue.DeleteMax()
	q.byKey.Delete(e)
}

// findByKey returns the entry that sorts first among all entries carrying
// key in the key index: the one with the smallest value, then the earliest
// inserted. The lookup pivot borrows the queue's minimum value, which is a
// lower bound for any value stored under the key, and sequence number 0,
// which is below every assigned sequence number.
func (q *Queue[K, V]) findByKey(key K) (*entry[K, V], bool) {
	least, ok := q.byValue.Min()
	if !ok {
		return nil, false
	}
	pivot := &entry[K, V]{key: key, value: least.value}
	var found *entry[K, V]
	q.byKey.AscendGreaterOrEqual(pivot, func(e *entry[K, V]) bool {
		if q.compareKey(e.key, key) == 0 {
			found = e
		}
		return false
	})
	return found, found != nil
}

// ChangeValue replaces the value of exactly one entry carrying key with
// newValue; the queue's size does not change. When several entries share
// the key, the one holding the smallest current value is replaced, and
// among exact duplicates the earliest inserted. It returns an error
// wrapping ErrKeyNotFound, with the queue untouched, when no entry has the
// key. If a comparison function panics mid-operation, the queue is
// restored to its previous state before the panic propagates.
func (q *Queue[K, V]) ChangeValue(key K, newValue V) error {
	old, ok := q.findByKey(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	q.seq++
	e := &entry[K, V]{key: key, value: newValue, seq: q.seq}

	var tx txn
	defer tx.rollback()

	q.byKey.ReplaceOrInsert(e)
	tx.step(func() { q.byKey.Delete(e) })

	q.byValue.ReplaceOrInsert(e)
	tx.step(func() { q.byValue.Delete(e) })

	q.byKey.Delete(old)
	tx.step(func() { q.byKey.ReplaceOrInsert(old) })

	q.byValue.Delete(old)
	tx.commit()
	return nil
}

// Merge moves every entry of other into q, leaving other empty. Merging a
// queue with itself is a no-op. If a comparison function panics while
// entries are being moved, q is restored from a pre-merge snapshot and
// other keeps all of its entries.
func (q *Queue[K, V]) Merge(other *Queue[K, V]) {
	if q == other || other.Empty() {
		return
	}

	snapKey, snapValue := q.byKey.Clone(), q.byValue.Clone()

	var tx txn
	defer tx.rollback()
	tx.step(func() { q.byKey, q.byValue = snapKey, snapValue })

	other.byKey.Ascend(func(e *entry[K, V]) bool {
		q.seq++
		moved := &entry[K, V]{key: e.key, value: e.value, seq: q.seq}
		q.byKey.ReplaceOrInsert(moved)
		q.byValue.ReplaceOrInsert(moved)
		return true
	})
	tx.commit()

	other.Clear()
}

// Clone returns a queue holding the same entries under the same ordering.
// The clone and q are observably independent: mutating one never shows in
// the other. Tree nodes are shared copy-on-write, so cloning is cheap.
// Cloning the zero Queue yields another zero Queue.
func (q *Queue[K, V]) Clone() *Queue[K, V] {
	if q.byKey == nil {
		return &Queue[K, V]{}
	}
	return &Queue[K, V]{
		byKey:        q.byKey.Clone(),
		byValue:      q.byValue.Clone(),
		compareKey:   q.compareKey,
		compareValue: q.compareValue,
		seq:          q.seq,
	}
}

// Swap exchanges the entire contents of q and other in O(1). Swapping a
// queue with itself is a no-op. Swap never fails.
func (q *Queue[K, V]) Swap(other *Queue[K, V]) {
	if q == other {
		return
	}
	*q, *other = *other, *q
}

// Clear removes every entry, keeping the queue usable. Clearing the zero
// Queue is a no-op. Clear never fails.
func (q *Queue[K, V]) Clear() {
	if q == nil || q.byKey == nil {
		return
	}
	q.byKey.Clear(false)
	q.byValue.Clear(false)
}
