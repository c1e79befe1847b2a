package pq

// Compare orders two queues lexicographically over their key-ordered
// traversals: at the first position where the entries differ, the queue
// whose entry has the smaller key, then the smaller value, orders first;
// if one traversal is a strict prefix of the other, the shorter queue
// orders first. The result is negative when q orders before other, zero
// when the queues are equal, and positive otherwise. The remaining
// relational operators follow from the sign.
func (q *Queue[K, V]) Compare(other *Queue[K, V]) int {
	a, b := q.entriesByKey(), other.entriesByKey()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := q.compareKey(a[i].key, b[i].key); c != 0 {
			return c
		}
		if c := q.compareValue(a[i].value, b[i].value); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Equal reports whether both queues hold equal entries at every position
// of their key-ordered traversals. Two empty queues are equal.
func (q *Queue[K, V]) Equal(other *Queue[K, V]) bool {
	if q.Len() != other.Len() {
		return false
	}
	return q.Compare(other) == 0
}

// Less reports whether q orders before other under Compare.
func (q *Queue[K, V]) Less(other *Queue[K, V]) bool {
	return q.Compare(other) < 0
}

// entriesByKey lists the entries in key-index order. Empty and zero queues
// yield nil.
func (q *Queue[K, V]) entriesByKey() []*entry[K, V] {
	if q == nil || q.byKey == nil {
		return nil
	}
	out := make([]*entry[K, V], 0, q.byKey.Len())
	q.byKey.Ascend(func(e *entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}
