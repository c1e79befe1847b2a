// Package pq implements a generic priority queue over (key, value) pairs
// that keeps two synchronized orderings of the same entries: one by key and
// one by value. Duplicate keys and duplicate (key, value) pairs are retained
// as distinct entries.
//
// The queue is backed by two B-trees holding the same entries, one ordered
// by (key, value) and one by (value, key). Every mutating operation updates
// both trees as a staged transaction: if a step does not complete (a
// comparison function panicked), the completed steps are undone and the
// queue is left exactly as it was before the call.
//
// Key features:
//   - Generic implementation for any key and value types with a total order
//   - O(log n) insertion, O(1) minimum/maximum access, O(log n) removal
//   - Duplicate keys and duplicate pairs are kept, not collapsed
//   - Key-based value replacement and whole-queue merging
//   - Every mutating operation either completes or leaves the queue unchanged
//
// Basic usage:
//
//	q := pq.NewOrdered[int, int]()
//
//	q.Insert(3, 30)
//	q.Insert(1, 10)
//	q.Insert(2, 20)
//
//	v, err := q.MinValue() // 10
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q.DeleteMin()
//
//	if err := q.ChangeValue(2, 5); err != nil {
//	    log.Fatal(err)
//	}
//
// Custom orderings are supplied as comparison functions:
//
//	q := pq.New[string, Task](strings.Compare, func(a, b Task) int {
//	    return a.Deadline.Compare(b.Deadline)
//	})
//
// The queue is not safe for concurrent use; callers must provide their own
// synchronization.
package pq
