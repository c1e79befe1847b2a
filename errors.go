package pq

import "errors"

var (
	// ErrEmptyQueue is returned by the extremal accessors when the queue
	// holds no entries.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrKeyNotFound is returned by ChangeValue when no entry carries the
	// requested key.
	ErrKeyNotFound = errors.New("key not found")
)
