package pq_test

import (
	"errors"
	"fmt"

	"github.com/avelov42/pq"
)

// Example demonstrates basic queue usage: insertion, extremal access, and
// removal from both ends.
func Example() {
	q := pq.NewOrdered[int, int]()

	q.Insert(3, 30)
	q.Insert(1, 10)
	q.Insert(2, 20)

	minV, _ := q.MinValue()
	minK, _ := q.MinKey()
	fmt.Printf("min: %d=%d\n", minK, minV)

	maxV, _ := q.MaxValue()
	maxK, _ := q.MaxKey()
	fmt.Printf("max: %d=%d\n", maxK, maxV)

	q.DeleteMin()
	minV, _ = q.MinValue()
	fmt.Printf("after DeleteMin: %d entries, min value %d\n", q.Len(), minV)

	// Output:
	// min: 1=10
	// max: 3=30
	// after DeleteMin: 2 entries, min value 20
}

// ExampleQueue_ChangeValue demonstrates replacing the value of one entry
// and the error returned for an absent key.
func ExampleQueue_ChangeValue() {
	q := pq.NewOrdered[string, int]()
	q.Insert("a", 10)
	q.Insert("b", 20)

	if err := q.ChangeValue("b", 5); err != nil {
		fmt.Println(err)
	}
	minK, _ := q.MinKey()
	minV, _ := q.MinValue()
	fmt.Printf("min: %s=%d\n", minK, minV)

	err := q.ChangeValue("missing", 1)
	fmt.Println(errors.Is(err, pq.ErrKeyNotFound))

	// Output:
	// min: b=5
	// true
}

// ExampleQueue_Merge demonstrates moving all entries of one queue into
// another.
func ExampleQueue_Merge() {
	a := pq.NewOrdered[int, string]()
	a.Insert(1, "x")
	a.Insert(1, "y")

	b := pq.NewOrdered[int, string]()
	b.Insert(2, "z")

	a.Merge(b)
	fmt.Printf("a: %d entries, b: %d entries\n", a.Len(), b.Len())

	for !a.Empty() {
		k, _ := a.MinKey()
		v, _ := a.MinValue()
		fmt.Printf("%d=%s\n", k, v)
		a.DeleteMin()
	}

	// Output:
	// a: 3 entries, b: 0 entries
	// 1=x
	// 1=y
	// 2=z
}

// ExampleNew demonstrates custom orderings via comparison functions, here
// reversing the value order so the minimum end holds the largest number.
func ExampleNew() {
	compare := func(a, b int) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	q := pq.New[int, int](compare, func(a, b int) int {
		return compare(b, a)
	})

	q.Insert(1, 10)
	q.Insert(2, 20)

	v, _ := q.MinValue()
	fmt.Println(v)

	// Output:
	// 20
}
