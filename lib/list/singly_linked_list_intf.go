package list

import (
	"fmt"
)

// Note that the singly linked list is not thread safe.
// Use WithSinglyLinkedListRWMutex to guard it by a read-write lock.

// SinglyLinkedListComparator is a three-way comparator.
//  1. i == j, return 0
//  2. i > j, return positive
//  3. i < j, return negative
type SinglyLinkedListComparator[T comparable] func(i, j T) int64

// SinglyLinkedList is a head referenced singly linked list interface.
type SinglyLinkedList[T comparable] interface {
	fmt.Stringer

	// Len counts the elements by traversal.
	Len() int64
	// Cons prepends the value v to the list.
	Cons(v T) error
	// Snoc appends the value v to the list.
	Snoc(v T) error
	// Init drops the last element. It is a no-op if the list is empty.
	Init()
	// Tail drops the first element. It is a no-op if the list is empty.
	Tail()
	// Head returns the first element or an infra.ErrorStack wrapping
	// ErrSinglyLinkedListIsEmpty.
	Head() (T, error)
	// Last returns the last element, failing like Head.
	Last() (T, error)
	// PopHead returns the first element and removes it.
	// The list is untouched if it is empty.
	PopHead() (T, error)
	// PopLast returns the last element and removes it.
	// The list is untouched if it is empty.
	PopLast() (T, error)
	// At returns the element at the zero-based position k or
	// ErrSinglyLinkedListIndexOutOfRange.
	At(k int64) (T, error)
	// Remove removes the first element equals to v.
	Remove(v T)
	// Purge removes all elements equal to v.
	Purge(v T)
	// Drop drops the first k elements.
	Drop(k int64)
	// Take keeps the first k elements only.
	Take(k int64)
	// Reverse reverses the order of the list in place.
	Reverse()
	// Sort sorts the list in place by quick sort. It is not stable.
	Sort()
	// Elem returns true iff v is in the list.
	Elem(v T) bool
	// Foreach traverses the list in order until fn returns false.
	// The bare list must not be modified by fn.
	Foreach(fn func(idx int64, v T) bool)
	ToSlice() []T
	// Clone returns a deep copy of the list, no node is shared.
	Clone() SinglyLinkedList[T]
	// Free releases all nodes. The list is empty and still usable.
	Free()

	// Compare compares the lists in lexicographic order.
	// A strict prefix is less than the list it prefixes.
	Compare(that SinglyLinkedList[T]) int64
	Equal(that SinglyLinkedList[T]) bool
	NotEqual(that SinglyLinkedList[T]) bool
	Less(that SinglyLinkedList[T]) bool
	LessOrEqual(that SinglyLinkedList[T]) bool
	Greater(that SinglyLinkedList[T]) bool
	GreaterOrEqual(that SinglyLinkedList[T]) bool
}
