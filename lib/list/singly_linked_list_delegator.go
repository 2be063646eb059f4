package list

import (
	"sync"
)

var _ SinglyLinkedList[struct{}] = (*slistDelegator[struct{}])(nil)

type slistDelegator[T comparable] struct {
	rwmu *sync.RWMutex
	impl *singlyLinkedList[T]
}

func (l *slistDelegator[T]) read() func() {
	l.rwmu.RLock()
	return l.rwmu.RUnlock
}

func (l *slistDelegator[T]) write() func() {
	l.rwmu.Lock()
	return l.rwmu.Unlock
}

func (l *slistDelegator[T]) String() string {
	defer l.read()()
	return l.impl.String()
}

func (l *slistDelegator[T]) Len() int64 {
	defer l.read()()
	return l.impl.Len()
}

func (l *slistDelegator[T]) Cons(v T) error {
	defer l.write()()
	return l.impl.Cons(v)
}

func (l *slistDelegator[T]) Snoc(v T) error {
	defer l.write()()
	return l.impl.Snoc(v)
}

func (l *slistDelegator[T]) Init() {
	defer l.write()()
	l.impl.Init()
}

func (l *slistDelegator[T]) Tail() {
	defer l.write()()
	l.impl.Tail()
}

func (l *slistDelegator[T]) Head() (T, error) {
	defer l.read()()
	return l.impl.Head()
}

func (l *slistDelegator[T]) Last() (T, error) {
	defer l.read()()
	return l.impl.Last()
}

func (l *slistDelegator[T]) PopHead() (T, error) {
	defer l.write()()
	return l.impl.PopHead()
}

func (l *slistDelegator[T]) PopLast() (T, error) {
	defer l.write()()
	return l.impl.PopLast()
}

func (l *slistDelegator[T]) At(k int64) (T, error) {
	defer l.read()()
	return l.impl.At(k)
}

func (l *slistDelegator[T]) Remove(v T) {
	defer l.write()()
	l.impl.Remove(v)
}

func (l *slistDelegator[T]) Purge(v T) {
	defer l.write()()
	l.impl.Purge(v)
}

func (l *slistDelegator[T]) Drop(k int64) {
	defer l.write()()
	l.impl.Drop(k)
}

func (l *slistDelegator[T]) Take(k int64) {
	defer l.write()()
	l.impl.Take(k)
}

func (l *slistDelegator[T]) Reverse() {
	defer l.write()()
	l.impl.Reverse()
}

func (l *slistDelegator[T]) Sort() {
	defer l.write()()
	l.impl.Sort()
}

func (l *slistDelegator[T]) Elem(v T) bool {
	defer l.read()()
	return l.impl.Elem(v)
}

// Foreach visits a snapshot taken under the read lock, fn runs without
// the lock and may call back into the list.
func (l *slistDelegator[T]) Foreach(fn func(idx int64, v T) bool) {
	if fn == nil {
		return
	}
	for i, v := range l.ToSlice() {
		if !fn(int64(i), v) {
			return
		}
	}
}

func (l *slistDelegator[T]) ToSlice() []T {
	defer l.read()()
	return l.impl.ToSlice()
}

func (l *slistDelegator[T]) Clone() SinglyLinkedList[T] {
	defer l.read()()
	return &slistDelegator[T]{
		rwmu: &sync.RWMutex{},
		impl: l.impl.clone(),
	}
}

func (l *slistDelegator[T]) Free() {
	defer l.write()()
	l.impl.Free()
}

// The other list is snapshot before acquiring the lock, so comparing
// with itself does not take the read lock twice.

func (l *slistDelegator[T]) Compare(that SinglyLinkedList[T]) int64 {
	next := cursorOf(that)
	defer l.read()()
	return l.impl.compare(next)
}

func (l *slistDelegator[T]) Equal(that SinglyLinkedList[T]) bool {
	next := cursorOf(that)
	defer l.read()()
	return l.impl.equal(next)
}

func (l *slistDelegator[T]) NotEqual(that SinglyLinkedList[T]) bool {
	return !l.Equal(that)
}

func (l *slistDelegator[T]) Less(that SinglyLinkedList[T]) bool {
	return l.Compare(that) < 0
}

func (l *slistDelegator[T]) LessOrEqual(that SinglyLinkedList[T]) bool {
	return l.Compare(that) <= 0
}

func (l *slistDelegator[T]) Greater(that SinglyLinkedList[T]) bool {
	return l.Compare(that) > 0
}

func (l *slistDelegator[T]) GreaterOrEqual(that SinglyLinkedList[T]) bool {
	return l.Compare(that) >= 0
}
