package list

// slistCursor yields the values of a list in order, ok is false at the end.
type slistCursor[T comparable] func() (v T, ok bool)

func (l *singlyLinkedList[T]) cursor() slistCursor[T] {
	nodes, cur := l.nodes(), l.arena.head()
	return func() (T, bool) {
		if cur == slistNilIdx {
			return *new(T), false
		}
		v := nodes[cur].val
		cur = nodes[cur].next
		return v, true
	}
}

func sliceCursor[T comparable](values []T) slistCursor[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(values) {
			return *new(T), false
		}
		i++
		return values[i-1], true
	}
}

func cursorOf[T comparable](that SinglyLinkedList[T]) slistCursor[T] {
	switch o := that.(type) {
	case nil:
		return sliceCursor[T](nil)
	case *singlyLinkedList[T]:
		if o == nil {
			return sliceCursor[T](nil)
		}
		return o.cursor()
	case *slistDelegator[T]:
		if o == nil {
			return sliceCursor[T](nil)
		}
	default:
	}
	return sliceCursor(that.ToSlice())
}

// compare is the only ordering primitive, all the relational
// queries are derived from it.
func (l *singlyLinkedList[T]) compare(next slistCursor[T]) int64 {
	nodes := l.nodes()
	for cur := l.arena.head(); ; cur = nodes[cur].next {
		v, ok := next()
		switch {
		case cur == slistNilIdx && !ok:
			return 0
		case cur == slistNilIdx:
			return -1
		case !ok:
			return 1
		default:
		}
		if res := l.cmp(nodes[cur].val, v); res < 0 {
			return -1
		} else if res > 0 {
			return 1
		}
	}
}

func (l *singlyLinkedList[T]) equal(next slistCursor[T]) bool {
	nodes := l.nodes()
	for cur := l.arena.head(); ; cur = nodes[cur].next {
		v, ok := next()
		if cur == slistNilIdx || !ok {
			return cur == slistNilIdx && !ok
		}
		if nodes[cur].val != v {
			return false
		}
	}
}

func (l *singlyLinkedList[T]) Compare(that SinglyLinkedList[T]) int64 {
	return l.compare(cursorOf(that))
}

func (l *singlyLinkedList[T]) Equal(that SinglyLinkedList[T]) bool {
	return l.equal(cursorOf(that))
}

func (l *singlyLinkedList[T]) NotEqual(that SinglyLinkedList[T]) bool {
	return !l.Equal(that)
}

func (l *singlyLinkedList[T]) Less(that SinglyLinkedList[T]) bool {
	return l.Compare(that) < 0
}

func (l *singlyLinkedList[T]) LessOrEqual(that SinglyLinkedList[T]) bool {
	return l.Compare(that) <= 0
}

func (l *singlyLinkedList[T]) Greater(that SinglyLinkedList[T]) bool {
	return l.Compare(that) > 0
}

func (l *singlyLinkedList[T]) GreaterOrEqual(that SinglyLinkedList[T]) bool {
	return l.Compare(that) >= 0
}
