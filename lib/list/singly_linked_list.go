package list

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/xlog"
)

const (
	// SinglyLinkedListMaxLen is limited by the uint32 node index.
	SinglyLinkedListMaxLen = 1<<31 - 1
	slistStringDelimiter   = ":"
	slistStringEmptyMarker = "[]"
)

var (
	ErrSinglyLinkedListIsEmpty         = errors.New("[singly-linked-list] there is no element")
	ErrSinglyLinkedListIndexOutOfRange = errors.New("[singly-linked-list] index out of range")
	ErrSinglyLinkedListIsFull          = errors.New("[singly-linked-list] is full")
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyLinkedListOptions struct {
	logger  xlog.XLogger
	initCap int64
	maxLen  int64
	rwmu    bool
}

type SinglyLinkedListOption func(opts *singlyLinkedListOptions)

// WithSinglyLinkedListInitCap preallocates the node slots.
func WithSinglyLinkedListInitCap(n int64) SinglyLinkedListOption {
	return func(opts *singlyLinkedListOptions) {
		if n < 0 {
			panic("singly linked list init capacity must not be negative")
		}
		opts.initCap = n
	}
}

// WithSinglyLinkedListMaxLen limits the number of elements.
// Cons and Snoc return ErrSinglyLinkedListIsFull beyond it.
func WithSinglyLinkedListMaxLen(n int64) SinglyLinkedListOption {
	return func(opts *singlyLinkedListOptions) {
		if n <= 0 || n > SinglyLinkedListMaxLen {
			panic(fmt.Sprintf("singly linked list max length must be in range (0, %d]", SinglyLinkedListMaxLen))
		}
		opts.maxLen = n
	}
}

func WithSinglyLinkedListLogger(logger xlog.XLogger) SinglyLinkedListOption {
	return func(opts *singlyLinkedListOptions) {
		opts.logger = logger
	}
}

// WithSinglyLinkedListRWMutex guards all operations by a read-write lock.
func WithSinglyLinkedListRWMutex() SinglyLinkedListOption {
	return func(opts *singlyLinkedListOptions) {
		opts.rwmu = true
	}
}

type singlyLinkedList[T comparable] struct {
	arena  *slistArena[T]
	cmp    SinglyLinkedListComparator[T]
	logger xlog.XLogger
	maxLen int64
}

// NewSinglyLinkedList creates an empty list ordered by the builtin operators.
func NewSinglyLinkedList[T infra.OrderedKey](opts ...SinglyLinkedListOption) SinglyLinkedList[T] {
	return NewSinglyLinkedListWithComparator[T](infra.DefaultOrderedKeyComparator[T], opts...)
}

// NewSinglyLinkedListWithComparator creates an empty list ordered by cmp.
func NewSinglyLinkedListWithComparator[T comparable](
	cmp SinglyLinkedListComparator[T],
	opts ...SinglyLinkedListOption,
) SinglyLinkedList[T] {
	if cmp == nil {
		panic("singly linked list comparator must not be nil")
	}
	o := &singlyLinkedListOptions{
		maxLen: SinglyLinkedListMaxLen,
	}
	for _, opt := range opts {
		opt(o)
	}
	l := &singlyLinkedList[T]{
		arena:  newSlistArena[T](min(o.initCap, o.maxLen)),
		cmp:    cmp,
		logger: o.logger,
		maxLen: o.maxLen,
	}
	if o.rwmu {
		return &slistDelegator[T]{
			rwmu: &sync.RWMutex{},
			impl: l,
		}
	}
	return l
}

func (l *singlyLinkedList[T]) nodes() []slistNode[T] {
	return l.arena.nodes
}

func (l *singlyLinkedList[T]) allocate(v T, next uint32) (uint32, error) {
	if live := l.arena.live(); live >= l.maxLen {
		err := infra.WrapErrorStackWithMessage(ErrSinglyLinkedListIsFull,
			fmt.Sprintf("max length %d", l.maxLen))
		if l.logger != nil {
			l.logger.ErrorStack(err, "singly linked list is full",
				zap.Int64("maxLen", l.maxLen),
				zap.Int64("live", live),
			)
		}
		return slistNilIdx, err
	}
	oldCap := l.arena.capacity()
	idx := l.arena.allocate(v, next)
	if newCap := l.arena.capacity(); newCap != oldCap && l.logger != nil {
		l.logger.Debug("singly linked list arena grows",
			zap.Int("oldCap", oldCap),
			zap.Int("newCap", newCap),
		)
	}
	return idx, nil
}

func (l *singlyLinkedList[T]) Len() int64 {
	count := int64(0)
	nodes := l.nodes()
	for cur := l.arena.head(); cur != slistNilIdx; cur = nodes[cur].next {
		count++
	}
	return count
}

func (l *singlyLinkedList[T]) Cons(v T) error {
	idx, err := l.allocate(v, l.arena.head())
	if err != nil {
		return err
	}
	l.nodes()[slistNilIdx].next = idx
	return nil
}

func (l *singlyLinkedList[T]) Snoc(v T) error {
	idx, err := l.allocate(v, slistNilIdx)
	if err != nil {
		return err
	}
	nodes := l.nodes()
	prev := slistNilIdx
	for nodes[prev].next != slistNilIdx {
		prev = nodes[prev].next
	}
	nodes[prev].next = idx
	return nil
}

func (l *singlyLinkedList[T]) Init() {
	nodes := l.nodes()
	prev, cur := slistNilIdx, l.arena.head()
	if cur == slistNilIdx {
		return
	}
	for nodes[cur].next != slistNilIdx {
		prev, cur = cur, nodes[cur].next
	}
	nodes[prev].next = slistNilIdx
	l.arena.recycle(cur)
}

func (l *singlyLinkedList[T]) Tail() {
	nodes := l.nodes()
	if h := l.arena.head(); h != slistNilIdx {
		nodes[slistNilIdx].next = nodes[h].next
		l.arena.recycle(h)
	}
}

func (l *singlyLinkedList[T]) Head() (T, error) {
	h := l.arena.head()
	if h == slistNilIdx {
		return *new(T), infra.WrapErrorStackWithMessage(ErrSinglyLinkedListIsEmpty, "head")
	}
	return l.nodes()[h].val, nil
}

func (l *singlyLinkedList[T]) Last() (T, error) {
	cur := l.arena.head()
	if cur == slistNilIdx {
		return *new(T), infra.WrapErrorStackWithMessage(ErrSinglyLinkedListIsEmpty, "last")
	}
	nodes := l.nodes()
	for nodes[cur].next != slistNilIdx {
		cur = nodes[cur].next
	}
	return nodes[cur].val, nil
}

func (l *singlyLinkedList[T]) PopHead() (T, error) {
	v, err := l.Head()
	if err != nil {
		return v, err
	}
	l.Tail()
	return v, nil
}

func (l *singlyLinkedList[T]) PopLast() (T, error) {
	v, err := l.Last()
	if err != nil {
		return v, err
	}
	l.Init()
	return v, nil
}

func (l *singlyLinkedList[T]) At(k int64) (T, error) {
	nodes := l.nodes()
	if k >= 0 {
		i := int64(0)
		for cur := l.arena.head(); cur != slistNilIdx; cur = nodes[cur].next {
			if i == k {
				return nodes[cur].val, nil
			}
			i++
		}
	}
	return *new(T), infra.WrapErrorStackWithMessage(ErrSinglyLinkedListIndexOutOfRange,
		fmt.Sprintf("index %d, len %d", k, l.Len()))
}

func (l *singlyLinkedList[T]) Remove(v T) {
	nodes := l.nodes()
	for prev, cur := slistNilIdx, l.arena.head(); cur != slistNilIdx; prev, cur = cur, nodes[cur].next {
		if nodes[cur].val == v {
			nodes[prev].next = nodes[cur].next
			l.arena.recycle(cur)
			return
		}
	}
}

func (l *singlyLinkedList[T]) Purge(v T) {
	nodes := l.nodes()
	prev, cur := slistNilIdx, l.arena.head()
	for cur != slistNilIdx {
		next := nodes[cur].next
		if nodes[cur].val == v {
			nodes[prev].next = next
			l.arena.recycle(cur)
		} else {
			prev = cur
		}
		cur = next
	}
}

// Drop drops nothing if k is not positive.
func (l *singlyLinkedList[T]) Drop(k int64) {
	nodes := l.nodes()
	cur := l.arena.head()
	for ; cur != slistNilIdx && k > 0; k-- {
		next := nodes[cur].next
		l.arena.recycle(cur)
		cur = next
	}
	nodes[slistNilIdx].next = cur
}

// Take empties the list if k is not positive.
func (l *singlyLinkedList[T]) Take(k int64) {
	nodes := l.nodes()
	prev, cur := slistNilIdx, l.arena.head()
	for ; cur != slistNilIdx && k > 0; k-- {
		prev, cur = cur, nodes[cur].next
	}
	nodes[prev].next = slistNilIdx
	l.arena.releaseFrom(cur)
}

func (l *singlyLinkedList[T]) Reverse() {
	nodes := l.nodes()
	prev, cur := slistNilIdx, l.arena.head()
	for cur != slistNilIdx {
		next := nodes[cur].next
		nodes[cur].next = prev
		prev, cur = cur, next
	}
	nodes[slistNilIdx].next = prev
}

func (l *singlyLinkedList[T]) Elem(v T) bool {
	nodes := l.nodes()
	for cur := l.arena.head(); cur != slistNilIdx; cur = nodes[cur].next {
		if nodes[cur].val == v {
			return true
		}
	}
	return false
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, v T) bool) {
	if fn == nil {
		return
	}
	nodes := l.nodes()
	idx := int64(0)
	for cur := l.arena.head(); cur != slistNilIdx; cur = nodes[cur].next {
		if !fn(idx, nodes[cur].val) {
			return
		}
		idx++
	}
}

func (l *singlyLinkedList[T]) ToSlice() []T {
	values := make([]T, 0, l.arena.live())
	l.Foreach(func(_ int64, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// String renders as "1:2:3:[]", it is not a parse target.
func (l *singlyLinkedList[T]) String() string {
	builder := strings.Builder{}
	for _, s := range lo.Map(l.ToSlice(), func(v T, _ int) string { return fmt.Sprint(v) }) {
		_, _ = builder.WriteString(s)
		_, _ = builder.WriteString(slistStringDelimiter)
	}
	_, _ = builder.WriteString(slistStringEmptyMarker)
	return builder.String()
}

func (l *singlyLinkedList[T]) clone() *singlyLinkedList[T] {
	c := &singlyLinkedList[T]{
		arena:  newSlistArena[T](l.arena.live()),
		cmp:    l.cmp,
		logger: l.logger,
		maxLen: l.maxLen,
	}
	tail := slistNilIdx
	nodes := l.nodes()
	for cur := l.arena.head(); cur != slistNilIdx; cur = nodes[cur].next {
		idx := c.arena.allocate(nodes[cur].val, slistNilIdx)
		c.arena.nodes[tail].next = idx
		tail = idx
	}
	return c
}

func (l *singlyLinkedList[T]) Clone() SinglyLinkedList[T] {
	return l.clone()
}

func (l *singlyLinkedList[T]) Free() {
	released := l.arena.releaseFrom(l.arena.head())
	l.arena.reset()
	if l.logger != nil {
		l.logger.Debug("singly linked list freed", zap.Int64("released", released))
	}
}
