package list

// The nodes are stored in a growable table and linked by indices.
// A removed node's slot is recycled by the next allocation, so there is
// no dangling reference even if the slot is reused.
//
//  nodes[0]       nodes[3]       nodes[1]       nodes[2]
// +--------+     +--------+     +--------+     +--------+
// | head:3 |---->| next:1 |---->| next:2 |---->| next:0 |
// +--------+     +--------+     +--------+     +--------+
//
// Slot 0 holds the head link and index 0 as a successor means none.

const slistNilIdx uint32 = 0

type slistNode[T comparable] struct {
	next uint32
	val  T
}

type slistArena[T comparable] struct {
	nodes    []slistNode[T]
	recycled []uint32 // free list
	initCap  int64
}

func newSlistArena[T comparable](initCap int64) *slistArena[T] {
	return &slistArena[T]{
		nodes:   make([]slistNode[T], 1, initCap+1),
		initCap: initCap,
	}
}

func (arena *slistArena[T]) head() uint32 {
	return arena.nodes[slistNilIdx].next
}

// live returns the number of the allocated and not recycled nodes.
func (arena *slistArena[T]) live() int64 {
	return int64(len(arena.nodes) - 1 - len(arena.recycled))
}

func (arena *slistArena[T]) capacity() int {
	return cap(arena.nodes) - 1
}

func (arena *slistArena[T]) allocate(v T, next uint32) uint32 {
	if rl := len(arena.recycled); rl > 0 {
		idx := arena.recycled[rl-1]
		arena.recycled = arena.recycled[:rl-1]
		arena.nodes[idx] = slistNode[T]{next: next, val: v}
		return idx
	}
	arena.nodes = append(arena.nodes, slistNode[T]{next: next, val: v})
	return uint32(len(arena.nodes) - 1)
}

// recycle zeroes the slot to release the references held by the value.
func (arena *slistArena[T]) recycle(idx uint32) {
	if idx == slistNilIdx {
		return
	}
	arena.nodes[idx] = slistNode[T]{}
	arena.recycled = append(arena.recycled, idx)
}

// releaseFrom recycles the chain starting at idx and returns the
// released count.
func (arena *slistArena[T]) releaseFrom(idx uint32) int64 {
	released := int64(0)
	for idx != slistNilIdx {
		next := arena.nodes[idx].next
		arena.recycle(idx)
		idx = next
		released++
	}
	return released
}

func (arena *slistArena[T]) reset() {
	arena.nodes = make([]slistNode[T], 1, arena.initCap+1)
	arena.recycled = nil
}
