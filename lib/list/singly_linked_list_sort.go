package list

// References:
// https://www.geeksforgeeks.org/quicksort-on-singly-linked-list/

// slistSortRange is the partition range. The prev is the node whose
// next link points to the first node of the range, it is the slot 0
// for the whole list. The end is exclusive, slot 0 means to the end.
type slistSortRange struct {
	prev uint32
	end  uint32
}

// Sort partitions by the first node as pivot and moves the nodes
// less than or equal to the pivot ahead of it, then sorts both sides.
//
//	prev -> [pivot][a][b][c] -> end
//	prev -> [<= pivot ...][pivot][> pivot ...] -> end
//
// The ranges are kept in a heap allocated stack instead of recursion,
// so the call stack is bounded for the worst case (already sorted).
func (l *singlyLinkedList[T]) Sort() {
	nodes := l.nodes()
	stack := []slistSortRange{{prev: slistNilIdx, end: slistNilIdx}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pivot := nodes[r.prev].next
		if pivot == r.end || nodes[pivot].next == r.end {
			// Empty or only one node.
			continue
		}

		prev, step := pivot, nodes[pivot].next
		for step != r.end {
			next := nodes[step].next
			if l.cmp(nodes[step].val, nodes[pivot].val) > 0 {
				prev = step
			} else {
				// Unlink and relink at the front of the range.
				nodes[prev].next = next
				nodes[step].next = nodes[r.prev].next
				nodes[r.prev].next = step
			}
			step = next
		}

		// Empty sides are not pushed, otherwise they pile up on the
		// stack for the sorted input.
		if nodes[r.prev].next != pivot {
			stack = append(stack, slistSortRange{prev: r.prev, end: pivot})
		}
		if nodes[pivot].next != r.end {
			stack = append(stack, slistSortRange{prev: pivot, end: r.end})
		}
	}
}
