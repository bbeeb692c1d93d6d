// Package Linked holds singly linked containers built on one shared node chain: Stack,
// Queue, PriorityQueue and List. Combining and splitting containers moves nodes between
// them in O(1) per node without copying or inspecting values.
//
// None of the containers are safe for concurrent use. Receivers that have a bool as a
// second return value indicate whether the first return value is defined, e.g. Pop on an
// empty Stack returns (x, false) and x should not be used.
package Linked

import "github.com/g-m-twostay/go-structs/Queues"

var (
	_ Queues.Stack[int] = (*Stack[int])(nil)
	_ Queues.Queue[int] = (*Queue[int])(nil)
	_ Queues.Queue[int] = (*PriorityQueue[int])(nil)
)

// ordered is the comparison shared by the containers that look at values. cmp(a,b) must be
// negative if a<b, positive if a>b and 0 if they're equal.
type ordered[T any] struct {
	cmp func(a, b T) int
}

func (u ordered[T]) eq(a, b T) bool {
	return u.cmp(a, b) == 0
}

// search returns the node before the first node equal to key, and that node itself.
// prev is nil when the match is the front, cur is nil if there's no match.
func (u ordered[T]) search(b *base[T], key T) (prev, cur *node[T]) {
	for cur = b.front; cur != nil; prev, cur = cur, cur.nx {
		if u.eq(cur.v, key) {
			return
		}
	}
	return nil, nil
}
