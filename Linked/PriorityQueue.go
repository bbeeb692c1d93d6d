package Linked

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// PriorityQueue keeps its items sorted in ascending order from front to rear, so Remove
// always returns the smallest item. Equal items leave in the order they were inserted.
// PriorityQueue shouldn't be created directly using struct literal.
type PriorityQueue[T any] struct {
	base[T]
	ordered[T]
}

// NewPriorityQueue orders items with < and >.
func NewPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{ordered: ordered[T]{Go_Structs.Compare[T]}}
}

// NewPriorityQueueFunc orders items with cmp; see [Go_Structs.Compare] for its contract.
func NewPriorityQueueFunc[T any](cmp func(a, b T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{ordered: ordered[T]{cmp}}
}

// Insert v before the first item strictly greater than it.
// Time: O(n)
func (u *PriorityQueue[T]) Insert(v T) {
	var prev *node[T]
	cur := u.front
	for cur != nil && u.cmp(v, cur.v) >= 0 {
		prev, cur = cur, cur.nx
	}
	if prev == nil {
		u.pushFront(v)
		return
	}
	n := &node[T]{v, cur}
	prev.nx = n
	if cur == nil {
		u.rear = n
	}
	u.sz++
}

// Push is Insert.
func (u *PriorityQueue[T]) Push(v T) {
	u.Insert(v)
}

// Remove returns the highest priority, i.e. the smallest, item.
// Time: O(1)
func (u *PriorityQueue[T]) Remove() (T, bool) {
	return u.popFront()
}

// Pop is Remove.
func (u *PriorityQueue[T]) Pop() (T, bool) {
	return u.popFront()
}

// Combine moves the fronts of left and right, in turn, to the rear of u until both are
// empty. It only moves nodes and never compares them: the result is sorted only if the
// alternation happens to produce sorted order, as it does for example when every item of
// left is smaller than every item of right and both hold one item. Callers that need a
// sorted result should re-insert. left and right mustn't be u; if one is, u's own items are
// rotated instead of combined.
func (u *PriorityQueue[T]) Combine(left, right *PriorityQueue[T]) {
	u.alternateToRear(&left.base, &right.base)
}

// SplitByKey moves the items of u that are <= key to the rear of left and the rest to the
// rear of right, keeping their relative order. u is empty afterwards. left and right may
// already hold items.
func (u *PriorityQueue[T]) SplitByKey(key T, left, right *PriorityQueue[T]) {
	for u.front != nil {
		if u.cmp(u.front.v, key) <= 0 {
			left.moveFrontToRear(&u.base)
		} else {
			right.moveFrontToRear(&u.base)
		}
	}
}
