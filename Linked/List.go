package Linked

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// List is an index addressable sequence. Items are equal when the List's comparison returns 0.
// Index arguments are lenient: Insert clamps them and Get reports out of range as absent.
// List shouldn't be created directly using struct literal.
type List[T any] struct {
	base[T]
	ordered[T]
}

func NewList[T constraints.Ordered]() *List[T] {
	return &List[T]{ordered: ordered[T]{Go_Structs.Compare[T]}}
}

// NewListFunc compares items with cmp; see [Go_Structs.Compare] for its contract.
func NewListFunc[T any](cmp func(a, b T) int) *List[T] {
	return &List[T]{ordered: ordered[T]{cmp}}
}

// Append v to the rear.
// Time: O(1)
func (u *List[T]) Append(v T) {
	u.pushRear(v)
}

// Prepend v to the front.
// Time: O(1)
func (u *List[T]) Prepend(v T) {
	u.pushFront(v)
}

// Insert v so it ends up at index i. i<=0 prepends and i>=Len() appends.
// Time: O(i)
func (u *List[T]) Insert(i int, v T) {
	if i <= 0 {
		u.pushFront(v)
	} else if i >= u.sz {
		u.pushRear(v)
	} else {
		prev := u.front
		for j := 1; j < i; j++ {
			prev = prev.nx
		}
		prev.nx = &node[T]{v, prev.nx}
		u.sz++
	}
}

// AppendAll moves every item of src to the rear of u, keeping their order. src is empty
// afterwards.
// Time: O(1)
func (u *List[T]) AppendAll(src *List[T]) {
	u.appendAll(&src.base)
}

// Get the item at index n.
// Time: O(n)
func (u *List[T]) Get(n int) (v T, ok bool) {
	if n < 0 || n >= u.sz {
		return
	}
	cur := u.front
	for ; n > 0; n-- {
		cur = cur.nx
	}
	return cur.v, true
}

// Index of the first item equal to key, -1 if there's none.
func (u *List[T]) Index(key T) int {
	i := 0
	for cur := u.front; cur != nil; cur = cur.nx {
		if u.eq(cur.v, key) {
			return i
		}
		i++
	}
	return -1
}

// Find returns the first stored item equal to key.
func (u *List[T]) Find(key T) (v T, ok bool) {
	if _, cur := u.search(&u.base, key); cur != nil {
		return cur.v, true
	}
	return
}

func (u *List[T]) Contains(key T) bool {
	_, cur := u.search(&u.base, key)
	return cur != nil
}

// Count the items equal to key.
func (u *List[T]) Count(key T) (c int) {
	for cur := u.front; cur != nil; cur = cur.nx {
		if u.eq(cur.v, key) {
			c++
		}
	}
	return
}

// Remove the first item equal to key and return it.
func (u *List[T]) Remove(key T) (v T, ok bool) {
	if prev, cur := u.search(&u.base, key); cur != nil {
		return u.unlinkAfter(prev), true
	}
	return
}

// RemoveFront removes and returns the front item.
func (u *List[T]) RemoveFront() (T, bool) {
	return u.popFront()
}

// RemoveMany removes every item equal to key. The others keep their order.
// Time: O(n)
func (u *List[T]) RemoveMany(key T) {
	var prev *node[T]
	for cur := u.front; cur != nil; cur = cur.nx {
		if u.eq(cur.v, key) {
			u.unlinkAfter(prev)
		} else {
			prev = cur
		}
	}
}

// Clean keeps only the first occurrence of every distinct item, in their original order.
// Time: O(n^2)
func (u *List[T]) Clean() {
	for keep := u.front; keep != nil; keep = keep.nx {
		for prev := keep; prev.nx != nil; {
			if u.eq(prev.nx.v, keep.v) {
				u.unlinkAfter(prev)
			} else {
				prev = prev.nx
			}
		}
	}
}

// Reverse the order of the items by relinking the nodes in place.
// Time: O(n); Space: O(1)
func (u *List[T]) Reverse() {
	var prev *node[T]
	u.rear = u.front
	for cur := u.front; cur != nil; {
		cur.nx, prev, cur = prev, cur, cur.nx
	}
	u.front = prev
}

// Max returns the greatest item; the first one wins ties.
func (u *List[T]) Max() (v T, ok bool) {
	return u.extreme(1)
}

// Min returns the smallest item; the first one wins ties.
func (u *List[T]) Min() (v T, ok bool) {
	return u.extreme(-1)
}

// extreme returns the first item x with cmp(x, y)*sign >= 0 for every item y.
func (u *List[T]) extreme(sign int) (v T, ok bool) {
	if u.front == nil {
		return
	}
	v = u.front.v
	for cur := u.front.nx; cur != nil; cur = cur.nx {
		if u.cmp(cur.v, v)*sign > 0 {
			v = cur.v
		}
	}
	return v, true
}

// Equals reports whether u and o have the same length and equal items in the same order.
func (u *List[T]) Equals(o *List[T]) bool {
	if u.sz != o.sz {
		return false
	}
	for a, b := u.front, o.front; a != nil; a, b = a.nx, b.nx {
		if !u.eq(a.v, b.v) {
			return false
		}
	}
	return true
}

// Split moves the first ceil(Len()/2) items to the rear of left and the remainder to the
// rear of right, keeping their order. u is empty afterwards.
func (u *List[T]) Split(left, right *List[T]) {
	for i := (u.sz + 1) / 2; i > 0; i-- {
		left.moveFrontToRear(&u.base)
	}
	right.appendAll(&u.base)
}

// SplitAlternate moves the front of u to the rear of left, then right, in turn, until u is
// empty. left and right may already hold items. It's the inverse of Combine.
func (u *List[T]) SplitAlternate(left, right *List[T]) {
	u.splitToRears(&left.base, &right.base)
}

// Combine moves the fronts of left and right, in turn, to the rear of u until both are
// empty. left and right needn't have the same length: once one runs out the rest of the
// other follows in order. Split followed by Combine interleaves the two halves, it doesn't
// restore the original order. left and right mustn't be u; if one is, u's own items are
// rotated instead of combined.
func (u *List[T]) Combine(left, right *List[T]) {
	u.alternateToRear(&left.base, &right.base)
}

// Intersection replaces the contents of u with a copy of every distinct item of left that
// also appears in right, in left's order. left and right are unchanged and mustn't be u.
// Time: O(len(left)*(len(right)+Len()))
func (u *List[T]) Intersection(left, right *List[T]) {
	u.Clear()
	for cur := left.front; cur != nil; cur = cur.nx {
		if right.Contains(cur.v) && !u.Contains(cur.v) {
			u.pushRear(cur.v)
		}
	}
}

// Union replaces the contents of u with a copy of every distinct item of left, in order,
// followed by every distinct item of right not already copied, in order. left and right are
// unchanged and mustn't be u.
func (u *List[T]) Union(left, right *List[T]) {
	u.Clear()
	for _, src := range [2]*List[T]{left, right} {
		for cur := src.front; cur != nil; cur = cur.nx {
			if !u.Contains(cur.v) {
				u.pushRear(cur.v)
			}
		}
	}
}
