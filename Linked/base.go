package Linked

import (
	"fmt"
	"strings"
)

// base is the node chain shared by every container in this package. It tracks both ends
// and the number of nodes.
// front==nil iff sz==0 iff rear==nil, and rear is reached from front in sz-1 steps. Every
// receiver restores this before returning.
// The zero value is an empty chain.
type base[T any] struct {
	front, rear *node[T]
	sz          int
}

// Len returns the number of items.
// Time: O(1)
func (u *base[T]) Len() int {
	return u.sz
}

func (u *base[T]) Empty() bool {
	return u.front == nil
}

// Peek returns the front item without removing it.
func (u *base[T]) Peek() (v T, ok bool) {
	if u.front == nil {
		return
	}
	return u.front.v, true
}

// Clear drops every node.
func (u *base[T]) Clear() {
	u.front, u.rear, u.sz = nil, nil, 0
}

// pushFront links a new node holding v in front of the chain.
func (u *base[T]) pushFront(v T) {
	u.front = &node[T]{v, u.front}
	if u.rear == nil {
		u.rear = u.front
	}
	u.sz++
}

// pushRear links a new node holding v after the rear of the chain.
func (u *base[T]) pushRear(v T) {
	n := &node[T]{v, nil}
	if u.rear == nil {
		u.front = n
	} else {
		u.rear.nx = n
	}
	u.rear = n
	u.sz++
}

// popFront unlinks the front node and returns its value.
func (u *base[T]) popFront() (v T, ok bool) {
	if u.front == nil {
		return
	}
	v = u.front.v
	u.front = u.front.nx
	u.sz--
	if u.front == nil {
		u.rear = nil
	}
	return v, true
}

// unlinkAfter removes the node following prev, or the front node when prev is nil.
// The removed node must exist.
func (u *base[T]) unlinkAfter(prev *node[T]) T {
	var n *node[T]
	if prev == nil {
		n = u.front
		u.front = n.nx
	} else {
		n = prev.nx
		prev.nx = n.nx
	}
	if n == u.rear {
		u.rear = prev
	}
	u.sz--
	return n.v
}

// appendAll moves every node of src to the rear of u. src is empty afterwards.
// Time: O(1)
func (u *base[T]) appendAll(src *base[T]) {
	if src.front == nil {
		return
	}
	if u.front == nil {
		u.front = src.front
	} else {
		u.rear.nx = src.front
	}
	u.rear = src.rear
	u.sz += src.sz
	src.front, src.rear, src.sz = nil, nil, 0
}

// detachFront unlinks and returns the front node of u, nil if u is empty.
func (u *base[T]) detachFront() *node[T] {
	n := u.front
	if n == nil {
		return nil
	}
	u.front = n.nx
	u.sz--
	if u.front == nil {
		u.rear = nil
	}
	n.nx = nil
	return n
}

// moveFrontToFront moves the front node of src to the front of u. No-op when src is empty.
// Time: O(1)
func (u *base[T]) moveFrontToFront(src *base[T]) {
	if n := src.detachFront(); n != nil {
		n.nx = u.front
		u.front = n
		if u.rear == nil {
			u.rear = n
		}
		u.sz++
	}
}

// moveFrontToRear moves the front node of src to the rear of u. No-op when src is empty.
// Time: O(1)
func (u *base[T]) moveFrontToRear(src *base[T]) {
	if n := src.detachFront(); n != nil {
		if u.rear == nil {
			u.front = n
		} else {
			u.rear.nx = n
		}
		u.rear = n
		u.sz++
	}
}

// alternateToRear moves the fronts of left and right, in turn, to the rear of u until both
// are empty. When one side runs out the other keeps draining. The number of moves is fixed by
// the initial lengths, so a side that is u only gets rotated.
func (u *base[T]) alternateToRear(left, right *base[T]) {
	for nl, nr := left.sz, right.sz; nl > 0 || nr > 0; nl, nr = nl-1, nr-1 {
		if nl > 0 {
			u.moveFrontToRear(left)
		}
		if nr > 0 {
			u.moveFrontToRear(right)
		}
	}
}

// splitToRears moves the front of u to the rear of left, then right, in turn, until u is empty.
func (u *base[T]) splitToRears(left, right *base[T]) {
	for toLeft := true; u.front != nil; toLeft = !toLeft {
		if toLeft {
			left.moveFrontToRear(u)
		} else {
			right.moveFrontToRear(u)
		}
	}
}

// Iter returns a closure f acting like an iterator from front to rear:
// val, valid=f(). val is meaningful only if valid is true, and valid can't turn true after
// it first became false. The chain must not be modified while f is in use; doing so gives
// undefined results without panicking.
func (u *base[T]) Iter() func() (T, bool) {
	cur := u.front
	return func() (v T, has bool) {
		if cur == nil {
			return
		}
		v, cur = cur.v, cur.nx
		return v, true
	}
}

// Values copies the items from front to rear into a new slice.
func (u *base[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	for cur := u.front; cur != nil; cur = cur.nx {
		vs = append(vs, cur.v)
	}
	return vs
}

// String renders the chain as "front > a > b > null".
func (u *base[T]) String() string {
	var sb strings.Builder
	sb.WriteString("front > ")
	for cur := u.front; cur != nil; cur = cur.nx {
		fmt.Fprintf(&sb, "%v > ", cur.v)
	}
	sb.WriteString("null")
	return sb.String()
}
