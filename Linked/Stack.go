package Linked

// Stack is a LIFO container. Items are pushed to and popped from the front of the chain.
type Stack[T any] struct {
	base[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push v on top of u.
// Time: O(1)
func (u *Stack[T]) Push(v T) {
	u.pushFront(v)
}

// Pop removes and returns the top of u.
// Time: O(1)
func (u *Stack[T]) Pop() (T, bool) {
	return u.popFront()
}

// AppendAll moves every item of src under the bottom of u, keeping src's order. src is empty
// afterwards.
// Time: O(1)
func (u *Stack[T]) AppendAll(src *Stack[T]) {
	u.appendAll(&src.base)
}

// Combine moves the tops of left and right, in turn, onto the top of u until both are empty.
// u may already hold items. Because every node goes on top, the result reads as the reverse
// of the alternating interleave of left and right; this mirrors SplitAlternate. Once one side
// runs out the rest of the other follows. left and right mustn't be u; if one is, u is left
// unchanged apart from the items taken from the other.
func (u *Stack[T]) Combine(left, right *Stack[T]) {
	for nl, nr := left.sz, right.sz; nl > 0 || nr > 0; nl, nr = nl-1, nr-1 {
		if nl > 0 {
			u.moveFrontToFront(&left.base)
		}
		if nr > 0 {
			u.moveFrontToFront(&right.base)
		}
	}
}

// SplitAlternate moves the top of u onto the top of left, then right, in turn, until u is
// empty. left and right may already hold items.
func (u *Stack[T]) SplitAlternate(left, right *Stack[T]) {
	for toLeft := true; u.front != nil; toLeft = !toLeft {
		if toLeft {
			left.moveFrontToFront(&u.base)
		} else {
			right.moveFrontToFront(&u.base)
		}
	}
}
