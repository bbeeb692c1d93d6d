package Linked

// Queue is a FIFO container. Items enter at the rear and leave from the front.
type Queue[T any] struct {
	base[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue v at the rear of u.
// Time: O(1)
func (u *Queue[T]) Enqueue(v T) {
	u.pushRear(v)
}

// Insert is Enqueue.
func (u *Queue[T]) Insert(v T) {
	u.pushRear(v)
}

// Push is Enqueue.
func (u *Queue[T]) Push(v T) {
	u.pushRear(v)
}

// Dequeue removes and returns the front of u.
// Time: O(1)
func (u *Queue[T]) Dequeue() (T, bool) {
	return u.popFront()
}

// Remove is Dequeue.
func (u *Queue[T]) Remove() (T, bool) {
	return u.popFront()
}

// Pop is Dequeue.
func (u *Queue[T]) Pop() (T, bool) {
	return u.popFront()
}

// AppendAll moves every item of src to the rear of u, keeping their order. src is empty
// afterwards.
// Time: O(1)
func (u *Queue[T]) AppendAll(src *Queue[T]) {
	u.appendAll(&src.base)
}

// Combine moves the fronts of left and right, in turn, to the rear of u until both are
// empty, so each side keeps its relative order. u may already hold items. When one side
// runs out first the rest of the other follows in order. It's the inverse of SplitAlternate.
// left and right mustn't be u; if one is, u's own items are rotated instead of combined.
func (u *Queue[T]) Combine(left, right *Queue[T]) {
	u.alternateToRear(&left.base, &right.base)
}

// SplitAlternate moves the front of u to the rear of left, then right, in turn, until u is
// empty. left and right may already hold items.
func (u *Queue[T]) SplitAlternate(left, right *Queue[T]) {
	u.splitToRears(&left.base, &right.base)
}
