package Queues

// Queue is a container that hands items back in some defined order through Pop.
// Receivers that have a bool as a second return value indicate whether the first
// return value is defined; calling Pop or Peek on an empty Queue returns (x, false)
// and x should not be used.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, bool)
	Peek() (T, bool)
	Empty() bool
	Len() int
}

// Stack has the method set of Queue, but Pop always returns the most recently pushed
// item that hasn't been popped yet.
type Stack[T any] interface {
	Queue[T]
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen int)
}
