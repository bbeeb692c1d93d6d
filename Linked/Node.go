package Linked

// A node in a singly linked chain. Exactly one container owns a node at any time; the move
// primitives in base hand nodes over without copying v.
type node[T any] struct {
	v  T
	nx *node[T]
}
