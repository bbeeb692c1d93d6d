package Trees

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree of CountedItem. Inserting a value that's already
// present increments its count instead of adding a node, and Remove decrements it, deleting
// the node when the last occurrence goes.
// BST shouldn't be created directly using struct literal.
type BST[T any] struct {
	base[T]
}

func NewBST[T constraints.Ordered]() *BST[T] {
	return &BST[T]{base[T]{cmp: Go_Structs.Compare[T]}}
}

// NewBSTFunc orders values with cmp; see [Go_Structs.Compare] for its contract.
func NewBSTFunc[T any](cmp func(a, b T) int) *BST[T] {
	return &BST[T]{base[T]{cmp: cmp}}
}

// From builds a perfectly balanced BST of the values in sorted, each with count 1. This is
// faster than repeatedly calling Insert. sorted must be strictly ascending, otherwise From
// panics with InvalidSliceError.
// Time: O(n)
func From[T constraints.Ordered](sorted []T) *BST[T] {
	checkSorted(sorted, Go_Structs.Compare[T])
	return &BST[T]{base[T]{root: build(sorted), sz: len(sorted), cmp: Go_Structs.Compare[T]}}
}

// Insert [Tree.Insert]. Recursive.
// A new value is stored with item's count plus one; an existing value's count is incremented.
// Time: O(D)
func (u *BST[T]) Insert(item CountedItem[T]) {
	u.insert(&u.root, item, true, keep[T])
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BST[T]) Remove(key T) bool {
	return u.remove(&u.root, key, keep[T])
}

// IsValid [Tree.IsValid]. Recursive.
func (u *BST[T]) IsValid() bool {
	return u.valid(u.root, nil, nil, anyNode[T])
}

// Equals reports whether u and o have the same shape with equal values, counts and heights
// at every position. Recursive.
func (u *BST[T]) Equals(o *BST[T]) bool {
	return u.equals(&o.base)
}
