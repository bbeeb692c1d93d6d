package Trees

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// AVL is a BST that rebalances with rotations after every insertion and removal, so the
// heights of the two subtrees of any node differ by at most 1 and D is O(log n).
// AVL shouldn't be created directly using struct literal.
type AVL[T any] struct {
	base[T]
}

func NewAVL[T constraints.Ordered]() *AVL[T] {
	return &AVL[T]{base[T]{cmp: Go_Structs.Compare[T]}}
}

// NewAVLFunc orders values with cmp; see [Go_Structs.Compare] for its contract.
func NewAVLFunc[T any](cmp func(a, b T) int) *AVL[T] {
	return &AVL[T]{base[T]{cmp: cmp}}
}

// FromAVL is the AVL equivalence of From. A perfectly balanced tree is already an AVL.
// Time: O(n)
func FromAVL[T constraints.Ordered](sorted []T) *AVL[T] {
	checkSorted(sorted, Go_Structs.Compare[T])
	return &AVL[T]{base[T]{root: build(sorted), sz: len(sorted), cmp: Go_Structs.Compare[T]}}
}

// rebalance the node at *n with one or two rotations if its subtrees' heights differ by more
// than 1. The heights of its children must be up to date.
// Time: O(1)
func rebalance[T any](n **TreeNode[T]) {
	cur := *n
	if b := cur.balance(); b > 1 {
		if cur.l.balance() < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(n)
	} else if b < -1 {
		if cur.r.balance() > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(n)
	}
}

// Insert [Tree.Insert]. Recursive.
// Counts behave as in BST.Insert.
// Time: O(log n)
func (u *AVL[T]) Insert(item CountedItem[T]) {
	u.insert(&u.root, item, true, rebalance[T])
}

// Remove [Tree.Remove]. Recursive.
// Time: O(log n)
func (u *AVL[T]) Remove(key T) bool {
	return u.remove(&u.root, key, rebalance[T])
}

func balanced[T any](n *TreeNode[T]) bool {
	b := n.balance()
	return -1 <= b && b <= 1
}

// IsValid [Tree.IsValid]. Recursive.
// Every node must also be balanced.
func (u *AVL[T]) IsValid() bool {
	return u.valid(u.root, nil, nil, balanced[T])
}

// Equals is BST.Equals for AVL.
func (u *AVL[T]) Equals(o *AVL[T]) bool {
	return u.equals(&o.base)
}
