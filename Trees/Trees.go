// Package Trees holds binary search trees of CountedItem values: a plain BST, the height
// balanced AVL, and PopularityTree, which lifts frequently retrieved items towards the root.
// None of them are safe for concurrent use.
package Trees

import "fmt"

// Tree represents the behaviour shared by the trees in this package.
// Receivers that have a bool as a second return value indicate whether the first return
// value is defined. For example, calling Minimum on an empty tree returns (x, false), and x
// should not be used.
// Methods implemented recursively should be noted, otherwise they're iterative.
type Tree[T any] interface {
	//Insert item into the Tree. A value already in the tree is never duplicated;
	//whether its count changes depends on the implementation.
	Insert(item CountedItem[T])
	//Remove one occurrence of key. A node is deleted once its count would drop
	//below 1. Returns false if key isn't in the tree.
	Remove(key T) bool
	//Retrieve a copy of the item stored for key. Every comparison made is added
	//to Comparisons.
	Retrieve(key T) (CountedItem[T], bool)
	//Contains reports whether key is in the tree without touching Comparisons.
	Contains(key T) bool
	//Size is the number of distinct values.
	Size() int
	//Height of the root, 0 if the tree is empty.
	Height() int
	Empty() bool
	//Comparisons made by Retrieve since the last ResetComparisons.
	Comparisons() int
	ResetComparisons()
	//Minimum element of the tree.
	Minimum() (CountedItem[T], bool)
	//Maximum element of the tree.
	Maximum() (CountedItem[T], bool)
	//InOrder, PreOrder and LevelOrder copy the items in the given order. The tree
	//must not be modified while they run.
	InOrder() []CountedItem[T]
	PreOrder() []CountedItem[T]
	LevelOrder() []CountedItem[T]
	//InOrderIter returns A closure function f acting like an iterator. f
	//gives items in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f. There will be no
	//panic if such cases happen, but the items returned are undefined.
	InOrderIter() func() (CountedItem[T], bool)
	//IsValid returns whether every node satisfies the ordering and cached height
	//properties, plus whatever that specific implementation adds.
	IsValid() bool
}

// InvalidSliceError is the panic value of From and FromAVL when the given slice isn't
// strictly ascending. Prev and Next are the offending neighbours, Next is at Index.
type InvalidSliceError[T any] struct {
	Prev, Next T
	Index      int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice is not strictly ascending: %v followed by %v at index %d", e.Prev, e.Next, e.Index)
}

var (
	_ Tree[int] = (*BST[int])(nil)
	_ Tree[int] = (*AVL[int])(nil)
	_ Tree[int] = (*PopularityTree[int])(nil)
)
