package Trees

import (
	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// PopularityTree is a BST whose counts record retrievals rather than insertions. Every
// Retrieve increments the count of the item found and rotates it above any ancestor it now
// outranks, so the count of a node is never below the counts of its children and the most
// retrieved items gather near the root. It trades balance for locality: D can be O(n).
// PopularityTree shouldn't be created directly using struct literal.
type PopularityTree[T any] struct {
	base[T]
}

func NewPopularityTree[T constraints.Ordered]() *PopularityTree[T] {
	return &PopularityTree[T]{base[T]{cmp: Go_Structs.Compare[T]}}
}

// NewPopularityTreeFunc orders values with cmp; see [Go_Structs.Compare] for its contract.
func NewPopularityTreeFunc[T any](cmp func(a, b T) int) *PopularityTree[T] {
	return &PopularityTree[T]{base[T]{cmp: cmp}}
}

// sink rotates the node at *n below its children recursively for as long as one of them has
// a greater count, always lifting the child with the greater count.
// The subtrees of *n must already satisfy the count ordering.
func sink[T any](n **TreeNode[T]) {
	cur := *n
	c, lc, rc := cur.item.count, cur.l.count(), cur.r.count()
	if lc <= c && rc <= c {
		return
	}
	if lc >= rc {
		rotateRight(n)
		sink(&(*n).r)
	} else {
		rotateLeft(n)
		sink(&(*n).l)
	}
	(*n).updateHeight()
}

// Insert [Tree.Insert]. Recursive.
// item is stored with its own count, normally 0. Inserting a value that's already present
// changes nothing.
// Time: O(D)
func (u *PopularityTree[T]) Insert(item CountedItem[T]) {
	u.insert(&u.root, item, false, sink[T])
}

// Remove [Tree.Remove]. Recursive.
// As in BST, a count above 1 is decremented and otherwise the node is deleted. Either way
// the affected node sinks below any child that now outranks it.
// Time: O(D)
func (u *PopularityTree[T]) Remove(key T) bool {
	return u.remove(&u.root, key, sink[T])
}

// retrieve key from the subtree at *curPtr recursively, incrementing the count of the item
// found. While unwinding, a child that now has a greater count than its parent is rotated
// above it.
func (u *PopularityTree[T]) retrieve(curPtr **TreeNode[T], key T) (CountedItem[T], bool) {
	cur := *curPtr
	if cur == nil {
		return CountedItem[T]{}, false
	}
	u.comps++
	var item CountedItem[T]
	var found bool
	if c := u.cmp(key, cur.item.v); c < 0 {
		if item, found = u.retrieve(&cur.l, key); found && cur.l.item.count > cur.item.count {
			rotateRight(curPtr)
			return item, true
		}
	} else if c > 0 {
		if item, found = u.retrieve(&cur.r, key); found && cur.r.item.count > cur.item.count {
			rotateLeft(curPtr)
			return item, true
		}
	} else {
		cur.item.count++
		return cur.item, true
	}
	cur.updateHeight()
	return item, found
}

// Retrieve [Tree.Retrieve]. Recursive.
// The count of the item found is incremented, and the returned copy includes it.
// Time: O(D)
func (u *PopularityTree[T]) Retrieve(key T) (CountedItem[T], bool) {
	return u.retrieve(&u.root, key)
}

func popular[T any](n *TreeNode[T]) bool {
	return n.l.count() <= n.item.count && n.r.count() <= n.item.count
}

// IsValid [Tree.IsValid]. Recursive.
// The count of every node must also be at least the counts of its children.
func (u *PopularityTree[T]) IsValid() bool {
	return u.valid(u.root, nil, nil, popular[T])
}

// Equals is BST.Equals for PopularityTree.
func (u *PopularityTree[T]) Equals(o *PopularityTree[T]) bool {
	return u.equals(&o.base)
}
