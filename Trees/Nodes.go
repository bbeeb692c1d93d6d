package Trees

// A node in the trees. The zero value is meaningless; nil is an empty subtree of height 0.
// h must equal 1+max(l.height(), r.height()) whenever the node is read by anything other
// than the operation that just changed l or r.
type TreeNode[T any] struct {
	item CountedItem[T]
	l, r *TreeNode[T]
	h    int
}

func (n *TreeNode[T]) height() int {
	if n == nil {
		return 0
	}
	return n.h
}

func (n *TreeNode[T]) updateHeight() {
	n.h = max(n.l.height(), n.r.height()) + 1
}

// balance is positive when the left subtree is taller.
func (n *TreeNode[T]) balance() int {
	return n.l.height() - n.r.height()
}

// count of the item at n, -1 for an empty subtree so any node outranks it.
func (n *TreeNode[T]) count() int {
	if n == nil {
		return -1
	}
	return n.item.count
}

// rotateLeft performs a left rotation on n, making its right child the subtree root. n is
// passed by reference in order to modify its content. Both heights are updated.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **TreeNode[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.updateHeight()
	rc.updateHeight()
	*n = rc
}

// rotateRight performs a right rotation on n, making its left child the subtree root. n is
// passed by reference in order to modify its content. Both heights are updated.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **TreeNode[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.updateHeight()
	lc.updateHeight()
	*n = lc
}
