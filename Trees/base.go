package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-structs/Queues"
)

// base holds the parts the trees share. The variants differ in how they restore their
// extra invariant on the way back up an insertion or a removal, which they pass in as fix.
type base[T any] struct {
	root  *TreeNode[T]
	sz    int
	comps int
	cmp   func(a, b T) int
}

// keep is the fix of a plain BST.
func keep[T any](**TreeNode[T]) {}

// insert item into the subtree rooted at *curPtr recursively. A new node takes item's count,
// plus one if counting. An existing value gets its count incremented only if counting.
// fix is applied to every node on the path after its height is updated.
func (u *base[T]) insert(curPtr **TreeNode[T], item CountedItem[T], counting bool, fix func(**TreeNode[T])) {
	cur := *curPtr
	if cur == nil {
		if counting {
			item.count++
		}
		*curPtr = &TreeNode[T]{item: item, h: 1}
		u.sz++
		return
	}
	if c := u.cmp(item.v, cur.item.v); c < 0 {
		u.insert(&cur.l, item, counting, fix)
	} else if c > 0 {
		u.insert(&cur.r, item, counting, fix)
	} else if counting {
		cur.item.count++
	}
	cur.updateHeight()
	fix(curPtr)
}

// remove one occurrence of key from the subtree rooted at *curPtr recursively. A count
// above 1 is decremented, otherwise the node goes: a missing child is replaced by the other
// one, and with two children the in-order predecessor takes its place.
// Returns false if key isn't in the subtree, in which case nothing is changed.
func (u *base[T]) remove(curPtr **TreeNode[T], key T, fix func(**TreeNode[T])) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(key, cur.item.v); c < 0 {
		if !u.remove(&cur.l, key, fix) {
			return false
		}
	} else if c > 0 {
		if !u.remove(&cur.r, key, fix) {
			return false
		}
	} else if cur.item.count > 1 {
		cur.item.count--
	} else {
		u.sz--
		if cur.l == nil {
			*curPtr = cur.r
			return true
		} else if cur.r == nil {
			*curPtr = cur.l
			return true
		}
		pred := removeMax(&cur.l, fix)
		pred.l, pred.r = cur.l, cur.r
		*curPtr = pred
	}
	(*curPtr).updateHeight()
	fix(curPtr)
	return true
}

// removeMax unlinks the rightmost node of the non-empty subtree *curPtr and returns it
// with both children cleared.
func removeMax[T any](curPtr **TreeNode[T], fix func(**TreeNode[T])) *TreeNode[T] {
	cur := *curPtr
	if cur.r == nil {
		*curPtr = cur.l
		cur.l = nil
		return cur
	}
	m := removeMax(&cur.r, fix)
	cur.updateHeight()
	fix(curPtr)
	return m
}

// find walks down to key, counting comparisons if counted is true.
func (u *base[T]) find(key T, counted bool) *TreeNode[T] {
	for cur := u.root; cur != nil; {
		if counted {
			u.comps++
		}
		if c := u.cmp(key, cur.item.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Retrieve [Tree.Retrieve]
// Time: O(D); Space: O(1)
func (u *base[T]) Retrieve(key T) (CountedItem[T], bool) {
	if n := u.find(key, true); n != nil {
		return n.item, true
	}
	return CountedItem[T]{}, false
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *base[T]) Contains(key T) bool {
	return u.find(key, false) != nil
}

// Size [Tree.Size]
// Time: O(1)
func (u *base[T]) Size() int {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1)
func (u *base[T]) Height() int {
	return u.root.height()
}

func (u *base[T]) Empty() bool {
	return u.root == nil
}

func (u *base[T]) Comparisons() int {
	return u.comps
}

func (u *base[T]) ResetComparisons() {
	u.comps = 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (CountedItem[T], bool) {
	cur := u.root
	if cur == nil {
		return CountedItem[T]{}, false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.item, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (CountedItem[T], bool) {
	cur := u.root
	if cur == nil {
		return CountedItem[T]{}, false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.item, true
}

// valid checks the subtree at n recursively. Every value must lie strictly between lo and hi
// (nil means unbounded) and every height must be consistent. extra is checked at every node.
func (u *base[T]) valid(n *TreeNode[T], lo, hi *T, extra func(*TreeNode[T]) bool) bool {
	if n == nil {
		return true
	}
	if lo != nil && u.cmp(n.item.v, *lo) <= 0 || hi != nil && u.cmp(n.item.v, *hi) >= 0 {
		return false
	}
	if n.h != max(n.l.height(), n.r.height())+1 || !extra(n) {
		return false
	}
	return u.valid(n.l, lo, &n.item.v, extra) && u.valid(n.r, &n.item.v, hi, extra)
}

func anyNode[T any](*TreeNode[T]) bool { return true }

// equal compares two subtrees recursively in shape, value, count and height.
func (u *base[T]) equal(a, b *TreeNode[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return u.cmp(a.item.v, b.item.v) == 0 && a.item.count == b.item.count && a.h == b.h &&
		u.equal(a.l, b.l) && u.equal(a.r, b.r)
}

func (u *base[T]) equals(o *base[T]) bool {
	return u.sz == o.sz && u.equal(u.root, o.root)
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D) besides the result.
func (u *base[T]) InOrder() []CountedItem[T] {
	items := make([]CountedItem[T], 0, u.sz)
	for next := u.InOrderIter(); ; {
		item, ok := next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(D) besides the result.
func (u *base[T]) PreOrder() []CountedItem[T] {
	items := make([]CountedItem[T], 0, u.sz)
	if u.root == nil {
		return items
	}
	for st := []*TreeNode[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		items = append(items, cur.item)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
	return items
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(width) besides the result.
func (u *base[T]) LevelOrder() []CountedItem[T] {
	items := make([]CountedItem[T], 0, u.sz)
	if u.root == nil {
		return items
	}
	q := Queues.MakeArrayQueue[*TreeNode[T]](u.sz/2 + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		items = append(items, cur.item)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return items
}

// InOrderIter [Tree.InOrderIter]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *base[T]) InOrderIter() func() (CountedItem[T], bool) {
	var st []*TreeNode[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (item CountedItem[T], has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.item, true
	}
}

func (u *base[T]) print(sb *strings.Builder, c *TreeNode[T], d int) {
	if c == nil {
		return
	}
	u.print(sb, c.r, d+1)
	fmt.Fprintf(sb, "%s%v h=%d\n", strings.Repeat("    ", d), c.item, c.h)
	u.print(sb, c.l, d+1)
}

// String draws the tree sideways, right subtree on top, one node per line. Recursive.
func (u *base[T]) String() string {
	var sb strings.Builder
	u.print(&sb, u.root, 0)
	return sb.String()
}

// build makes a perfectly balanced subtree of the sorted values in s recursively, every
// item with count 1.
func build[T any](s []T) *TreeNode[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	n := &TreeNode[T]{item: CountedItem[T]{s[mid], 1}, l: build(s[:mid]), r: build(s[mid+1:])}
	n.updateHeight()
	return n
}

// checkSorted panics with InvalidSliceError unless s is strictly ascending under cmp.
func checkSorted[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) >= 0 {
			panic(InvalidSliceError[T]{s[i-1], s[i], i})
		}
	}
}
