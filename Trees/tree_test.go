package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/btree"
)

var rg = rand.New(rand.NewSource(0))

const (
	tOpN      = 4000
	tValRange = 1000
)

// depth is the average depth of the leaves.
func depth[T any](n *TreeNode[T], d int, leaves, sum *int) {
	if n == nil {
		return
	}
	if n.l == nil && n.r == nil {
		*leaves++
		*sum += d
	}
	depth(n.l, d+1, leaves, sum)
	depth(n.r, d+1, leaves, sum)
}

func avgDepth[T any](u *base[T]) float32 {
	var leaves, sum int
	depth(u.root, 1, &leaves, &sum)
	if leaves == 0 {
		return 0
	}
	return float32(sum) / float32(leaves)
}

type counted struct {
	v, count int
}

func lessCounted(a, b counted) bool { return a.v < b.v }

// checkAgainst compares tree with the oracle in content and counts.
func checkAgainst(t *testing.T, tree Tree[int], oracle *btree.BTreeG[counted]) {
	t.Helper()
	if !tree.IsValid() {
		t.Fatalf("tree is invalid:\n%v", tree)
	}
	if tree.Size() != oracle.Len() {
		t.Fatalf("tree size is %d, want %d", tree.Size(), oracle.Len())
	}
	got := tree.InOrder()
	if !slices.IsSortedFunc(got, CompareItems[int]) {
		t.Fatalf("in-order items aren't sorted: %v", got)
	}
	i := 0
	oracle.Ascend(func(c counted) bool {
		if got[i].Item() != c.v || got[i].Count() != c.count {
			t.Fatalf("item %d is %v, want {%d: %d}", i, got[i], c.v, c.count)
		}
		i++
		return true
	})
}

// mixedOps applies random inserts and removes to tree and a btree oracle that mirrors the
// counting rule of BST and AVL.
func mixedOps(t *testing.T, tree Tree[int]) {
	oracle := btree.NewG[counted](4, lessCounted)
	for _i := 0; _i < tOpN; _i++ {
		k := rg.Intn(tValRange)
		if rg.Intn(3) == 0 {
			c, in := oracle.Get(counted{v: k})
			if tree.Remove(k) != in {
				t.Fatalf("removing %d should report %v", k, in)
			}
			if c.count > 1 {
				c.count--
				oracle.ReplaceOrInsert(c)
			} else if in {
				oracle.Delete(c)
			}
		} else {
			tree.Insert(Key(k))
			c, _ := oracle.Get(counted{v: k})
			c.v = k
			c.count++
			oracle.ReplaceOrInsert(c)
		}
		if !tree.IsValid() {
			t.Fatalf("tree is invalid after operating on %d", k)
		}
	}
	checkAgainst(t, tree, oracle)
	for !tree.Empty() {
		m, _ := tree.Minimum()
		if !tree.Remove(m.Item()) {
			t.Fatalf("failed to remove minimum %v", m)
		}
		if !tree.IsValid() {
			t.Fatalf("tree is invalid after removing %v", m)
		}
	}
	if tree.Size() != 0 || tree.Height() != 0 {
		t.Fatalf("drained tree has size %d and height %d", tree.Size(), tree.Height())
	}
}

func TestBST_Mixed(t *testing.T) {
	tree := NewBST[int]()
	mixedOps(t, tree)
}

func TestAVL_Mixed(t *testing.T) {
	tree := NewAVL[int]()
	mixedOps(t, tree)
}

func TestBST_Counts(t *testing.T) {
	tree := NewBST[int]()
	for _, v := range []int{5, 3, 8, 3} {
		tree.Insert(Key(v))
	}
	if tree.Size() != 3 {
		t.Fatalf("tree size is %d, want 3", tree.Size())
	}
	if c, ok := tree.Retrieve(3); !ok || c.Count() != 2 {
		t.Fatalf("retrieved %v, %v; want count 2", c, ok)
	}
	if _, ok := tree.Retrieve(4); ok {
		t.Fatalf("retrieved a non existent key 4")
	}
	if !tree.Remove(3) || !tree.Contains(3) || tree.Size() != 3 {
		t.Fatalf("first removal of 3 should only decrement it")
	}
	if !tree.Remove(3) || tree.Contains(3) || tree.Size() != 2 {
		t.Fatalf("second removal of 3 should delete it")
	}
	if tree.Remove(3) {
		t.Fatalf("can remove 3 a third time")
	}
	tree.Insert(Count(9, 4))
	if c, _ := tree.Retrieve(9); c.Count() != 5 {
		t.Fatalf("new item with count 4 is stored with %d, want 5", c.Count())
	}
}

func TestBST_RemoveTwoChildren(t *testing.T) {
	tree := NewBST[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 35, 45} {
		tree.Insert(Key(v))
	}
	tree.Remove(30)
	// 20 is the predecessor of 30
	want := []int{50, 20, 40, 35, 45, 70}
	if got := items(tree.PreOrder()); !slices.Equal(got, want) {
		t.Fatalf("pre-order after removal is %v, want %v", got, want)
	}
	if !tree.IsValid() {
		t.Fatalf("tree is invalid after removal")
	}
}

func items(cs []CountedItem[int]) []int {
	vs := make([]int, len(cs))
	for i, c := range cs {
		vs[i] = c.Item()
	}
	return vs
}

func TestAVL_Height(t *testing.T) {
	tree := NewAVL[int]()
	for i := 1; i <= 1023; i++ {
		tree.Insert(Key(i))
		if !tree.IsValid() {
			t.Fatalf("tree is invalid after inserting %d", i)
		}
	}
	if tree.Height() > 10 {
		t.Fatalf("tree height is %d, want at most 10", tree.Height())
	}
	t.Logf("depth: %f, size: %d.\n", avgDepth(&tree.base), tree.Size())
	bst := NewBST[int]()
	for i := 1; i <= 100; i++ {
		bst.Insert(Key(i))
	}
	if bst.Height() != 100 {
		t.Fatalf("sequential BST height is %d, want 100", bst.Height())
	}
}

func TestAVL_Rotations(t *testing.T) {
	for _, seq := range [][]int{{1, 2, 3}, {3, 2, 1}, {1, 3, 2}, {3, 1, 2}} {
		tree := NewAVL[int]()
		for _, v := range seq {
			tree.Insert(Key(v))
		}
		if got := items(tree.PreOrder()); !slices.Equal(got, []int{2, 1, 3}) {
			t.Fatalf("inserting %v gives pre-order %v, want [2 1 3]", seq, got)
		}
	}
}

func TestPopularityTree_Root(t *testing.T) {
	tree := NewPopularityTree[int]()
	for i := 1; i <= 7; i++ {
		tree.Insert(Key(i))
	}
	for i := 1; i <= 7; i++ {
		tree.Retrieve(i)
		if !tree.IsValid() {
			t.Fatalf("tree is invalid after retrieving %d", i)
		}
	}
	for _i := 0; _i < 5; _i++ {
		tree.Retrieve(4)
	}
	if tree.root.item.Item() != 4 {
		t.Fatalf("root is %v, want 4\n%v", tree.root.item, tree)
	}
	if c, _ := tree.Retrieve(4); c.Count() != 7 {
		t.Fatalf("count of 4 is %d, want 7", c.Count())
	}
}

func TestPopularityTree_Insert(t *testing.T) {
	tree := NewPopularityTree[int]()
	for _, v := range []int{5, 3, 8, 3} {
		tree.Insert(Key(v))
	}
	if c, _ := tree.Retrieve(3); c.Count() != 1 {
		t.Fatalf("count of 3 is %d after a single retrieval, want 1", c.Count())
	}
	tree.Insert(Count(9, 3))
	if !tree.IsValid() {
		t.Fatalf("tree is invalid after inserting a counted item\n%v", tree)
	}
	if tree.root.item.Item() != 9 {
		t.Fatalf("root is %v, want 9", tree.root.item)
	}
}

func TestPopularityTree_Mixed(t *testing.T) {
	tree := NewPopularityTree[int]()
	content := make(map[int]int)
	for _i := 0; _i < tOpN; _i++ {
		k := rg.Intn(tValRange / 4)
		switch rg.Intn(4) {
		case 0:
			c, in := content[k]
			if tree.Remove(k) != in {
				t.Fatalf("removing %d should report %v", k, in)
			}
			if c > 1 {
				content[k] = c - 1
			} else {
				delete(content, k)
			}
		case 1:
			if _, in := content[k]; !in {
				content[k] = 0
			}
			tree.Insert(Key(k))
		default:
			c, in := content[k]
			got, ok := tree.Retrieve(k)
			if ok != in || ok && got.Count() != c+1 {
				t.Fatalf("retrieved %v, %v; want count %d, %v", got, ok, c+1, in)
			}
			if in {
				content[k] = c + 1
			}
		}
		if !tree.IsValid() {
			t.Fatalf("tree is invalid after operating on %d", k)
		}
	}
	if tree.Size() != len(content) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for _, c := range tree.InOrder() {
		if content[c.Item()] != c.Count() {
			t.Fatalf("count of %d is %d, want %d", c.Item(), c.Count(), content[c.Item()])
		}
	}
	t.Logf("depth: %f, size: %d.\n", avgDepth(&tree.base), tree.Size())
}

func TestTree_Comparisons(t *testing.T) {
	tree := From([]int{1, 2, 3, 4, 5, 6, 7})
	tree.Retrieve(4)
	if tree.Comparisons() != 1 {
		t.Fatalf("retrieving the root made %d comparisons", tree.Comparisons())
	}
	tree.Retrieve(7)
	tree.Contains(1)
	if tree.Comparisons() != 4 {
		t.Fatalf("comparisons is %d, want 4", tree.Comparisons())
	}
	tree.ResetComparisons()
	if tree.Comparisons() != 0 {
		t.Fatalf("comparisons not reset")
	}
}

func TestTree_Traversals(t *testing.T) {
	tree := From([]int{1, 2, 3, 4, 5, 6, 7})
	if got := items(tree.InOrder()); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("in-order is %v", got)
	}
	if got := items(tree.PreOrder()); !slices.Equal(got, []int{4, 2, 1, 3, 6, 5, 7}) {
		t.Fatalf("pre-order is %v", got)
	}
	if got := items(tree.LevelOrder()); !slices.Equal(got, []int{4, 2, 6, 1, 3, 5, 7}) {
		t.Fatalf("level-order is %v", got)
	}
	next := tree.InOrderIter()
	for i := 1; i <= 7; i++ {
		if c, ok := next(); !ok || c.Item() != i {
			t.Fatalf("iterator gave %v, %v; want %d", c, ok, i)
		}
	}
	if _, ok := next(); ok {
		t.Fatalf("iterator isn't exhausted")
	}
	if m, _ := tree.Minimum(); m.Item() != 1 {
		t.Fatalf("minimum is %v", m)
	}
	if m, _ := tree.Maximum(); m.Item() != 7 {
		t.Fatalf("maximum is %v", m)
	}
	empty := NewAVL[int]()
	if len(empty.InOrder()) != 0 || len(empty.PreOrder()) != 0 || len(empty.LevelOrder()) != 0 {
		t.Fatalf("empty tree has items")
	}
	if _, ok := empty.Minimum(); ok {
		t.Fatalf("empty tree has a minimum")
	}
	if _, ok := empty.InOrderIter()(); ok {
		t.Fatalf("empty tree iterator gave an item")
	}
}

func TestFrom(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = i * 2
	}
	a, b := FromAVL(s), NewAVL[int]()
	if !a.IsValid() || a.Size() != 100 || a.Height() != 7 {
		t.Fatalf("FromAVL gave an invalid tree of size %d and height %d", a.Size(), a.Height())
	}
	for _, v := range s {
		b.Insert(Key(v))
	}
	if !slices.Equal(a.InOrder(), b.InOrder()) {
		t.Fatalf("FromAVL and Insert disagree on content")
	}
	if !From(s).Equals(From(s)) || From(s).Equals(From(s[1:])) {
		t.Fatalf("Equals is wrong")
	}
	defer func() {
		var e InvalidSliceError[int]
		if err, ok := recover().(error); !ok || !errors.As(err, &e) || e.Index != 2 || e.Prev != 3 {
			t.Fatalf("recovered %v, want InvalidSliceError at 2", err)
		}
	}()
	From([]int{1, 3, 3, 4})
}

func TestTreeFunc(t *testing.T) {
	tree := NewAVLFunc(func(a, b string) int { return len(a) - len(b) })
	for _, s := range []string{"ccc", "a", "bb", "dd"} {
		tree.Insert(Key(s))
	}
	if tree.Size() != 3 {
		t.Fatalf("tree size is %d, want 3", tree.Size())
	}
	if c, ok := tree.Retrieve("xx"); !ok || c.Item() != "bb" || c.Count() != 2 {
		t.Fatalf("retrieved %v, %v", c, ok)
	}
}

func TestCompareItems(t *testing.T) {
	if CompareItems(Count(3, 9), Count(3, 1)) != 0 {
		t.Fatalf("items with equal values but different counts don't compare equal")
	}
	if CompareItems(Key(2), Count(3, 0)) >= 0 || CompareItems(Key(4), Key(3)) <= 0 {
		t.Fatalf("items aren't ordered by value")
	}
	cs := []CountedItem[int]{Count(5, 1), Key(1), Count(3, 7), Key(4)}
	slices.SortFunc(cs, CompareItems[int])
	if got := items(cs); !slices.Equal(got, []int{1, 3, 4, 5}) {
		t.Fatalf("sorted items are %v", got)
	}
	// a tree ordered by whole items agrees with one ordered by values
	a, b := NewAVLFunc(CompareItems[int]), NewAVL[int]()
	for _, v := range rg.Perm(100) {
		a.Insert(Key(Key(v)))
		b.Insert(Key(v))
	}
	for i, c := range a.InOrder() {
		if c.Item().Item() != i || c.Count() != 1 {
			t.Fatalf("item %d is %v", i, c)
		}
	}
	if a.Height() != b.Height() {
		t.Fatalf("heights differ: %d and %d", a.Height(), b.Height())
	}
}
