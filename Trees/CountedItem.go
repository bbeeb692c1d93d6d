package Trees

import (
	"fmt"

	Go_Structs "github.com/g-m-twostay/go-structs"
	"golang.org/x/exp/constraints"
)

// CountedItem pairs a value with how often it occurred (BST, AVL) or was retrieved
// (PopularityTree). Only the value takes part in ordering.
type CountedItem[T any] struct {
	v     T
	count int
}

// Count makes a CountedItem holding v with the given count.
func Count[T any](v T, count int) CountedItem[T] {
	return CountedItem[T]{v, count}
}

// Key makes a CountedItem with count 0, which is what the trees expect for a fresh value.
func Key[T any](v T) CountedItem[T] {
	return CountedItem[T]{v, 0}
}

func (u CountedItem[T]) Item() T {
	return u.v
}

func (u CountedItem[T]) Count() int {
	return u.count
}

func (u CountedItem[T]) String() string {
	return fmt.Sprintf("{%v: %d}", u.v, u.count)
}

// CompareItems orders a and b by their values only.
func CompareItems[T constraints.Ordered](a, b CountedItem[T]) int {
	return Go_Structs.Compare(a.v, b.v)
}
