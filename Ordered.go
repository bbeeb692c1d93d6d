package Go_Structs

import "golang.org/x/exp/constraints"

// Compare returns -1 if a<b, 1 if a>b and 0 otherwise. It's the default comparison used by
// the constructors that take constraints.Ordered element types.
func Compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Reverse flips the order given by cmp. Useful for building max-first priority queues.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
