package util

// Map applies the given function to each element in the slice and returns a new slice with the results
func Map[T any, R any](slice []T, f func(T) R) []R {
	result := make([]R, len(slice))
	for i, v := range slice {
		result[i] = f(v)
	}
	return result
}

// Run is a maximal stretch of adjacent elements sharing the same key.
type Run[K comparable, T any] struct {
	Key   K
	Items []T
}

// ChunkBy splits the slice into runs of adjacent elements with equal keys, keeping order.
// Equal keys separated by a different key end up in separate runs.
func ChunkBy[T any, K comparable](slice []T, key func(T) K) []Run[K, T] {
	var runs []Run[K, T]
	for _, v := range slice {
		k := key(v)
		if n := len(runs); n > 0 && runs[n-1].Key == k {
			runs[n-1].Items = append(runs[n-1].Items, v)
			continue
		}
		runs = append(runs, Run[K, T]{Key: k, Items: []T{v}})
	}
	return runs
}
