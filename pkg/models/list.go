package models

// AppendItem returns a new slice with item added at the end. The input
// slice is never written to.
func AppendItem[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// RemoveAt returns a new slice without the element at index. An index out
// of range is a no-op and the input is returned unchanged.
func RemoveAt[T any](list []T, index int) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// UpdateAt returns a new slice where the element at index is replaced by
// fn applied to it. Out of range indexes leave the list unchanged.
func UpdateAt[T any](list []T, index int, fn func(T) T) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]T, len(list))
	copy(out, list)
	out[index] = fn(out[index])
	return out
}

// InRange reports whether index addresses an element of list
func InRange[T any](list []T, index int) bool {
	return index >= 0 && index < len(list)
}
