package util

import "time"

// Ternary operator.
// If 'cond' is true then returns 'a', otherwise returns 'b'
func Ternary[T any](cond bool, a T, b T) T {
	if cond {
		return a
	}

	return b
}

// Returns zero value of T if 'ptr' is nil,
// otherwise returns dereferenced 'ptr'.
func SafeDereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}

	return *ptr
}

func UnixTimeNow() int64 {
	return time.Now().UTC().UnixMilli()
}
