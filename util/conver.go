package util

import (
	"strconv"
	"unsafe"
)

func Str2bytes(s string) []byte {
	return str2bytes(s)
}

func str2bytes(s string) []byte {
	x := (*[2]uintptr)(unsafe.Pointer(&s))
	h := [3]uintptr{x[0], x[1], x[1]}
	return *(*[]byte)(unsafe.Pointer(&h))
}

// Str2Int64 returns 0 for empty or malformed input.
func Str2Int64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
