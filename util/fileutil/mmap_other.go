//go:build !linux

package fileutil

import (
	"io"
	"os"
)

func mmap(f *os.File, length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := io.ReadFull(f, b); err != nil {
		return nil, err
	}
	return b, nil
}

func munmap(b []byte) error {
	return nil
}

func madviseSequential(b []byte) error {
	return nil
}
