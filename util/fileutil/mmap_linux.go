package fileutil

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func mmap(f *os.File, length int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ, syscall.MAP_SHARED)
}

func munmap(b []byte) error {
	return unix.Munmap(b)
}

// madviseSequential hints that the mapping is read front to back once.
func madviseSequential(b []byte) error {
	return unix.Madvise(b, unix.MADV_SEQUENTIAL)
}
