package fileutil

import (
	"os"

	"github.com/pkg/errors"
)

// MappedFile is a read-only view of a whole file.
type MappedFile struct {
	fd  *os.File
	buf []byte
}

// OpenMapped maps fName read-only. Empty files are not mapped.
func OpenMapped(fName string) (*MappedFile, error) {
	f, err := os.Open(fName)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", fName)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "stat %s", fName)
	}
	if st.IsDir() {
		f.Close()
		return nil, errors.Errorf("%s is a directory", fName)
	}
	m := &MappedFile{fd: f}
	if st.Size() == 0 {
		return m, nil
	}
	m.buf, err = mmap(f, int(st.Size()))
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "mmap %s", fName)
	}
	if err := madviseSequential(m.buf); err != nil {
		m.Close()
		return nil, errors.Wrapf(err, "madvise %s", fName)
	}
	return m, nil
}

// Bytes is valid until Close.
func (m *MappedFile) Bytes() []byte {
	return m.buf
}

func (m *MappedFile) Close() error {
	if m.buf != nil {
		if err := munmap(m.buf); err != nil {
			return err
		}
		m.buf = nil
	}
	return m.fd.Close()
}
