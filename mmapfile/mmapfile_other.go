//go:build !unix

package mmapfile

import (
	"os"

	"github.com/anise-go/anise/errs"
)

// Source is a heap-backed view of a kernel file's bytes, used on platforms
// without an mmap syscall.
type Source struct {
	data []byte
}

// Open reads path fully onto the heap.
func Open(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindIO, "reading kernel file")
	}
	return &Source{data: data}, nil
}

// Bytes returns the loaded byte slice.
func (s *Source) Bytes() []byte { return s.data }

// Close is a no-op on the heap-backed path.
func (s *Source) Close() error { return nil }
