//go:build unix

// Package mmapfile loads kernel files as read-only byte slices, either
// memory-mapped (unix) or fully read onto the heap (non-unix fallback),
// so an Almanac's immutable-construction model (every Load* shares prior
// kernel bytes) can be cheap. No reference count is kept: sharing relies on
// Go references to the same Source.
package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/anise-go/anise/errs"
)

// Source is a read-only view of a kernel file's bytes.
type Source struct {
	data   []byte
	mapped bool
}

// Open memory-maps path read-only.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindIO, "opening kernel file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(err, errs.KindIO, "statting kernel file")
	}
	size := info.Size()
	if size == 0 {
		return &Source{data: nil, mapped: false}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindIO, "mmap kernel file")
	}
	return &Source{data: data, mapped: true}, nil
}

// Bytes returns the mapped byte slice.
func (s *Source) Bytes() []byte { return s.data }

// Close unmaps the underlying memory, if mapped.
func (s *Source) Close() error {
	if !s.mapped {
		return nil
	}
	return unix.Munmap(s.data)
}
