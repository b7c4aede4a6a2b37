// Package dataset implements the PCA (Planetary Constants) and EPA (Euler
// Parameter) container format: a DER-encoded header and lookup table
// wrapping a sequence of typed entries, checksummed with CRC32.
package dataset

import (
	"bytes"
	"encoding/asn1"
	"hash/crc32"
	"hash/fnv"

	"github.com/anise-go/anise/errs"
)

// Kind discriminates the payload a DataSet carries.
type Kind int

const (
	KindPCA Kind = iota
	KindEPA
)

// DefaultCapacity is the default maximum number of entries a LUT will
// accept for a PCA dataset; EPA datasets default to DefaultEPACapacity.
const (
	DefaultCapacity    = 256
	DefaultEPACapacity = 32
)

// version is the DER-encoded [major, minor, patch] triple embedded in a
// dataset header.
type version struct {
	Major, Minor, Patch int
}

// expectedMajorVersion and expectedMinorVersion are the schema version this
// package encodes and is willing to decode. A bumped minor component
// signals an incompatible schema change (new required field, changed
// encoding of an existing one) and is rejected rather than silently
// accepted, since a DER body decoded against the wrong schema can parse
// without error yet carry wrong values.
const (
	expectedMajorVersion = 1
	expectedMinorVersion = 0
)

// derHeader is the ASN.1 DER structure encoded at the front of a dataset's
// byte representation.
type derHeader struct {
	Version version
	Kind    int
	CRC32   int64
}

// derEntry is one LUT row: an ID, an optional name, and an opaque payload
// blob (the caller decodes Entries[i].Payload with a type-specific codec).
type derEntry struct {
	ID      int64
	Name    string
	Payload []byte
}

type derBody struct {
	Entries []derEntry
}

// Entry is implemented by PlanetaryData and EulerParameter: anything that
// can serialize itself to the opaque payload bytes a LUT row carries.
// Decoding goes through UnmarshalPayload on a pointer to the entry type
// (see Decode).
type Entry interface {
	MarshalPayload() ([]byte, error)
}

// Record pairs a decoded Entry with its LUT identity.
type Record[T Entry] struct {
	ID   int64
	Name string
	Data T
}

// DataSet is a decoded PCA or EPA container: a header plus a capacity-
// bounded lookup table indexed by both ID and a truncated FNV-1a64 name
// hash.
type DataSet[T Entry] struct {
	Kind     Kind
	Version  [3]int
	Records  []Record[T]
	Capacity int

	byID   map[int64]int
	byName map[uint32][]int
}

// New builds an empty DataSet with the given capacity (DefaultCapacity or
// DefaultEPACapacity are the conventional choices for PCA/EPA respectively).
func New[T Entry](kind Kind, capacity int) *DataSet[T] {
	return &DataSet[T]{
		Kind: kind, Version: [3]int{1, 0, 0}, Capacity: capacity,
		byID: map[int64]int{}, byName: map[uint32][]int{},
	}
}

// nameHash returns the truncated 32-bit FNV-1a64 hash of name, the LUT's
// name-index key.
func nameHash(name string) uint32 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return uint32(h.Sum64())
}

// Insert appends a record, enforcing the dataset's capacity bound.
func (ds *DataSet[T]) Insert(id int64, name string, data T) error {
	if len(ds.Records) >= ds.Capacity {
		return errs.New(errs.KindAlmanac, errs.ReasonKernelCapacityExceeded)
	}
	idx := len(ds.Records)
	ds.Records = append(ds.Records, Record[T]{ID: id, Name: name, Data: data})
	ds.byID[id] = idx
	if name != "" {
		h := nameHash(name)
		ds.byName[h] = append(ds.byName[h], idx)
	}
	return nil
}

// ByID looks up a record by its integer ID.
func (ds *DataSet[T]) ByID(id int64) (Record[T], bool) {
	idx, ok := ds.byID[id]
	if !ok {
		return Record[T]{}, false
	}
	return ds.Records[idx], true
}

// ByName looks up a record by name, resolving hash collisions by comparing
// the stored name, in insertion order (first-seen wins among collisions).
func (ds *DataSet[T]) ByName(name string) (Record[T], bool) {
	h := nameHash(name)
	for _, idx := range ds.byName[h] {
		if ds.Records[idx].Name == name {
			return ds.Records[idx], true
		}
	}
	return Record[T]{}, false
}

// Encode serializes the dataset to its canonical DER representation: a
// header (version, kind, CRC32-over-body) followed by the DER-encoded
// body. The CRC is computed last, over the finalized body bytes, so
// Encode(Decode(b)) reproduces b exactly (round-trip property).
func Encode[T Entry](ds *DataSet[T]) ([]byte, error) {
	body := derBody{}
	for _, r := range ds.Records {
		payload, err := r.Data.MarshalPayload()
		if err != nil {
			return nil, errs.Wrap(err, errs.KindDecoding, "marshal entry payload")
		}
		body.Entries = append(body.Entries, derEntry{ID: r.ID, Name: r.Name, Payload: payload})
	}
	bodyBytes, err := asn1.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindDecoding, "marshal dataset body")
	}

	checksum := crc32.ChecksumIEEE(bodyBytes)
	header := derHeader{
		Version: version{ds.Version[0], ds.Version[1], ds.Version[2]},
		Kind:    int(ds.Kind),
		CRC32:   int64(checksum),
	}
	headerBytes, err := asn1.Marshal(header)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindDecoding, "marshal dataset header")
	}

	out := make([]byte, 0, len(headerBytes)+len(bodyBytes))
	out = append(out, headerBytes...)
	out = append(out, bodyBytes...)
	return out, nil
}

// Decode parses a DER dataset, verifying its CRC32 checksum before
// decoding any entry, so a corrupted container is rejected before any
// partial data is exposed. newEntry constructs a zero-value T for each
// decoded record to call (*T).UnmarshalPayload on.
func Decode[T Entry, PT interface {
	*T
	UnmarshalPayload([]byte) error
}](data []byte, newEntry func() T) (*DataSet[T], error) {
	var header derHeader
	rest, err := asn1.Unmarshal(data, &header)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindDecoding, errs.ReasonInvalidMarker)
	}

	if header.Version.Major != expectedMajorVersion || header.Version.Minor != expectedMinorVersion {
		return nil, errs.New(errs.KindDecoding, errs.ReasonIncompatibleVersion)
	}

	checksum := crc32.ChecksumIEEE(rest)
	if int64(checksum) != header.CRC32 {
		return nil, errs.New(errs.KindDecoding, errs.ReasonChecksumMismatch)
	}

	var body derBody
	if _, err := asn1.Unmarshal(rest, &body); err != nil {
		return nil, errs.Wrap(err, errs.KindDecoding, "unmarshal dataset body")
	}

	kind := Kind(header.Kind)
	capacity := DefaultCapacity
	if kind == KindEPA {
		capacity = DefaultEPACapacity
	}
	if len(body.Entries) > capacity {
		return nil, errs.New(errs.KindAlmanac, errs.ReasonKernelCapacityExceeded)
	}

	ds := New[T](kind, capacity)
	ds.Version = [3]int{header.Version.Major, header.Version.Minor, header.Version.Patch}

	for _, e := range body.Entries {
		entry := newEntry()
		if err := PT(&entry).UnmarshalPayload(e.Payload); err != nil {
			return nil, errs.Wrap(err, errs.KindDecoding, "unmarshal entry payload")
		}
		if err := ds.Insert(e.ID, e.Name, entry); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Equal reports whether two encoded datasets are byte-identical, used by
// round-trip tests.
func Equal(a, b []byte) bool { return bytes.Equal(a, b) }
