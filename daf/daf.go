// Package daf reads the Double precision Array File (DAF) binary format
// shared by SPK ephemeris kernels and PCK/BPC planetary-orientation
// kernels: a 1024-byte file record, a chain of 1024-byte summary records,
// and the double-precision segment data they point into.
package daf

import (
	"encoding/binary"
	"math"

	"github.com/anise-go/anise/errs"
)

const recordLen = 1024

// Kind discriminates which DAF architecture a file declares.
type Kind int

const (
	KindSPK Kind = iota
	KindPCK
)

// File is a parsed DAF file: its header fields and raw byte source, ready
// to walk the summary record chain and slice out segment data.
type File struct {
	Kind       Kind
	ND, NI     int
	data       []byte
	order      binary.ByteOrder
	fward      int
}

// Open validates the DAF identification word and header, selecting the
// byte order from the file's endianness marker. It never partially loads a
// file: any structural problem is reported before any segment is read.
func Open(data []byte) (*File, error) {
	if len(data) < recordLen {
		return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
	}
	locidw := string(data[0:8])
	var kind Kind
	switch locidw {
	case "DAF/SPK ":
		kind = KindSPK
	case "DAF/PCK ":
		kind = KindPCK
	default:
		return nil, errs.New(errs.KindDecoding, errs.ReasonInvalidMarker)
	}

	marker := string(data[88:96])
	var order binary.ByteOrder
	switch marker {
	case "LTL-IEEE":
		order = binary.LittleEndian
	case "BIG-IEEE":
		order = binary.BigEndian
	default:
		// Some producers leave this field blank; fall back to little-endian,
		// the overwhelmingly common case for modern SPICE kernels. Any other
		// marker is rejected.
		for _, b := range data[88:96] {
			if b != 0 && b != ' ' {
				return nil, errs.New(errs.KindDecoding, errs.ReasonUnsupportedEndianness)
			}
		}
		order = binary.LittleEndian
	}

	nd := int(order.Uint32(data[8:12]))
	ni := int(order.Uint32(data[12:16]))
	fward := int(order.Uint32(data[76:80]))

	return &File{
		Kind: kind, ND: nd, NI: ni, data: data, order: order, fward: fward,
	}, nil
}

// Summary is one parsed summary-record entry: ND double-precision
// descriptors followed by NI integer descriptors, plus the 1-based
// double-word address range of the segment it describes.
type Summary struct {
	Doubles  []float64
	Integers []int32
	StartAddr, EndAddr int // 1-based double-word addresses
}

// summaryDoubleWords returns the number of double-precision words a single
// summary occupies: ND doubles plus ceil(NI/2) doubles worth of packed
// 32-bit integers.
func (f *File) summaryDoubleWords() int {
	return f.ND + (f.NI+1)/2
}

// Summaries walks the forward summary-record chain starting at FWARD and
// returns every summary in file order (first-seen order is preserved,
// matching the tie-break rule callers apply across segments).
func (f *File) Summaries() ([]Summary, error) {
	var out []Summary
	recNum := f.fward
	summaryWords := f.summaryDoubleWords()
	summaryBytes := summaryWords * 8

	seen := map[int]bool{}
	for recNum != 0 {
		if seen[recNum] {
			return nil, errs.New(errs.KindDecoding, "cyclic summary record chain")
		}
		seen[recNum] = true

		offset := int64(recNum-1) * recordLen
		if offset < 0 || offset+recordLen > int64(len(f.data)) {
			return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
		}
		rec := f.data[offset : offset+recordLen]

		next := int(math.Float64frombits(f.order.Uint64(rec[0:8])))
		nSummaries := int(math.Float64frombits(f.order.Uint64(rec[16:24])))

		pos := 24
		for i := 0; i < nSummaries; i++ {
			if pos+summaryBytes > recordLen {
				return nil, errs.New(errs.KindDecoding, errs.ReasonTruncatedRecord)
			}
			raw := rec[pos : pos+summaryBytes]

			doubles := make([]float64, f.ND)
			for d := 0; d < f.ND; d++ {
				doubles[d] = math.Float64frombits(f.order.Uint64(raw[d*8 : d*8+8]))
			}
			intOff := f.ND * 8
			ints := make([]int32, f.NI)
			for k := 0; k < f.NI; k++ {
				ints[k] = int32(f.order.Uint32(raw[intOff+k*4:]))
			}

			start := int(ints[f.NI-2])
			end := int(ints[f.NI-1])
			out = append(out, Summary{Doubles: doubles, Integers: ints, StartAddr: start, EndAddr: end})

			pos += summaryBytes
		}
		recNum = next
	}
	return out, nil
}

// Segment returns the raw double-precision words addressed by a summary's
// [StartAddr, EndAddr] range (1-based, inclusive).
func (f *File) Segment(s Summary) ([]float64, error) {
	nWords := s.EndAddr - s.StartAddr + 1
	if nWords <= 0 {
		return nil, errs.New(errs.KindDecoding, errs.ReasonSummaryOutOfBounds)
	}
	byteOff := int64(s.StartAddr-1) * 8
	byteLen := int64(nWords) * 8
	if byteOff < 0 || byteOff+byteLen > int64(len(f.data)) {
		return nil, errs.New(errs.KindDecoding, errs.ReasonSummaryOutOfBounds)
	}
	raw := f.data[byteOff : byteOff+byteLen]
	out := make([]float64, nWords)
	for i := range out {
		out[i] = math.Float64frombits(f.order.Uint64(raw[i*8 : i*8+8]))
	}
	return out, nil
}

// ByteOrder returns the byte order selected for this file, exposed for
// callers that need to read adjacent raw structures (e.g. comment area).
func (f *File) ByteOrder() binary.ByteOrder { return f.order }
