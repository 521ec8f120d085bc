package bigcodec

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"
)

// MaxVarintLen64 is the longest LEB128 encoding of a uint64.
const MaxVarintLen64 = 10

// AppendUvarint appends the LEB128 varint encoding of v to dst.
func AppendUvarint[T constraints.Unsigned](dst []byte, v T) []byte {
	return protowire.AppendVarint(dst, uint64(v))
}

// SizeUvarint returns the encoded size of v in bytes.
func SizeUvarint(v uint64) int {
	return protowire.SizeVarint(v)
}

// ConsumeUvarint parses a varint from the front of b and returns the value
// and the number of bytes it occupied.
//
// Running out of input is ErrTruncatedData. Overflow, a value above the
// range of T, or a non-minimal encoding is ErrInvalidVarint: every value has
// exactly one accepted varint form.
func ConsumeUvarint[T constraints.Unsigned](b []byte) (T, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		err := protowire.ParseError(n)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, 0, fmt.Errorf("%w: varint: %v", ErrTruncatedData, err)
		}
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidVarint, err)
	}
	if size := protowire.SizeVarint(v); n != size {
		return 0, 0, fmt.Errorf("%w: %d bytes used for a %d byte value", ErrInvalidVarint, n, size)
	}
	if limit := uint64(^T(0)); v > limit {
		return 0, 0, fmt.Errorf("%w: %d overflows uint%d", ErrInvalidVarint, v, bits.Len64(limit))
	}
	return T(v), n, nil
}

func writeUvarint[T constraints.Unsigned](w *Writer, v T) {
	if w.err != nil {
		return
	}
	var buf [MaxVarintLen64]byte
	_, _ = w.Write(AppendUvarint(buf[:0], v))
}

func readUvarint[T constraints.Unsigned](r *BytesReader) (T, error) {
	v, n, err := ConsumeUvarint[T](r.Remaining())
	if err != nil {
		return 0, err
	}
	r.N += n
	return v, nil
}

// WriteUvarint32 writes v as a varint.
func (w *Writer) WriteUvarint32(v uint32) { writeUvarint(w, v) }

// WriteUvarint64 writes v as a varint.
func (w *Writer) WriteUvarint64(v uint64) { writeUvarint(w, v) }

// ReadUvarint32 reads a varint that must fit in 32 bits.
func (r *BytesReader) ReadUvarint32() (uint32, error) { return readUvarint[uint32](r) }

// ReadUvarint64 reads a varint.
func (r *BytesReader) ReadUvarint64() (uint64, error) { return readUvarint[uint64](r) }
