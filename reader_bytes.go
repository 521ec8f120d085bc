package bigcodec

import (
	"fmt"
	"io"
)

// BytesReader is the decoding cursor over a fully materialized byte slice.
// Decoders split prefixes off it with Next and never copy unless they must
// hand out independently owned data.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// Next splits off the next n bytes and advances past them. The returned
// slice aliases the source buffer.
func (r *BytesReader) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSeek
	}
	if n == 0 {
		return nil, nil
	}
	if r.Available() < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d available", ErrTruncatedData, n, r.Available())
	}
	b := r.B[r.N : r.N+n]
	r.N += n
	return b, nil
}

// Remaining returns the unread part of the buffer without advancing.
func (r *BytesReader) Remaining() []byte {
	if r.N >= len(r.B) {
		return nil
	}
	return r.B[r.N:]
}

// Seek implements the [io.Seeker] interface.
func (r *BytesReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.N) + offset
	case io.SeekEnd:
		abs = int64(len(r.B)) + offset
	default:
		return 0, ErrInvalidWhence
	}

	if abs < 0 {
		return 0, ErrInvalidSeek
	}

	r.N = int(abs)
	return abs, nil
}

// Reset allows the underlying byte slice to be reused.
func (r *BytesReader) Reset() { r.N = 0 }

// Len returns the number of bytes read.
func (r *BytesReader) Len() int { return r.N }

// Size returns the size of the underlying byte slice.
func (r *BytesReader) Size() int { return len(r.B) }

// Available returns the number of bytes available for reading.
func (r *BytesReader) Available() int {
	length := len(r.B) - r.N
	if length <= 0 {
		return 0
	}
	return length
}

// rewind restores the cursor to pos when *err is set. Decoders defer it so
// a failed decode consumes nothing.
func (r *BytesReader) rewind(pos int, err *error) {
	if *err != nil {
		r.N = pos
	}
}
