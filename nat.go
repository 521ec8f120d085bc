package bigcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"
	"slices"
)

// Nat is an arbitrary-precision unsigned integer, the magnitude of an Int.
//
// Digits are stored little-endian with no trailing (most-significant) zero
// byte; zero has no digits. The zero value is 0. Nat values are immutable.
//
// Wire form: varint(len) followed by len little-endian digits, whose last
// byte is non-zero. Zero is the single byte 0x00.
type Nat struct {
	digits []byte
}

var _ Codec = (*Nat)(nil)

// trimLE drops most-significant zero bytes from a little-endian digit slice.
func trimLE(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}

// NatFromBytesLE builds a Nat from little-endian digits. Padding is
// trimmed and b is copied.
func NatFromBytesLE(b []byte) Nat {
	d := trimLE(b)
	if len(d) == 0 {
		return Nat{}
	}
	return Nat{digits: bytes.Clone(d)}
}

// NatFromBytesBE builds a Nat from big-endian digits, as produced by
// big.Int.Bytes.
func NatFromBytesBE(b []byte) Nat {
	le := slices.Clone(b)
	slices.Reverse(le)
	le = trimLE(le)
	if len(le) == 0 {
		return Nat{}
	}
	return Nat{digits: le}
}

func NatFromUint64(v uint64) Nat {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return NatFromBytesLE(buf[:])
}

// NatFromBig converts x, which must not be negative.
func NatFromBig(x *big.Int) (Nat, error) {
	if x.Sign() < 0 {
		return Nat{}, fmt.Errorf("%w: %s", ErrNegative, x)
	}
	return NatFromBytesBE(x.Bytes()), nil
}

// BytesLE returns a copy of the little-endian digits. Zero has none.
func (n Nat) BytesLE() []byte { return bytes.Clone(n.digits) }

// Big returns n as a new big.Int.
func (n Nat) Big() *big.Int {
	be := slices.Clone(n.digits)
	slices.Reverse(be)
	return new(big.Int).SetBytes(be)
}

// Uint64 returns n and true if it fits in 64 bits.
func (n Nat) Uint64() (uint64, bool) {
	if len(n.digits) > 8 {
		return 0, false
	}
	var buf [8]byte
	copy(buf[:], n.digits)
	return binary.LittleEndian.Uint64(buf[:]), true
}

func (n Nat) IsZero() bool { return len(n.digits) == 0 }

// Len returns the number of significant digit bytes.
func (n Nat) Len() int { return len(n.digits) }

func (n Nat) Equal(o Nat) bool { return bytes.Equal(n.digits, o.digits) }

func (n Nat) String() string { return n.Big().String() }

// Size returns the encoded size of n.
func (n Nat) Size() int {
	d := trimLE(n.digits)
	if len(d) == 0 {
		return 1
	}
	return SizeUvarint(uint64(len(d))) + len(d)
}

// Encode writes the canonical encoding of n.
func (n Nat) Encode(w *Writer) {
	d := trimLE(n.digits)
	if len(d) == 0 {
		// The zero-length marker.
		w.WriteUint8(0)
		return
	}
	if uint64(len(d)) > math.MaxUint32 {
		w.SetError(fmt.Errorf("%w: %d digit bytes", ErrLengthOverflow, len(d)))
		return
	}
	w.WriteUvarint32(uint32(len(d)))
	w.WriteBytes(d)
}

// Decode reads one magnitude from the cursor. A most-significant zero digit
// is rejected with ErrNonCanonical.
func (n *Nat) Decode(r *BytesReader) (err error) {
	defer r.rewind(r.N, &err)

	length, err := r.ReadUvarint32()
	if err != nil {
		return err
	}
	if uint64(length) > uint64(r.Available()) {
		return fmt.Errorf("%w: magnitude of %d bytes, %d available", ErrTruncatedData, length, r.Available())
	}
	digits, err := r.Next(int(length))
	if err != nil {
		return err
	}
	if length > 0 && digits[length-1] == 0 {
		return fmt.Errorf("%w: magnitude has a zero most-significant byte", ErrNonCanonical)
	}

	*n = Nat{}
	if length > 0 {
		n.digits = bytes.Clone(digits)
	}
	return nil
}

// --- Boilerplate implementations ---

func (n Nat) WriteTo(writer io.Writer) (int64, error) {
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	n.Encode(w)
	return w.Result()
}

func (n Nat) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(n)
}

func (n Nat) MarshalTo(buf []byte) (int, error) {
	return MarshalToGeneric(n, buf)
}

func (n *Nat) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(n, data)
}

func (n *Nat) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(n, r)
}
