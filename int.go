package bigcodec

import (
	"fmt"
	"io"
	"math"
	"math/big"
)

// Int is an arbitrary-precision signed integer: a Sign and a Nat magnitude,
// with the magnitude empty exactly when the sign is Zero. The zero value
// is 0. Int values are immutable.
//
// Wire form: the sign byte, then the magnitude only when the sign is not
// Zero.
type Int struct {
	neg bool
	mag Nat
}

var _ Codec = (*Int)(nil)

// NewInt pairs a sign with a magnitude. A Zero sign requires a zero
// magnitude and a non-zero sign requires a non-zero one.
func NewInt(s Sign, mag Nat) (Int, error) {
	if !s.Valid() {
		return Int{}, fmt.Errorf("%w: %d", ErrInvalidSign, uint8(s))
	}
	if (s == Zero) != mag.IsZero() {
		return Int{}, fmt.Errorf("%w: %s sign with magnitude %s", ErrNonCanonical, s, mag)
	}
	return Int{neg: s == Negative, mag: mag}, nil
}

func IntFromInt64(v int64) Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return Int{neg: v < 0, mag: NatFromUint64(u)}
}

func IntFromBig(x *big.Int) Int {
	return Int{neg: x.Sign() < 0, mag: NatFromBytesBE(x.Bytes())}
}

func (x Int) Sign() Sign {
	switch {
	case x.mag.IsZero():
		return Zero
	case x.neg:
		return Negative
	}
	return Positive
}

// Magnitude returns |x|.
func (x Int) Magnitude() Nat { return x.mag }

// Big returns x as a new big.Int.
func (x Int) Big() *big.Int {
	b := x.mag.Big()
	if x.Sign() == Negative {
		b.Neg(b)
	}
	return b
}

// Int64 returns x and true if it fits in 64 bits.
func (x Int) Int64() (int64, bool) {
	u, ok := x.mag.Uint64()
	if !ok {
		return 0, false
	}
	if x.Sign() == Negative {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func (x Int) IsZero() bool { return x.mag.IsZero() }

func (x Int) Equal(o Int) bool { return x.Sign() == o.Sign() && x.mag.Equal(o.mag) }

func (x Int) String() string { return x.Big().String() }

// Size returns the encoded size of x.
func (x Int) Size() int {
	if x.IsZero() {
		return 1
	}
	return 1 + x.mag.Size()
}

// Encode writes the canonical encoding of x.
func (x Int) Encode(w *Writer) {
	s := x.Sign()
	s.Encode(w)
	if s != Zero {
		x.mag.Encode(w)
	}
}

// Decode reads one signed integer from the cursor. Sign and magnitude
// errors are returned as is; a zero magnitude under a non-zero sign is
// ErrNonCanonical.
func (x *Int) Decode(r *BytesReader) (err error) {
	defer r.rewind(r.N, &err)

	s, err := DecodeSign(r)
	if err != nil {
		return err
	}
	if s == Zero {
		*x = Int{}
		return nil
	}

	var mag Nat
	if err = mag.Decode(r); err != nil {
		return err
	}
	if mag.IsZero() {
		return fmt.Errorf("%w: %s sign with zero magnitude", ErrNonCanonical, s)
	}

	*x = Int{neg: s == Negative, mag: mag}
	return nil
}

// --- Boilerplate implementations ---

func (x Int) WriteTo(writer io.Writer) (int64, error) {
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	x.Encode(w)
	return w.Result()
}

func (x Int) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(x)
}

func (x Int) MarshalTo(buf []byte) (int, error) {
	return MarshalToGeneric(x, buf)
}

func (x *Int) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(x, data)
}

func (x *Int) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(x, r)
}
