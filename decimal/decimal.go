//go:build decimal

package decimal

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/cockroachdb/apd"

	"github.com/oy3o/bigcodec"
)

var (
	// ErrNotFinite indicates an apd.Decimal that is NaN or infinite.
	ErrNotFinite = errors.New("bigcodec/decimal: value is not finite")

	// ErrExponentRange indicates an exponent that apd cannot represent.
	ErrExponentRange = errors.New("bigcodec/decimal: exponent out of apd range")
)

// Decimal is an arbitrary-precision decimal number. The zero value is 0.
type Decimal struct {
	unscaled bigcodec.Int
	exponent int64
}

var _ bigcodec.Codec = (*Decimal)(nil)

// New returns unscaled × 10^(-exponent).
func New(unscaled bigcodec.Int, exponent int64) Decimal {
	return Decimal{unscaled: unscaled, exponent: exponent}
}

func NewFromInt64(unscaled, exponent int64) Decimal {
	return New(bigcodec.IntFromInt64(unscaled), exponent)
}

// Parse reads a decimal string such as "-12.50" or "1e-7". Trailing zeros
// are kept: "12.50" is (1250, 2).
func Parse(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return FromAPD(d)
}

// FromAPD converts a finite apd.Decimal. A negative zero becomes zero.
func FromAPD(d *apd.Decimal) (Decimal, error) {
	if d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("%w: %s", ErrNotFinite, d)
	}
	coeff := new(big.Int).Set(&d.Coeff)
	if d.Negative {
		coeff.Neg(coeff)
	}
	return New(bigcodec.IntFromBig(coeff), -int64(d.Exponent)), nil
}

// APD converts d to an apd.Decimal, whose exponent is the negation of
// d's and limited to 32 bits.
func (d Decimal) APD() (*apd.Decimal, error) {
	if d.exponent < -math.MaxInt32 || d.exponent > -math.MinInt32 {
		return nil, fmt.Errorf("%w: %d", ErrExponentRange, d.exponent)
	}
	out := &apd.Decimal{Exponent: int32(-d.exponent)}
	out.Coeff.Set(d.unscaled.Magnitude().Big())
	out.Negative = d.unscaled.Sign() == bigcodec.Negative
	return out, nil
}

func (d Decimal) Unscaled() bigcodec.Int { return d.unscaled }

func (d Decimal) Exponent() int64 { return d.exponent }

func (d Decimal) IsZero() bool { return d.unscaled.IsZero() }

// Equal compares representations, not numeric values.
func (d Decimal) Equal(o Decimal) bool {
	return d.exponent == o.exponent && d.unscaled.Equal(o.unscaled)
}

func (d Decimal) String() string {
	if a, err := d.APD(); err == nil {
		return a.String()
	}
	// -exponent does not fit in int64 when exponent is math.MinInt64.
	return fmt.Sprintf("%sE%s", d.unscaled, new(big.Int).Neg(big.NewInt(d.exponent)))
}

// Size returns the encoded size of d.
func (d Decimal) Size() int {
	return d.unscaled.Size() + bigcodec.SizeUvarint(bigcodec.ZigzagEncode(d.exponent))
}

// Encode writes the canonical encoding of d.
func (d Decimal) Encode(w *bigcodec.Writer) {
	d.unscaled.Encode(w)
	w.WriteUvarint64(bigcodec.ZigzagEncode(d.exponent))
}

// Decode reads one decimal from the cursor. Errors from the unscaled
// integer are returned as is.
func (d *Decimal) Decode(r *bigcodec.BytesReader) (err error) {
	start := r.N
	defer func() {
		if err != nil {
			r.N = start
		}
	}()

	var unscaled bigcodec.Int
	if err = unscaled.Decode(r); err != nil {
		return err
	}
	z, err := r.ReadUvarint64()
	if err != nil {
		return err
	}

	*d = New(unscaled, bigcodec.ZigzagDecode(z))
	return nil
}

// --- Boilerplate implementations ---

func (d Decimal) WriteTo(writer io.Writer) (int64, error) {
	w, err := bigcodec.NewWriter(writer)
	if err != nil {
		return 0, err
	}
	d.Encode(w)
	return w.Result()
}

func (d Decimal) MarshalBinary() ([]byte, error) {
	return bigcodec.MarshalBinaryGeneric(d)
}

func (d Decimal) MarshalTo(buf []byte) (int, error) {
	return bigcodec.MarshalToGeneric(d, buf)
}

func (d *Decimal) UnmarshalBinary(data []byte) error {
	return bigcodec.UnmarshalBinaryGeneric(d, data)
}

func (d *Decimal) ReadFrom(r io.Reader) (int64, error) {
	return bigcodec.ReadFromGeneric(d, r)
}
