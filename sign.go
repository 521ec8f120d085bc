package bigcodec

import "fmt"

// Sign is the tri-state sign of a signed integer. Its numeric value is its
// wire byte.
type Sign uint8

const (
	Negative Sign = 0
	Zero     Sign = 1
	Positive Sign = 2
)

// Valid reports whether s is one of Negative, Zero or Positive.
func (s Sign) Valid() bool { return s <= Positive }

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return fmt.Sprintf("Sign(%d)", uint8(s))
}

// Encode writes the single sign byte.
func (s Sign) Encode(w *Writer) {
	w.WriteUint8(uint8(s))
}

// DecodeSign reads one sign byte from the cursor.
func DecodeSign(r *BytesReader) (Sign, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: sign byte", ErrTruncatedData)
	}
	s := Sign(b)
	if !s.Valid() {
		r.N--
		return 0, fmt.Errorf("%w: %d, must be 0, 1 or 2", ErrInvalidSign, b)
	}
	return s, nil
}
