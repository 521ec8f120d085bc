package bigcodec

import (
	"fmt"
	"io"
	"math"
)

// element is the pointer side of a value type usable in a Seq.
type element[T any] interface {
	*T
	Sizer
	Encoder
	Decoder
}

// Seq is a count-prefixed sequence of values of one codec type, such as a
// list of amounts.
//
// Wire form: varint(count) followed by each item's encoding. The empty
// sequence is the single byte 0x00.
type Seq[T any, PT element[T]] struct {
	Items []T
}

var (
	_ Codec = (*Seq[Int, *Int])(nil)
	_ Codec = (*Seq[Nat, *Nat])(nil)
)

// NewSeq wraps items. The slice is not copied.
func NewSeq[T any, PT element[T]](items ...T) *Seq[T, PT] {
	return &Seq[T, PT]{Items: items}
}

func (s *Seq[T, PT]) Len() int { return len(s.Items) }

// Size returns the encoded size of the whole sequence.
func (s *Seq[T, PT]) Size() int {
	total := SizeUvarint(uint64(len(s.Items)))
	for i := range s.Items {
		total += PT(&s.Items[i]).Size()
	}
	return total
}

// Encode writes the count and then every item in order.
func (s *Seq[T, PT]) Encode(w *Writer) {
	if uint64(len(s.Items)) > math.MaxUint32 {
		w.SetError(fmt.Errorf("%w: %d items", ErrLengthOverflow, len(s.Items)))
		return
	}
	w.WriteUvarint32(uint32(len(s.Items)))
	for i := range s.Items {
		PT(&s.Items[i]).Encode(w)
	}
}

// Decode reads a count and that many items. Item errors are wrapped with
// the item index; errors.Is still sees the original kind.
func (s *Seq[T, PT]) Decode(r *BytesReader) (err error) {
	defer r.rewind(r.N, &err)

	count, err := r.ReadUvarint32()
	if err != nil {
		return err
	}
	// Every encoding is at least one byte, so a count larger than the
	// remaining input can be rejected before allocating.
	if uint64(count) > uint64(r.Available()) {
		return fmt.Errorf("%w: %d items, %d bytes available", ErrTruncatedData, count, r.Available())
	}

	items := make([]T, count)
	for i := range items {
		if err = PT(&items[i]).Decode(r); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	s.Items = items
	return nil
}

// --- Boilerplate implementations ---

func (s *Seq[T, PT]) WriteTo(writer io.Writer) (int64, error) {
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	s.Encode(w)
	return w.Result()
}

func (s *Seq[T, PT]) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(s)
}

func (s *Seq[T, PT]) MarshalTo(buf []byte) (int, error) {
	return MarshalToGeneric(s, buf)
}

func (s *Seq[T, PT]) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(s, data)
}

func (s *Seq[T, PT]) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(s, r)
}
