package bigcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqEncoding(t *testing.T) {
	s := NewSeq(IntFromInt64(-5), Int{}, IntFromInt64(256))

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	expected := []byte{
		0x03,             // count
		0x00, 0x01, 0x05, // -5
		0x01,                   // 0
		0x02, 0x02, 0x00, 0x01, // 256
	}
	assert.Equal(t, expected, data)
	assert.Equal(t, len(data), s.Size())

	var got Seq[Int, *Int]
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, 3, got.Len())
	for i := range s.Items {
		assert.True(t, got.Items[i].Equal(s.Items[i]), "item %d", i)
	}
}

func TestSeqEmpty(t *testing.T) {
	data, err := NewSeq[Nat]().MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, data)

	var got Seq[Nat, *Nat]
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Zero(t, got.Len())
}

func TestSeqDecodeErrors(t *testing.T) {
	tcs := []struct {
		name string
		data []byte
		err  error
	}{
		{"Empty", nil, ErrTruncatedData},
		{"CountBeyondInput", []byte{0x05, 0x01}, ErrTruncatedData},
		{"BadItem", []byte{0x02, 0x01, 0x03}, ErrInvalidSign},
		{"PaddedItem", []byte{0x01, 0x02, 0x02, 0x05, 0x00}, ErrNonCanonical},
		{"NonMinimalCount", []byte{0x80, 0x00}, ErrInvalidVarint},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := NewBytesReader(tc.data)
			var s Seq[Int, *Int]
			err := s.Decode(r)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 0, r.N)
			assert.Nil(t, s.Items)
		})
	}

	var s Seq[Int, *Int]
	err := s.UnmarshalBinary([]byte{0x02, 0x01, 0x03})
	assert.ErrorContains(t, err, "item 1")
}
