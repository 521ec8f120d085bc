package bigcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignEncode(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	Negative.Encode(w)
	Zero.Encode(w)
	Positive.Encode(w)

	n, err := w.Result()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, []byte{0, 1, 2}, buf.Bytes())
}

func TestDecodeSign(t *testing.T) {
	r := NewBytesReader([]byte{0, 1, 2})
	for _, want := range []Sign{Negative, Zero, Positive} {
		got, err := DecodeSign(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeSign(NewBytesReader(nil))
		assert.ErrorIs(t, err, ErrTruncatedData)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, b := range []byte{3, 0x7f, 0xff} {
			r := NewBytesReader([]byte{b})
			_, err := DecodeSign(r)
			assert.ErrorIs(t, err, ErrInvalidSign, "byte %d", b)
			assert.Equal(t, 0, r.N)
		}
	})
}

func TestSignString(t *testing.T) {
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "zero", Zero.String())
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "Sign(9)", Sign(9).String())
	assert.False(t, Sign(3).Valid())
}
