package bigcodec

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUvarint(t *testing.T) {
	assert.Equal(t, []byte{0x00}, AppendUvarint(nil, uint32(0)))
	assert.Equal(t, []byte{0x7f}, AppendUvarint(nil, uint8(127)))
	assert.Equal(t, []byte{0x80, 0x01}, AppendUvarint(nil, uint16(128)))
	assert.Equal(t, []byte{0xac, 0x02}, AppendUvarint(nil, uint32(300)))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, AppendUvarint(nil, uint32(math.MaxUint32)))
	assert.Equal(t,
		[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		AppendUvarint(nil, uint64(math.MaxUint64)))
}

func TestConsumeUvarint(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 35, math.MaxUint64} {
			data := append(AppendUvarint(nil, v), 0xee)
			got, n, err := ConsumeUvarint[uint64](data)
			require.NoError(t, err)
			assert.Equal(t, v, got)
			assert.Equal(t, len(data)-1, n, "trailing byte must not be consumed")
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		for _, data := range [][]byte{nil, {}, {0x80}, {0xff, 0xff}} {
			_, _, err := ConsumeUvarint[uint64](data)
			assert.ErrorIs(t, err, ErrTruncatedData, "%x", data)
		}
	})

	t.Run("NonMinimal", func(t *testing.T) {
		for _, data := range [][]byte{{0x80, 0x00}, {0x85, 0x00}, {0x85, 0x80, 0x00}, {0xff, 0x80, 0x00}} {
			_, _, err := ConsumeUvarint[uint64](data)
			assert.ErrorIs(t, err, ErrInvalidVarint, "%x", data)
		}
	})

	t.Run("Overflow64", func(t *testing.T) {
		data := append(bytes.Repeat([]byte{0xff}, 9), 0x02)
		_, _, err := ConsumeUvarint[uint64](data)
		assert.ErrorIs(t, err, ErrInvalidVarint)

		data = bytes.Repeat([]byte{0x80}, 11)
		_, _, err = ConsumeUvarint[uint64](data)
		assert.ErrorIs(t, err, ErrInvalidVarint)
	})

	t.Run("Overflow32", func(t *testing.T) {
		_, _, err := ConsumeUvarint[uint32](AppendUvarint(nil, uint64(math.MaxUint32)+1))
		require.ErrorIs(t, err, ErrInvalidVarint)
		assert.Contains(t, err.Error(), "overflows uint32")

		v, n, err := ConsumeUvarint[uint32](AppendUvarint(nil, uint64(math.MaxUint32)))
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), v)
		assert.Equal(t, 5, n)
	})
}

func TestCursorUvarint(t *testing.T) {
	r := NewBytesReader([]byte{0xac, 0x02, 0x05, 0x80})

	v32, err := r.ReadUvarint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(300), v32)
	assert.Equal(t, 2, r.N)

	v64, err := r.ReadUvarint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v64)

	_, err = r.ReadUvarint64()
	assert.ErrorIs(t, err, ErrTruncatedData)
	assert.Equal(t, 3, r.N, "failed read must not advance")
}
