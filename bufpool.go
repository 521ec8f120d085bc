package bigcodec

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for materializing streams before decoding.
// This reduces GC pressure by avoiding frequent allocations. We pool *bytes.Buffer
// because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		// Most encodings are a few dozen bytes; 512 covers magnitudes up to ~4000 bits.
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}
