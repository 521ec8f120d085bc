package bigcodec

import "errors"

var (
	// ErrNilIO indicates that NewWriter was called with a nil io.Writer.
	ErrNilIO = errors.New("bigcodec: NewWriter called with a nil io.Writer")

	// ErrAlreadyBuffered indicates that NewWriter was called with an already-buffered
	// writer that is smaller than requested, which would lead to double-buffering.
	ErrAlreadyBuffered = errors.New("bigcodec: writer is already buffered")

	// ErrInvalidSeek indicates a seek was attempted to invalid position.
	ErrInvalidSeek = errors.New("bigcodec: seek to a invalid position")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("bigcodec: unsupported whence")

	// ErrTruncatedData indicates that the buffer ended before a value was fully decoded.
	ErrTruncatedData = errors.New("bigcodec: truncated data")

	// ErrInvalidVarint indicates a malformed varint: overflow, out of range
	// for the target width, or not minimally encoded.
	ErrInvalidVarint = errors.New("bigcodec: invalid varint")

	// ErrInvalidSign indicates a sign byte outside {0, 1, 2}.
	ErrInvalidSign = errors.New("bigcodec: invalid sign byte")

	// ErrNonCanonical indicates well-formed input that is not the unique
	// encoding of its value.
	ErrNonCanonical = errors.New("bigcodec: non-canonical encoding")

	// ErrTrailingData is returned by UnmarshalBinary when bytes remain after
	// the value. A buffer is canonical only if it holds exactly one encoding.
	ErrTrailingData = errors.New("bigcodec: trailing data found after decoding")

	// ErrLengthOverflow indicates a magnitude with more digits than a u32 length prefix can describe.
	ErrLengthOverflow = errors.New("bigcodec: magnitude length overflows uint32")

	// ErrNegative indicates a negative value where a magnitude was expected.
	ErrNegative = errors.New("bigcodec: negative value for unsigned magnitude")
)
