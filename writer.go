package bigcodec

import (
	"bufio"
	"bytes"
	"io"
)

// sink is what a Writer forwards to: a byte-oriented destination that may
// hold data until flushed.
type sink interface {
	io.Writer
	io.ByteWriter
	Size() int
	Flush() error
}

// bufferSink lets a bytes.Buffer act as a sink. It grows on demand, so it
// never needs flushing.
type bufferSink struct{ *bytes.Buffer }

func (b bufferSink) Flush() error { return nil }
func (b bufferSink) Size() int    { return b.Available() }

// Writer is the byte sink encoders write into. Plain io.Writers are wrapped
// in a bufio.Writer. The first error is latched: every later write is a
// no-op, so an encoder emits all of its parts and checks once with Result.
//
// A Writer built on another Writer forwards to it, sharing its latched
// error and adding to its count. Only the outermost Writer flushes.
type Writer struct {
	w     sink
	count int64
	err   error
	depth int
}

var _ sink = (*Writer)(nil)

// NewWriterSize wraps w with a buffer of at least size bytes. A
// *bufio.Writer smaller than size is refused with ErrAlreadyBuffered rather
// than buffered twice.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	case *Writer:
		return &Writer{w: bw, depth: bw.depth + 1}, nil
	case *bufio.Writer:
		if bw.Size() < size {
			return nil, ErrAlreadyBuffered
		}
		// The caller owns the bufio.Writer and flushes it.
		return &Writer{w: bw, depth: 1}, nil
	case *BytesWriter:
		return &Writer{w: bw}, nil
	case *bytes.Buffer:
		return &Writer{w: bufferSink{bw}}, nil
	}
	return &Writer{w: bufio.NewWriterSize(w, size)}, nil
}

// NewWriter wraps w with the default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// Write implements io.Writer. After an error it writes nothing and returns
// the latched error.
func (w *Writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

// WriteByte implements io.ByteWriter.
func (w *Writer) WriteByte(v byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.WriteByte(v); err != nil {
		w.setError(err)
		return w.err
	}
	w.count++
	return nil
}

func (w *Writer) Size() int    { return w.w.Size() }
func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// SetError latches err unless an earlier error is already recorded.
// Encoders use it to report value-level failures through the same channel
// as sink failures.
func (w *Writer) SetError(err error) { w.setError(err) }

func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes and returns the bytes written through w and the first
// error.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush pushes buffered bytes to the destination. On a nested Writer it
// only reports the error state, so a half-written value is never pushed
// downstream by an inner encoder.
func (w *Writer) Flush() error {
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	w.setError(w.w.Flush())
	return w.err
}

// WriteFrom writes wt through w. Bytes are counted as they pass through
// w, and wt's error is latched.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if wt == nil || w.err != nil {
		return
	}
	_, err := wt.WriteTo(w)
	w.setError(err)
}

// WriteBytes writes buf, latching any error.
func (w *Writer) WriteBytes(buf []byte) {
	_, _ = w.Write(buf)
}

func (w *Writer) WriteUint8(v uint8) {
	_ = w.WriteByte(v)
}
