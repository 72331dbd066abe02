package chunk

import (
	"github.com/jsphweid/midiwire/ringbuf"
)

// Type tags where a chunk sits within a sysex transfer: a payload that fits
// in a single chunk is Individual, anything longer streams out as SeqFirst,
// zero or more SeqIntermediate, then SeqLast.
type Type uint8

const (
	Invalid Type = iota
	Individual
	SeqFirst
	SeqIntermediate
	SeqLast
)

func (t Type) String() string {
	switch t {
	case Individual:
		return "Individual"
	case SeqFirst:
		return "SeqFirst"
	case SeqIntermediate:
		return "SeqIntermediate"
	case SeqLast:
		return "SeqLast"
	}
	return "Invalid"
}

// Chunk is a bounded read-only window for consuming sysex bytes from the
// shared buffer without exposing write access. The zero value is the empty
// Invalid chunk. Data behind a chunk is only valid until the parser reuses
// the buffer region, so consumers should drain it before parsing resumes.
type Chunk struct {
	typ       Type
	buf       *ringbuf.Buffer
	size      int
	bytesRead int
}

func New(typ Type, buf *ringbuf.Buffer, size int) Chunk {
	return Chunk{typ: typ, buf: buf, size: size}
}

func (c Chunk) Type() Type {
	return c.typ
}

// Size returns the declared byte length of this chunk.
func (c Chunk) Size() int {
	return c.size
}

// BytesRemaining returns how many declared bytes have not been consumed yet.
func (c Chunk) BytesRemaining() int {
	return c.size - c.bytesRead
}

// ReadByte consumes a single byte from the buffer. The second return is
// false when the chunk is exhausted, unbound, or the buffer is empty.
func (c *Chunk) ReadByte() (byte, bool) {
	if !c.canRead() {
		return 0, false
	}
	c.bytesRead++
	return c.buf.Read(), true
}

// ReadBytes consumes up to len(dst) bytes into dst and returns the number
// of bytes read. A nil dst reads nothing.
func (c *Chunk) ReadBytes(dst []byte) int {
	if dst == nil {
		return 0
	}
	count := 0
	for c.canRead() && count < len(dst) {
		dst[count] = c.buf.Read()
		c.bytesRead++
		count++
	}
	return count
}

func (c *Chunk) canRead() bool {
	return c.bytesRead < c.size && c.buf != nil && c.buf.Readable() > 0
}
