package ringbuf

import (
	"github.com/jsphweid/midiwire/constants"
)

// Buffer is a fixed-capacity byte FIFO shared between the parser (writer)
// and sysex chunk views (reader). The zero value is an empty buffer ready
// for use. Operations never block and never allocate.
type Buffer struct {
	data [constants.SysexBufMaxSize]byte
	head int
	size int
}

// Readable returns the number of bytes available to read.
func (b *Buffer) Readable() int {
	return b.size
}

// Writable returns the number of bytes that can be written before the
// buffer is full.
func (b *Buffer) Writable() int {
	return len(b.data) - b.size
}

// Write appends a single byte. The caller must check Writable first;
// writing to a full buffer drops the byte.
func (b *Buffer) Write(v byte) {
	if b.size >= len(b.data) {
		return
	}
	b.data[(b.head+b.size)%len(b.data)] = v
	b.size++
}

// Read destructively removes and returns the oldest byte. The caller must
// check Readable first; reading an empty buffer returns 0.
func (b *Buffer) Read() byte {
	if b.size == 0 {
		return 0
	}
	v := b.data[b.head]
	b.head = (b.head + 1) % len(b.data)
	b.size--
	return v
}

// ReadBytes destructively reads up to len(dst) bytes into dst and returns
// the number of bytes read.
func (b *Buffer) ReadBytes(dst []byte) int {
	count := 0
	for count < len(dst) && b.size > 0 {
		dst[count] = b.Read()
		count++
	}
	return count
}

// Flush discards all buffered content.
func (b *Buffer) Flush() {
	b.head = 0
	b.size = 0
}
