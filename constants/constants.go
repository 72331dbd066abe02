package constants

import "os"

func GetCaptureDir() string {
	path := os.Getenv("CAPTURE_PATH")
	if path != "" {
		return path
	}
	return "./captures"
}

func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

// Maximum cumulative length of buffered sysex data per parser, in bytes.
// Increase if the application cannot consume sysex bytes fast enough to
// keep the buffer from overflowing.
const SysexBufMaxSize = 1024

// Max chunk length of sysex data enqueued in each parsed event. One event
// may not carry all the sysex data in a given transfer; consumers must
// handle streamed parsing of multiple chunks.
const SysexBufChunkLen = 128

// Buffer size must be an exact multiple of the chunk length.
var _ [-(SysexBufMaxSize % SysexBufChunkLen)]byte

const (
	StatusByteMask     = 0x80
	ChannelMask        = 0x0F
	MessageMask        = 0x70
	DataByteMask       = 0x7F
	SystemRealTimeMask = 0x07
)

// End-of-sysex terminator status byte.
const SysexEnd = 0xF7
