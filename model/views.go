package model

import (
	"github.com/jsphweid/midiwire/chunk"
)

type NoteOffEvent struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
}

type NoteOnEvent struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
}

type PolyphonicKeyPressureEvent struct {
	Channel  uint8
	Note     uint8
	Pressure uint8
}

type ControlChangeEvent struct {
	Channel       uint8
	ControlNumber uint8
	Value         uint8
}

type ProgramChangeEvent struct {
	Channel uint8
	Program uint8
}

type ChannelPressureEvent struct {
	Channel  uint8
	Pressure uint8
}

type PitchBendEvent struct {
	Channel uint8
	Value   int16
}

type ChannelModeEvent struct {
	Channel   uint8
	EventType ChannelModeType
	Value     int16
}

// SystemExclusiveEvent carries one chunk of the payload. The chunk's data
// is only valid until the parser reuses the shared buffer.
type SystemExclusiveEvent struct {
	Chunk chunk.Chunk
}

type MTCQuarterFrameEvent struct {
	MessageType uint8
	Value       uint8
}

type SongPositionPointerEvent struct {
	Position uint16
}

type SongSelectEvent struct {
	Song uint8
}

type AllSoundOffEvent struct {
	Channel uint8
}

type ResetAllControllersEvent struct {
	Channel uint8
	Value   uint8
}

type LocalControlEvent struct {
	Channel         uint8
	LocalControlOff bool
	LocalControlOn  bool
}

type AllNotesOffEvent struct {
	Channel uint8
}

type OmniModeOffEvent struct {
	Channel uint8
}

type OmniModeOnEvent struct {
	Channel uint8
}

type MonoModeOnEvent struct {
	Channel     uint8
	NumChannels uint8
}

type PolyModeOnEvent struct {
	Channel uint8
}
