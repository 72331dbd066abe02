package model

import (
	"github.com/jsphweid/midiwire/chunk"
)

// Event is a decoded MIDI message: type, channel, and up to two raw data
// bytes. The As* views project the raw bytes into named fields for the
// matching message type; calling a view for a different type is safe but
// meaningless. Views never mutate the event.
type Event struct {
	Type       MessageType
	Channel    uint8
	Data       [2]uint8
	SysexChunk chunk.Chunk
	SCType     SystemCommonType
	SRTType    SystemRealTimeType
	CMType     ChannelModeType
}

func (e Event) AsNoteOff() NoteOffEvent {
	return NoteOffEvent{
		Channel:  e.Channel,
		Note:     e.Data[0],
		Velocity: e.Data[1],
	}
}

func (e Event) AsNoteOn() NoteOnEvent {
	return NoteOnEvent{
		Channel:  e.Channel,
		Note:     e.Data[0],
		Velocity: e.Data[1],
	}
}

func (e Event) AsPolyphonicKeyPressure() PolyphonicKeyPressureEvent {
	return PolyphonicKeyPressureEvent{
		Channel:  e.Channel,
		Note:     e.Data[0],
		Pressure: e.Data[1],
	}
}

func (e Event) AsControlChange() ControlChangeEvent {
	return ControlChangeEvent{
		Channel:       e.Channel,
		ControlNumber: e.Data[0],
		Value:         e.Data[1],
	}
}

func (e Event) AsProgramChange() ProgramChangeEvent {
	return ProgramChangeEvent{
		Channel: e.Channel,
		Program: e.Data[0],
	}
}

func (e Event) AsChannelPressure() ChannelPressureEvent {
	return ChannelPressureEvent{
		Channel:  e.Channel,
		Pressure: e.Data[0],
	}
}

// AsPitchBend reconstructs the 14-bit bend as (data[1]<<7)+(data[0]-8192).
// The asymmetric combine is the wire convention; do not "fix" it into two
// 7-bit halves.
func (e Event) AsPitchBend() PitchBendEvent {
	return PitchBendEvent{
		Channel: e.Channel,
		Value:   int16(int(e.Data[1])<<7 + int(e.Data[0]) - 8192),
	}
}

func (e Event) AsChannelMode() ChannelModeEvent {
	return ChannelModeEvent{
		Channel:   e.Channel,
		EventType: ChannelModeType(e.Data[0] - 120),
		Value:     int16(e.Data[1]),
	}
}

func (e Event) AsSystemExclusive() SystemExclusiveEvent {
	return SystemExclusiveEvent{Chunk: e.SysexChunk}
}

func (e Event) AsMTCQuarterFrame() MTCQuarterFrameEvent {
	return MTCQuarterFrameEvent{
		MessageType: (e.Data[0] & 0x70) >> 4,
		Value:       e.Data[0] & 0x0F,
	}
}

func (e Event) AsSongPositionPointer() SongPositionPointerEvent {
	return SongPositionPointerEvent{
		Position: uint16(e.Data[1])<<7 | uint16(e.Data[0]),
	}
}

func (e Event) AsSongSelect() SongSelectEvent {
	return SongSelectEvent{Song: e.Data[0]}
}

func (e Event) AsAllSoundOff() AllSoundOffEvent {
	return AllSoundOffEvent{Channel: e.Channel}
}

func (e Event) AsResetAllControllers() ResetAllControllersEvent {
	return ResetAllControllersEvent{
		Channel: e.Channel,
		Value:   e.Data[1],
	}
}

func (e Event) AsLocalControl() LocalControlEvent {
	return LocalControlEvent{
		Channel:         e.Channel,
		LocalControlOff: e.Data[1] == 0,
		LocalControlOn:  e.Data[1] == 127,
	}
}

func (e Event) AsAllNotesOff() AllNotesOffEvent {
	return AllNotesOffEvent{Channel: e.Channel}
}

func (e Event) AsOmniModeOff() OmniModeOffEvent {
	return OmniModeOffEvent{Channel: e.Channel}
}

func (e Event) AsOmniModeOn() OmniModeOnEvent {
	return OmniModeOnEvent{Channel: e.Channel}
}

func (e Event) AsMonoModeOn() MonoModeOnEvent {
	return MonoModeOnEvent{
		Channel:     e.Channel,
		NumChannels: e.Data[1],
	}
}

func (e Event) AsPolyModeOn() PolyModeOnEvent {
	return PolyModeOnEvent{Channel: e.Channel}
}
