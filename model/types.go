package model

// MessageType is parsed from the status byte. MessageLast doubles as the
// "no message" sentinel used before anything has been parsed.
type MessageType uint8

const (
	NoteOff MessageType = iota
	NoteOn
	PolyphonicKeyPressure
	ControlChange
	ProgramChange
	ChannelPressure
	PitchBend
	SystemCommon
	SystemRealTime
	ChannelMode
	MessageLast
)

func (t MessageType) String() string {
	switch t {
	case NoteOff:
		return "NoteOff"
	case NoteOn:
		return "NoteOn"
	case PolyphonicKeyPressure:
		return "PolyphonicKeyPressure"
	case ControlChange:
		return "ControlChange"
	case ProgramChange:
		return "ProgramChange"
	case ChannelPressure:
		return "ChannelPressure"
	case PitchBend:
		return "PitchBend"
	case SystemCommon:
		return "SystemCommon"
	case SystemRealTime:
		return "SystemRealTime"
	case ChannelMode:
		return "ChannelMode"
	}
	return "None"
}

type SystemCommonType uint8

const (
	SystemExclusive SystemCommonType = iota
	MTCQuarterFrame
	SongPositionPointer
	SongSelect
	SCUndefined0
	SCUndefined1
	TuneRequest
	SysExEnd
	SystemCommonLast
)

func (t SystemCommonType) String() string {
	switch t {
	case SystemExclusive:
		return "SystemExclusive"
	case MTCQuarterFrame:
		return "MTCQuarterFrame"
	case SongPositionPointer:
		return "SongPositionPointer"
	case SongSelect:
		return "SongSelect"
	case TuneRequest:
		return "TuneRequest"
	case SysExEnd:
		return "SysExEnd"
	}
	return "SCUndefined"
}

type SystemRealTimeType uint8

const (
	TimingClock SystemRealTimeType = iota
	SRTUndefined0
	Start
	Continue
	Stop
	SRTUndefined1
	ActiveSensing
	Reset
	SystemRealTimeLast
)

func (t SystemRealTimeType) String() string {
	switch t {
	case TimingClock:
		return "TimingClock"
	case Start:
		return "Start"
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	case ActiveSensing:
		return "ActiveSensing"
	case Reset:
		return "Reset"
	}
	return "SRTUndefined"
}

// ChannelModeType covers the reserved ControlChange controller numbers
// 120-127.
type ChannelModeType uint8

const (
	AllSoundOff ChannelModeType = iota
	ResetAllControllers
	LocalControl
	AllNotesOff
	OmniModeOff
	OmniModeOn
	MonoModeOn
	PolyModeOn
	ChannelModeLast
)

func (t ChannelModeType) String() string {
	switch t {
	case AllSoundOff:
		return "AllSoundOff"
	case ResetAllControllers:
		return "ResetAllControllers"
	case LocalControl:
		return "LocalControl"
	case AllNotesOff:
		return "AllNotesOff"
	case OmniModeOff:
		return "OmniModeOff"
	case OmniModeOn:
		return "OmniModeOn"
	case MonoModeOn:
		return "MonoModeOn"
	case PolyModeOn:
		return "PolyModeOn"
	}
	return "ChannelModeUndefined"
}
