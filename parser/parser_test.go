package parser

import (
	"testing"

	"github.com/jsphweid/midiwire/chunk"
	"github.com/jsphweid/midiwire/constants"
	"github.com/jsphweid/midiwire/model"
	"github.com/stretchr/testify/assert"
)

func parseAll(p *Parser, bytes []byte) []model.Event {
	var events []model.Event
	for _, b := range bytes {
		if evt, ok := p.Parse(b); ok {
			events = append(events, evt)
		}
	}
	return events
}

func drainChunk(c chunk.Chunk) []byte {
	buf := make([]byte, c.Size())
	n := c.ReadBytes(buf)
	return buf[:n]
}

func TestParsesNoteOn(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0x93, 0x3C, 0x7F})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.NoteOn, events[0].Type)
	m := events[0].AsNoteOn()
	assert.Equal(uint8(3), m.Channel)
	assert.Equal(uint8(0x3C), m.Note)
	assert.Equal(uint8(0x7F), m.Velocity)
}

func TestNoteOnWithZeroVelocityBecomesNoteOff(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0x90, 0x3C, 0x00})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.NoteOff, events[0].Type)
	m := events[0].AsNoteOff()
	assert.Equal(uint8(0x3C), m.Note)
	assert.Equal(uint8(0), m.Velocity)
}

func TestRunningStatusCompletesWithoutSecondStatusByte(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0x90, 0x40, 0x7F, 0x41, 0x00})

	assert := assert.New(t)
	assert.Equal(2, len(events))

	assert.Equal(model.NoteOn, events[0].Type)
	on := events[0].AsNoteOn()
	assert.Equal(uint8(0x40), on.Note)
	assert.Equal(uint8(0x7F), on.Velocity)

	// velocity-0 reclassification still applies under running status
	assert.Equal(model.NoteOff, events[1].Type)
	off := events[1].AsNoteOff()
	assert.Equal(uint8(0), off.Channel)
	assert.Equal(uint8(0x41), off.Note)
	assert.Equal(uint8(0), off.Velocity)
}

func TestRunningStatusSingleDataByteMessages(t *testing.T) {
	p := New()
	// program change is a single data byte, so every following bare data
	// byte is its own message
	events := parseAll(p, []byte{0xC2, 0x05, 0x06})

	assert := assert.New(t)
	assert.Equal(2, len(events))
	assert.Equal(model.ProgramChange, events[0].Type)
	assert.Equal(uint8(0x05), events[0].AsProgramChange().Program)
	assert.Equal(uint8(0x06), events[1].AsProgramChange().Program)
	assert.Equal(uint8(2), events[1].AsProgramChange().Channel)
}

func TestControlChangeAbove119IsChannelMode(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xB0, 0x7A, 0x00})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.ChannelMode, events[0].Type)
	assert.Equal(model.AllSoundOff, events[0].CMType)
	m := events[0].AsChannelMode()
	assert.Equal(model.AllSoundOff, m.EventType)
}

func TestControlChangeBelow120StaysControlChange(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xB1, 0x07, 0x64})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.ControlChange, events[0].Type)
	m := events[0].AsControlChange()
	assert.Equal(uint8(1), m.Channel)
	assert.Equal(uint8(0x07), m.ControlNumber)
	assert.Equal(uint8(0x64), m.Value)
}

func TestSystemRealTimeCompletesImmediately(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xF8})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.SystemRealTime, events[0].Type)
	assert.Equal(model.TimingClock, events[0].SRTType)
	assert.Equal(uint8(0), events[0].Channel)
}

func TestSystemRealTimeDoesNotDisturbPendingMessage(t *testing.T) {
	p := New()
	// clock byte interleaved between a status byte and its data bytes
	events := parseAll(p, []byte{0x90, 0xF8, 0x3C, 0x7F})

	assert := assert.New(t)
	assert.Equal(2, len(events))
	assert.Equal(model.SystemRealTime, events[0].Type)

	assert.Equal(model.NoteOn, events[1].Type)
	m := events[1].AsNoteOn()
	assert.Equal(uint8(0), m.Channel)
	assert.Equal(uint8(0x3C), m.Note)
	assert.Equal(uint8(0x7F), m.Velocity)
}

func TestAllSystemRealTimeSubtypes(t *testing.T) {
	cases := map[byte]model.SystemRealTimeType{
		0xF8: model.TimingClock,
		0xFA: model.Start,
		0xFB: model.Continue,
		0xFC: model.Stop,
		0xFE: model.ActiveSensing,
		0xFF: model.Reset,
	}

	assert := assert.New(t)
	p := New()
	for b, expected := range cases {
		evt, ok := p.Parse(b)
		assert.True(ok)
		assert.Equal(model.SystemRealTime, evt.Type)
		assert.Equal(expected, evt.SRTType)
	}
}

func TestTuneRequestHasNoDataBytes(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xF6})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.SystemCommon, events[0].Type)
	assert.Equal(model.TuneRequest, events[0].SCType)
}

func TestSongPositionPointer(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xF2, 0x01, 0x02})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.SystemCommon, events[0].Type)
	assert.Equal(model.SongPositionPointer, events[0].SCType)
	assert.Equal(uint16(0x02<<7|0x01), events[0].AsSongPositionPointer().Position)
}

func TestQuarterFrameIsSingleDataByte(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xF1, 0x35})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.MTCQuarterFrame, events[0].SCType)
	m := events[0].AsMTCQuarterFrame()
	assert.Equal(uint8(3), m.MessageType)
	assert.Equal(uint8(5), m.Value)
}

func TestStatusByteWhereDataExpectedDropsMessage(t *testing.T) {
	p := New()
	// second status byte arrives before any data, first message is lost
	events := parseAll(p, []byte{0x90, 0x91, 0x3C, 0x7F})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	m := events[0].AsNoteOn()
	assert.Equal(uint8(1), m.Channel)
}

func TestPitchBendCenter(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xE0, 0x00, 0x40})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.PitchBend, events[0].Type)
	assert.Equal(int16(0), events[0].AsPitchBend().Value)
}

func TestSysexSmallPayloadIsIndividualChunk(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xF0, 0x01, 0x02, 0x03, 0xF7})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	assert.Equal(model.SystemCommon, events[0].Type)
	assert.Equal(model.SystemExclusive, events[0].SCType)

	c := events[0].AsSystemExclusive().Chunk
	assert.Equal(chunk.Individual, c.Type())
	assert.Equal(3, c.Size())
	assert.Equal([]byte{0x01, 0x02, 0x03}, drainChunk(c))
}

func TestSysexPayloadMayContainStatusShapedBytes(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{0xF0, 0x01, 0x90, 0xF8, 0x02, 0xF7})

	assert := assert.New(t)
	assert.Equal(1, len(events))
	c := events[0].AsSystemExclusive().Chunk
	assert.Equal([]byte{0x01, 0x90, 0xF8, 0x02}, drainChunk(c))
}

func TestSysexExactChunkLengthIsIndividual(t *testing.T) {
	var stream []byte
	stream = append(stream, 0xF0)
	for i := 0; i < constants.SysexBufChunkLen; i++ {
		stream = append(stream, byte(i&0x7F))
	}
	stream = append(stream, 0xF7)

	p := New()
	events := parseAll(p, stream)

	assert := assert.New(t)
	assert.Equal(1, len(events))
	c := events[0].AsSystemExclusive().Chunk
	assert.Equal(chunk.Individual, c.Type())
	assert.Equal(constants.SysexBufChunkLen, c.Size())
}

func TestSysexTwoChunkRoundTrip(t *testing.T) {
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = byte(i % 256)
	}
	stream := append([]byte{0xF0}, payload...)
	stream = append(stream, 0xF7)

	p := New()
	var chunks []chunk.Chunk
	var got []byte
	for _, b := range stream {
		if evt, ok := p.Parse(b); ok {
			c := evt.AsSystemExclusive().Chunk
			chunks = append(chunks, c)
			got = append(got, drainChunk(c)...)
		}
	}

	assert := assert.New(t)
	assert.Equal(2, len(chunks))
	assert.Equal(chunk.SeqFirst, chunks[0].Type())
	assert.Equal(128, chunks[0].Size())
	assert.Equal(chunk.SeqLast, chunks[1].Type())
	assert.Equal(72, chunks[1].Size())
	assert.Equal(payload, got)
}

func TestSysexThreeChunkSequence(t *testing.T) {
	payload := make([]byte, 300)
	stream := append([]byte{0xF0}, payload...)
	stream = append(stream, 0xF7)

	p := New()
	var types []chunk.Type
	var sizes []int
	for _, b := range stream {
		if evt, ok := p.Parse(b); ok {
			c := evt.AsSystemExclusive().Chunk
			types = append(types, c.Type())
			sizes = append(sizes, c.Size())
			drainChunk(c)
		}
	}

	assert := assert.New(t)
	assert.Equal([]chunk.Type{chunk.SeqFirst, chunk.SeqIntermediate, chunk.SeqLast}, types)
	assert.Equal([]int{128, 128, 44}, sizes)
}

func TestSysexOverflowDropsPayloadAndRecovers(t *testing.T) {
	// never drain any chunk, so the shared buffer eventually saturates
	stream := []byte{0xF0}
	for i := 0; i < 2*constants.SysexBufMaxSize; i++ {
		stream = append(stream, 0x55)
	}

	p := New()
	parseAll(p, stream)

	// the terminator of an overflowed transfer produces no event
	_, ok := p.Parse(0xF7)
	assert := assert.New(t)
	assert.False(ok)

	// the next transfer parses cleanly again
	events := parseAll(p, []byte{0xF0, 0x0A, 0x0B, 0xF7})
	assert.Equal(1, len(events))
	c := events[0].AsSystemExclusive().Chunk
	assert.Equal(chunk.Individual, c.Type())
	assert.Equal([]byte{0x0A, 0x0B}, drainChunk(c))
}

func TestNonSysexEventsCarryNoChunk(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{
		0x90, 0x40, 0x7F, // prime running status
		0xF0, 0x01, 0x02, 0xF7, // sysex transfer
		0x41, 0x50, // running-status note on
	})

	assert := assert.New(t)
	assert.Equal(3, len(events))
	noteOn := events[2]
	assert.Equal(model.NoteOn, noteOn.Type)
	assert.Equal(chunk.Invalid, noteOn.SysexChunk.Type())
	assert.Equal(0, noteOn.SysexChunk.Size())
}

func TestResetIsIdempotent(t *testing.T) {
	p := New()

	assert := assert.New(t)
	for i := 0; i < 3; i++ {
		p.Reset()
		// a bare data byte right after reset completes nothing
		_, ok := p.Parse(0x40)
		assert.False(ok)
	}

	// reset mid-message drops the partial message
	p.Parse(0x90)
	p.Parse(0x3C)
	p.Reset()
	_, ok := p.Parse(0x7F)
	assert.False(ok)

	// reset mid-sysex drops the transfer
	p.Parse(0xF0)
	p.Parse(0x01)
	p.Reset()
	events := parseAll(p, []byte{0x92, 0x30, 0x60})
	assert.Equal(1, len(events))
	assert.Equal(model.NoteOn, events[0].Type)
}

func TestEventsEmittedInByteOrder(t *testing.T) {
	p := New()
	events := parseAll(p, []byte{
		0xF8,
		0x90, 0x3C, 0x7F,
		0xB0, 0x7B, 0x00,
		0xF2, 0x00, 0x01,
	})

	assert := assert.New(t)
	assert.Equal(4, len(events))
	assert.Equal(model.SystemRealTime, events[0].Type)
	assert.Equal(model.NoteOn, events[1].Type)
	assert.Equal(model.ChannelMode, events[2].Type)
	assert.Equal(model.AllNotesOff, events[2].CMType)
	assert.Equal(model.SystemCommon, events[3].Type)
}
