package parser

import (
	"github.com/jsphweid/midiwire/chunk"
	"github.com/jsphweid/midiwire/constants"
	"github.com/jsphweid/midiwire/model"
	"github.com/jsphweid/midiwire/ringbuf"
)

type state uint8

const (
	stateEmpty state = iota
	stateHasStatus
	stateHasData0
	stateSysEx
)

// Parser decodes a raw MIDI byte stream incrementally, one byte per Parse
// call, with no lookahead and no allocation. Malformed input is silently
// discarded; the parser resynchronizes on the next valid status byte.
type Parser struct {
	state         state
	runningStatus model.MessageType
	incoming      model.Event

	sysexBuf        ringbuf.Buffer
	sysexChunkLen   int
	sysexChunkCount int
	sysexOverflow   bool
}

func New() *Parser {
	p := &Parser{}
	p.Reset()
	return p
}

// Reset returns the parser to the idle state and clears all sysex
// bookkeeping. Idempotent.
func (p *Parser) Reset() {
	p.state = stateEmpty
	p.runningStatus = model.MessageLast
	p.sysexChunkLen = 0
	p.sysexChunkCount = 0
	p.sysexOverflow = false
	p.incoming.Type = model.MessageLast
	p.incoming.SysexChunk = chunk.Chunk{}
}

// Parse consumes one byte. When it completes a message it returns the
// event and true. A returned sysex event's chunk must be drained before
// the next completing call, since the underlying buffer is shared.
func (p *Parser) Parse(b byte) (model.Event, bool) {
	var out model.Event
	didParse := false

	// any status byte resets the parser, except inside a sysex payload
	// where only 0xF7 terminates
	if b&constants.StatusByteMask != 0 && p.state != stateSysEx {
		p.state = stateEmpty
	}

	switch p.state {
	case stateEmpty:
		if b&constants.StatusByteMask != 0 {
			// system real-time short-circuits without touching the
			// pending message, so an interleaved clock byte cannot
			// corrupt a running-status sequence
			if b&0xF8 == 0xF8 {
				out = model.Event{
					Type:    model.SystemRealTime,
					SRTType: model.SystemRealTimeType(b & constants.SystemRealTimeMask),
				}
				didParse = true
				break
			}

			p.incoming.SysexChunk = chunk.Chunk{}
			p.incoming.Channel = b & constants.ChannelMask
			p.incoming.Type = model.MessageType((b & constants.MessageMask) >> 4)

			if p.incoming.Type < model.MessageLast {
				p.state = stateHasStatus

				if p.incoming.Type == model.SystemCommon {
					p.incoming.Channel = 0
					p.incoming.SCType = model.SystemCommonType(b & 0x07)
					if p.incoming.SCType == model.SystemExclusive {
						p.state = stateSysEx
					} else if p.incoming.SCType > model.SongSelect {
						// no data bytes follow, complete now
						p.state = stateEmpty
						out = p.incoming
						didParse = true
					}
				} else {
					// channel voice or channel mode
					p.runningStatus = p.incoming.Type
				}
			}
			// else keep waiting for a recognizable status byte
		} else if p.runningStatus != model.MessageLast {
			// bare data byte, interpret via running status
			p.incoming.SysexChunk = chunk.Chunk{}
			p.incoming.Type = p.runningStatus
			p.incoming.Data[0] = b & constants.DataByteMask
			if p.isSingleDataByteMessage() {
				p.state = stateEmpty
				out = p.incoming
				didParse = true
			} else {
				p.state = stateHasData0
			}
		}

	case stateHasStatus:
		if b&constants.StatusByteMask == 0 {
			p.incoming.Data[0] = b & constants.DataByteMask
			if p.isSingleDataByteMessage() {
				p.state = stateEmpty
				out = p.incoming
				didParse = true
			} else {
				p.state = stateHasData0
			}

			// the reserved ControlChange numbers 120-127 are channel
			// mode messages
			if p.runningStatus == model.ControlChange && p.incoming.Data[0] > 119 {
				p.incoming.Type = model.ChannelMode
				p.runningStatus = model.ChannelMode
				p.incoming.CMType = model.ChannelModeType(p.incoming.Data[0] - 120)
			}
		} else {
			// status byte where data was expected, drop the message
			p.state = stateEmpty
		}

	case stateHasData0:
		if b&constants.StatusByteMask == 0 {
			p.incoming.Data[1] = b & constants.DataByteMask

			// velocity 0 NoteOns are NoteOffs; the running status keeps
			// the wire nibble
			if p.runningStatus == model.NoteOn && p.incoming.Data[1] == 0 {
				p.incoming.Type = model.NoteOff
			}

			out = p.incoming
			didParse = true
		}
		// back to empty either way: the message is complete or dropped
		p.state = stateEmpty

	case stateSysEx:
		if b == constants.SysexEnd {
			if p.sysexOverflow {
				// consumer fell behind, drop the whole payload
				p.sysexBuf.Flush()
				p.sysexChunkLen = 0
				p.sysexChunkCount = 0
				p.sysexOverflow = false
			} else {
				out = p.produceSysexChunk(true)
				didParse = true
			}
			p.state = stateEmpty
		} else {
			if !p.sysexOverflow && p.sysexBuf.Writable() > 0 {
				// emit the previous chunk only once a byte beyond it
				// arrives, so a payload of exactly one chunk length
				// still ends as a single Individual chunk
				if p.sysexChunkLen >= constants.SysexBufChunkLen {
					out = p.produceSysexChunk(false)
					didParse = true
				}
				p.sysexBuf.Write(b)
				p.sysexChunkLen++
			} else {
				p.sysexOverflow = true
			}
		}
	}

	return out, didParse
}

func (p *Parser) isSingleDataByteMessage() bool {
	return p.runningStatus == model.ChannelPressure ||
		p.runningStatus == model.ProgramChange ||
		p.incoming.SCType == model.MTCQuarterFrame ||
		p.incoming.SCType == model.SongSelect
}

func (p *Parser) produceSysexChunk(msgEnded bool) model.Event {
	typ := chunk.SeqIntermediate
	if p.sysexChunkCount == 0 {
		if msgEnded {
			typ = chunk.Individual
		} else {
			typ = chunk.SeqFirst
			p.sysexChunkCount++
		}
	} else if msgEnded {
		p.sysexChunkCount = 0
		typ = chunk.SeqLast
	} else {
		p.sysexChunkCount++
	}

	out := p.incoming
	out.SysexChunk = chunk.New(typ, &p.sysexBuf, p.sysexChunkLen)
	p.sysexChunkLen = 0
	return out
}
