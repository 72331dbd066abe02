package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/midiwire/model"
	"github.com/jsphweid/midiwire/parser"
	"github.com/jsphweid/midiwire/util"
	"github.com/spf13/cobra"
)

var decodeHex bool

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&decodeHex, "hex", false, "treat the input file as a hex dump")
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decodes a raw capture file or a directory of captures",
	Long:  `Decodes a raw capture file or a directory of captures`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		info, err := os.Stat(args[0])
		if err != nil {
			panic("Couldn't stat path: " + err.Error())
		}
		if info.IsDir() {
			paths := util.GatherAllCapturePaths(args[0], 0)
			for _, path := range paths {
				fmt.Printf("%v:\n", path)
				decode(path)
			}
		} else {
			decode(args[0])
		}
	},
}

func decode(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	if decodeHex {
		data, err = util.ParseHexDump(string(data))
		if err != nil {
			panic("Couldn't parse hex dump: " + err.Error())
		}
	}

	p := parser.New()
	for _, b := range data {
		if evt, ok := p.Parse(b); ok {
			printEvent(evt)
		}
	}
}

func printEvent(e model.Event) {
	switch e.Type {
	case model.NoteOff:
		m := e.AsNoteOff()
		fmt.Printf("NoteOff ch=%v note=%v vel=%v\n", m.Channel, m.Note, m.Velocity)
	case model.NoteOn:
		m := e.AsNoteOn()
		fmt.Printf("NoteOn ch=%v note=%v vel=%v\n", m.Channel, m.Note, m.Velocity)
	case model.PolyphonicKeyPressure:
		m := e.AsPolyphonicKeyPressure()
		fmt.Printf("PolyphonicKeyPressure ch=%v note=%v pressure=%v\n", m.Channel, m.Note, m.Pressure)
	case model.ControlChange:
		m := e.AsControlChange()
		fmt.Printf("ControlChange ch=%v cc=%v value=%v\n", m.Channel, m.ControlNumber, m.Value)
	case model.ProgramChange:
		m := e.AsProgramChange()
		fmt.Printf("ProgramChange ch=%v program=%v\n", m.Channel, m.Program)
	case model.ChannelPressure:
		m := e.AsChannelPressure()
		fmt.Printf("ChannelPressure ch=%v pressure=%v\n", m.Channel, m.Pressure)
	case model.PitchBend:
		m := e.AsPitchBend()
		fmt.Printf("PitchBend ch=%v value=%v\n", m.Channel, m.Value)
	case model.ChannelMode:
		m := e.AsChannelMode()
		fmt.Printf("ChannelMode ch=%v %v value=%v\n", m.Channel, m.EventType, m.Value)
	case model.SystemCommon:
		switch e.SCType {
		case model.SystemExclusive:
			c := e.AsSystemExclusive().Chunk
			buf := make([]byte, c.Size())
			n := c.ReadBytes(buf)
			fmt.Printf("SystemExclusive %v (%v bytes): % X\n", c.Type(), n, buf[:n])
		case model.MTCQuarterFrame:
			m := e.AsMTCQuarterFrame()
			fmt.Printf("MTCQuarterFrame type=%v value=%v\n", m.MessageType, m.Value)
		case model.SongPositionPointer:
			m := e.AsSongPositionPointer()
			fmt.Printf("SongPositionPointer position=%v\n", m.Position)
		case model.SongSelect:
			m := e.AsSongSelect()
			fmt.Printf("SongSelect song=%v\n", m.Song)
		default:
			fmt.Printf("SystemCommon %v\n", e.SCType)
		}
	case model.SystemRealTime:
		fmt.Printf("SystemRealTime %v\n", e.SRTType)
	}
}
