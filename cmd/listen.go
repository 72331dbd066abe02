package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/midiwire/parser"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Decodes a live MIDI input port",
	Long:  `Decodes a live MIDI input port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	p := parser.New()
	var numBytes, numEvents uint64
	summarize := debounce.New(500 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		for _, b := range []byte(msg) {
			numBytes++
			if evt, ok := p.Parse(b); ok {
				numEvents++
				printEvent(evt)
			}
		}
		summarize(func() {
			fmt.Printf("-- %v bytes in, %v events out\n", numBytes, numEvents)
		})
	}, midi.UseSysEx())

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
