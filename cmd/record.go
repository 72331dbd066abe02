package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/midiwire/chunk"
	"github.com/jsphweid/midiwire/constants"
	"github.com/jsphweid/midiwire/db"
	"github.com/jsphweid/midiwire/model"
	"github.com/jsphweid/midiwire/parser"
	"github.com/jsphweid/midiwire/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var recordFresh bool

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().BoolVar(&recordFresh, "fresh", false, "wipe the capture dir before recording")
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Captures incoming sysex transfers to files",
	Long:  `Captures incoming sysex transfers to files`,
	Run: func(cmd *cobra.Command, args []string) {
		record()
	},
}

func record() {
	if recordFresh {
		util.RecreateCaptureDir()
	} else if err := os.MkdirAll(constants.GetCaptureDir(), 0777); err != nil {
		panic("Could not create capture dir: " + err.Error())
	}

	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	p := parser.New()
	var payload []byte

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		for _, b := range []byte(msg) {
			evt, ok := p.Parse(b)
			if !ok {
				continue
			}
			if evt.Type != model.SystemCommon || evt.SCType != model.SystemExclusive {
				continue
			}
			c := evt.AsSystemExclusive().Chunk
			buf := make([]byte, c.Size())
			n := c.ReadBytes(buf)
			payload = append(payload, buf[:n]...)
			if c.Type() == chunk.Individual || c.Type() == chunk.SeqLast {
				saveCapture(payload)
				payload = nil
			}
		}
	}, midi.UseSysEx())

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}

func saveCapture(payload []byte) {
	filename := uuid.New().String() + ".syx"
	path := filepath.Join(constants.GetCaptureDir(), filename)
	if err := os.WriteFile(path, payload, 0777); err != nil {
		panic("Write failed for capture file: " + err.Error())
	}

	key := manufacturerKey(payload)
	fmt.Printf("Saved %v sysex bytes to %v (manufacturer %v)\n", len(payload), filename, key)

	if constants.GetMetadataEndpoint() == "" {
		return
	}
	metadatas := db.GetManufacturerMetadatas([]string{key})
	if m, ok := metadatas[key]; ok {
		fmt.Printf("Manufacturer: %v (%v)\n", m.Name, m.Group)
	}
}

// manufacturerKey extracts the 1-byte manufacturer id from the head of a
// sysex payload, or the 3-byte extended id when the first byte is the 0x00
// escape.
func manufacturerKey(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	if payload[0] == 0x00 && len(payload) >= 3 {
		return fmt.Sprintf("%02X%02X%02X", payload[0], payload[1], payload[2])
	}
	return fmt.Sprintf("%02X", payload[0])
}
