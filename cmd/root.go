package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midiwire",
	Short: "MIDI wire-protocol decoder",
	Long:  `Decodes a raw MIDI byte stream into typed events, with streamed sysex payloads.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
