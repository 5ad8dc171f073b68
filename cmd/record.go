// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/ageagainstthemachine/ze15co-go/pkg/capture"
	"github.com/spf13/cobra"
)

var (
	recordOutput   string
	recordInterval int
	recordCount    int
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Monitor the sensor while recording the raw stream to a file",
	Long: `Run the monitor loop while teeing every byte read from the transport
into a capture file, for later offline decoding with 'replay'.

The capture holds the raw stream exactly as it came off the wire, including
any noise, truncated frames, and checksum failures - which is the point:
captures of misbehaving links can be replayed and dissected away from the
hardware.`,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().StringVarP(&recordOutput, "output", "o", "", "Capture file to write (required)")
	recordCmd.Flags().IntVarP(&recordInterval, "interval", "i", 2, "Seconds between readings")
	recordCmd.Flags().IntVarP(&recordCount, "count", "n", 0, "Stop after N readings (0 = forever)")
	recordCmd.MarkFlagRequired("output")
}

// teeConnection records every byte read from the wrapped connection.
// Writes (query-mode requests) are not recorded; a capture is the sensor's
// side of the conversation.
type teeConnection struct {
	Connection
	writer *capture.Writer
}

func (t *teeConnection) Read(p []byte) (int, error) {
	n, err := t.Connection.Read(p)
	if n > 0 {
		if werr := t.writer.WriteChunk(p[:n]); werr != nil {
			log.Printf("capture write failed: %v", werr)
		}
	}
	return n, err
}

func runRecord(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	out, err := os.Create(recordOutput)
	if err != nil {
		return fmt.Errorf("failed to create capture file: %v", err)
	}
	defer out.Close()

	tee := &teeConnection{Connection: conn, writer: capture.NewWriter(out)}
	drv := newDriver(tee)

	fmt.Printf("ze15co - CO Monitor (recording to %s)\n", recordOutput)
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Mode: %s\n", drv.Mode())
	fmt.Printf("Press Ctrl+C to exit\n\n")

	return monitorLoop(drv, recordInterval, 0, recordCount)
}
