// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"fmt"
	"os"

	"github.com/ageagainstthemachine/ze15co-go/pkg/capture"
	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <capture-file>",
	Short: "Decode a recorded stream offline",
	Long: `Run the protocol engine over a capture file produced by 'record'.

Each valid frame is printed as a reading; the run ends with a statistics
summary covering checksum errors, framing failures, and discarded bytes.
Warm-up gating and inter-retry delays are skipped - the capture is decoded
as fast as it can be read.

Pass --qa if the capture was recorded from a sensor in question/answer
mode, so concentrations are taken from the right frame bytes.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open capture: %v", err)
	}
	defer f.Close()

	transport := capture.NewTransport(f)
	drv := ze15.New(transport,
		ze15.WithMode(modeFromFlags()),
		ze15.WithDebug(debugMode),
		ze15.WithWarmupTime(0),
		ze15.WithSettleDelay(0),
		ze15.WithRequestDelay(0),
	)

	fmt.Printf("ze15co - Capture Replay\n")
	fmt.Printf("Capture: %s\n", args[0])
	fmt.Printf("Mode: %s\n\n", drv.Mode())

	for {
		reading := drv.Read()
		if reading.OK() {
			fmt.Println(ze15.FormatReading(reading))
			continue
		}
		if transport.Exhausted() {
			break
		}
	}

	fmt.Println()
	fmt.Print(drv.Stats().String())
	return nil
}
