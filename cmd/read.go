// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
	"github.com/spf13/cobra"
)

// Application-level retry around the driver: the driver already degrades
// transient noise to the sentinel, so the consumer retries a few times
// before treating the result as authoritative.
const (
	readAttempts     = 3
	readAttemptDelay = 500 * time.Millisecond
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Take a single CO reading",
	Long: `Take one authoritative CO concentration reading and print it in ppm.

The driver's sentinel behavior is wrapped in up to 3 attempts with a short
delay between them. Note the sensor needs its warm-up time (--warmup) after
power-on before the first reading; the command waits it out.

Exit codes:
  0 - Reading obtained
  1 - No valid data after all attempts
  2 - Connection error`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	if debugMode {
		fmt.Fprintf(os.Stderr, "Connection: %s\n", connInfo)
	}

	drv := newDriver(conn)

	var reading ze15.Reading
	for attempt := 0; attempt < readAttempts; attempt++ {
		reading = drv.Read()
		if reading.OK() {
			break
		}
		if attempt < readAttempts-1 {
			time.Sleep(readAttemptDelay)
		}
	}

	if !reading.OK() {
		fmt.Fprintf(os.Stderr, "Error: failed to read CO concentration (%s)\n", reading.Status)
		os.Exit(1)
	}

	fmt.Printf("%.1f\n", reading.PPM)
	return nil
}
