// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"fmt"
	"time"

	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
	"github.com/spf13/cobra"
)

var (
	monitorInterval int
	monitorStats    int
	monitorCount    int
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Continuously read and display CO concentration",
	Long: `Continuously read the sensor and print each result with a timestamp.

With --stats N, a statistics summary (valid frames, checksum errors,
framing failures, rates) is printed every N seconds.

Supports both serial and WebSocket connections.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVarP(&monitorInterval, "interval", "i", 2, "Seconds between readings")
	monitorCmd.Flags().IntVar(&monitorStats, "stats", 0, "Print statistics every N seconds (0 = off)")
	monitorCmd.Flags().IntVarP(&monitorCount, "count", "n", 0, "Stop after N readings (0 = forever)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	drv := newDriver(conn)

	fmt.Printf("ze15co - CO Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Mode: %s\n", drv.Mode())
	fmt.Printf("Press Ctrl+C to exit\n\n")

	return monitorLoop(drv, monitorInterval, monitorStats, monitorCount)
}

// monitorLoop drives repeated reads, shared with the record command.
func monitorLoop(drv *ze15.Driver, intervalSecs, statsSecs, count int) error {
	interval := time.Duration(intervalSecs) * time.Second
	lastStats := time.Now()

	for n := 0; count == 0 || n < count; n++ {
		if n > 0 {
			time.Sleep(interval)
		}

		reading := drv.Read()
		fmt.Println(ze15.FormatReading(reading))

		if statsSecs > 0 && time.Since(lastStats) >= time.Duration(statsSecs)*time.Second {
			fmt.Print(drv.Stats().String())
			lastStats = time.Now()
		}
	}
	return nil
}
