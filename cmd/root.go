// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"time"

	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL string

	// Driver flags
	qaMode     bool
	warmupSecs int
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "ze15co",
	Short: "ZE15-CO serial sensor toolkit",
	Long: `ze15co - A CLI toolkit for the Winsen ZE15-CO carbon monoxide sensor.

Provides commands for single readings, continuous monitoring, a live TUI
dashboard, and raw stream capture/replay for offline protocol debugging.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 9600]
  WebSocket: --url ws://host/path (remote serial bridge)

The sensor defaults to initiative upload mode, pushing a frame roughly once
a second. Pass --qa when the sensor is configured for question/answer mode,
where each reading is solicited with a request frame.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", ze15.DefaultBaudRate, "Baud rate (serial only)")
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket bridge URL (ws:// or wss://)")
	rootCmd.PersistentFlags().BoolVar(&qaMode, "qa", false, "Sensor is in question/answer mode")
	rootCmd.PersistentFlags().IntVar(&warmupSecs, "warmup", 10, "Sensor warm-up time in seconds")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Trace protocol diagnostics to stderr")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// modeFromFlags maps the --qa flag to the driver mode.
func modeFromFlags() ze15.Mode {
	if qaMode {
		return ze15.ModeQueryResponse
	}
	return ze15.ModeInitiative
}

// driverOptions builds driver options from the persistent flags.
func driverOptions() []ze15.Option {
	return []ze15.Option{
		ze15.WithMode(modeFromFlags()),
		ze15.WithWarmupTime(time.Duration(warmupSecs) * time.Second),
		ze15.WithDebug(debugMode),
	}
}

// newDriver creates a driver on the given transport from the flag set.
func newDriver(t ze15.Transport) *ze15.Driver {
	return ze15.New(t, driverOptions()...)
}
