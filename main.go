// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors
//
// ze15co - Winsen ZE15-CO carbon monoxide sensor tool
//
// A driver library and CLI for reading CO concentration from the ZE15-CO
// over serial or a WebSocket serial bridge.

package main

import (
	"os"

	"github.com/ageagainstthemachine/ze15co-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
