// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
	"github.com/gorilla/websocket"
	"go.bug.st/serial"
)

// Connection is a closable sensor transport.
type Connection interface {
	ze15.Transport
	io.Closer
}

const (
	// readTimeout bounds one transport read; the sensor pushes roughly one
	// frame per second in initiative mode.
	readTimeout = time.Second

	// pollTimeout is the short probe used to answer BytesAvailable.
	pollTimeout = 5 * time.Millisecond
)

// ErrConnectionClosed is returned when reading from a closed WebSocket bridge
var ErrConnectionClosed = fmt.Errorf("websocket connection closed")

// serialTransport adapts a serial port to the driver's transport contract.
// go.bug.st/serial has no buffered-byte count, so BytesAvailable probes the
// port with a short timeout and stages whatever the OS already buffered.
type serialTransport struct {
	port   serial.Port
	staged []byte
}

// openSerialTransport opens a serial port at the sensor's 8N1 framing.
func openSerialTransport(portName string, baudRate int) (*serialTransport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", portName, err)
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %v", portName, err)
	}

	return &serialTransport{port: port}, nil
}

func (t *serialTransport) Read(p []byte) (int, error) {
	if len(t.staged) > 0 {
		n := copy(p, t.staged)
		t.staged = t.staged[n:]
		return n, nil
	}
	return t.port.Read(p)
}

func (t *serialTransport) Write(p []byte) (int, error) {
	return t.port.Write(p)
}

func (t *serialTransport) BytesAvailable() int {
	if len(t.staged) == 0 {
		if err := t.port.SetReadTimeout(pollTimeout); err == nil {
			var buf [64]byte
			if n, err := t.port.Read(buf[:]); err == nil && n > 0 {
				t.staged = append(t.staged, buf[:n]...)
			}
			t.port.SetReadTimeout(readTimeout)
		}
	}
	return len(t.staged)
}

func (t *serialTransport) ResetInputBuffer() error {
	t.staged = nil
	return t.port.ResetInputBuffer()
}

func (t *serialTransport) Close() error {
	return t.port.Close()
}

// wsTransport adapts a WebSocket serial bridge to the transport contract.
// A pump goroutine owns the socket reads; Read and BytesAvailable serve
// from the message channel so polling never puts a read deadline on the
// socket itself.
type wsTransport struct {
	conn     *websocket.Conn
	incoming chan []byte
	staged   []byte
	closed   bool
}

// openWebSocketTransport dials a ws:// or wss:// serial bridge.
func openWebSocketTransport(wsURL string) (*wsTransport, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}
	switch u.Scheme {
	case "ws", "wss":
		// OK
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	t := &wsTransport{
		conn:     conn,
		incoming: make(chan []byte, 16),
	}
	go t.pump()
	return t, nil
}

// pump moves binary messages from the socket to the channel until the
// connection dies.
func (t *wsTransport) pump() {
	for {
		messageType, data, err := t.conn.ReadMessage()
		if err != nil {
			close(t.incoming)
			return
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		t.incoming <- data
	}
}

func (t *wsTransport) Read(p []byte) (int, error) {
	if t.closed {
		return 0, ErrConnectionClosed
	}
	if len(t.staged) == 0 {
		select {
		case data, ok := <-t.incoming:
			if !ok {
				t.closed = true
				return 0, ErrConnectionClosed
			}
			t.staged = data
		case <-time.After(readTimeout):
			return 0, nil
		}
	}
	n := copy(p, t.staged)
	t.staged = t.staged[n:]
	return n, nil
}

func (t *wsTransport) Write(p []byte) (int, error) {
	if err := t.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *wsTransport) BytesAvailable() int {
	if len(t.staged) == 0 && !t.closed {
		select {
		case data, ok := <-t.incoming:
			if !ok {
				t.closed = true
			} else {
				t.staged = data
			}
		default:
		}
	}
	return len(t.staged)
}

func (t *wsTransport) ResetInputBuffer() error {
	t.staged = nil
	for {
		select {
		case _, ok := <-t.incoming:
			if !ok {
				t.closed = true
				return nil
			}
		default:
			return nil
		}
	}
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}

// OpenConnection opens either a serial or WebSocket transport based on flags
func OpenConnection() (Connection, string, error) {
	if wsURL != "" {
		conn, err := openWebSocketTransport(wsURL)
		if err != nil {
			return nil, "", err
		}
		return conn, fmt.Sprintf("WebSocket: %s", wsURL), nil
	}

	if portName != "" {
		conn, err := openSerialTransport(portName, baudRate)
		if err != nil {
			return nil, "", err
		}
		return conn, fmt.Sprintf("Serial: %s @ %d baud", portName, baudRate), nil
	}

	return nil, "", fmt.Errorf("either --port or --url must be specified")
}
