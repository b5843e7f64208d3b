// Package stream abstracts the duplex channel an interactive session talks
// through. Live binds the process terminal, Scripted replays canned input for
// tests and captures everything written to it.
package stream

import (
	"errors"
	"io"
	"strings"
)

var (
	// ErrEchoUnavailable is returned by SuppressEcho when the stream is not a
	// terminal or the host cannot turn local echo off.
	ErrEchoUnavailable = errors.New("terminal echo suppression is not available")
)

// Stream is one interactive input/output channel.
type Stream interface {
	io.StringWriter

	// ReadLine returns the next line without its terminator, or io.EOF once
	// the input is exhausted.
	ReadLine() (string, error)

	// IsInteractive reports whether input comes from a real terminal.
	IsInteractive() bool

	// SuppressEcho turns local echo off and returns the action that turns it
	// back on. The caller must run restore on every exit path.
	SuppressEcho() (restore func(), err error)
}

func chomp(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
