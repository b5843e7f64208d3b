package stream

import (
	"golang.org/x/sys/windows"
)

func disableEcho(fd uintptr) (func() error, error) {
	handle := windows.Handle(fd)
	var original uint32
	if err := windows.GetConsoleMode(handle, &original); err != nil {
		return nil, err
	}

	hidden := original &^ windows.ENABLE_ECHO_INPUT
	hidden |= windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT
	if err := windows.SetConsoleMode(handle, hidden); err != nil {
		return nil, err
	}

	return func() error {
		return windows.SetConsoleMode(handle, original)
	}, nil
}
