//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package stream

import (
	"golang.org/x/sys/unix"
)

func disableEcho(fd uintptr) (func() error, error) {
	handle := int(fd)
	original, err := unix.IoctlGetTermios(handle, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	hidden := *original
	hidden.Lflag &^= unix.ECHO
	hidden.Lflag |= unix.ICANON | unix.ISIG
	hidden.Iflag |= unix.ICRNL
	if err := unix.IoctlSetTermios(handle, ioctlWriteTermios, &hidden); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(handle, ioctlWriteTermios, original)
	}, nil
}
