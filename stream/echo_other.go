//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package stream

func disableEcho(fd uintptr) (func() error, error) {
	return nil, ErrEchoUnavailable
}
