package stream

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/joshyorko/clikit/common"
	"github.com/mattn/go-isatty"
)

const (
	newline = '\n'
)

var (
	stdio     *Live
	stdioOnce sync.Once
)

// Live is a Stream over real process handles.
type Live struct {
	in     *os.File
	out    *os.File
	source *bufio.Reader
}

// Stdio returns the process wide Live stream over standard input and output.
// Every caller shares one buffered reader so no typed-ahead input is lost.
func Stdio() *Live {
	stdioOnce.Do(func() {
		stdio = NewLive(os.Stdin, os.Stdout)
	})
	return stdio
}

func NewLive(in, out *os.File) *Live {
	return &Live{
		in:     in,
		out:    out,
		source: bufio.NewReader(in),
	}
}

func (it *Live) ReadLine() (string, error) {
	reply, err := it.source.ReadString(newline)
	if err == io.EOF && len(reply) > 0 {
		return chomp(reply), nil
	}
	if err != nil {
		return "", err
	}
	return chomp(reply), nil
}

func (it *Live) WriteString(text string) (int, error) {
	return it.out.WriteString(text)
}

func (it *Live) IsInteractive() bool {
	fd := it.in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (it *Live) SuppressEcho() (func(), error) {
	if !it.IsInteractive() {
		return nil, ErrEchoUnavailable
	}
	restore, err := disableEcho(it.in.Fd())
	if err != nil {
		common.Trace("Echo suppression failed on fd %d: %v", it.in.Fd(), err)
		return nil, ErrEchoUnavailable
	}
	return func() {
		common.Uncritical("restore echo", restore())
	}, nil
}
