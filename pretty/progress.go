package pretty

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/joshyorko/clikit/common"
)

// ProgressBar redraws a single status line on every update. It is driven
// synchronously by the caller; there is no background ticker.
type ProgressBar struct {
	out         io.StringWriter
	message     string
	total       int64
	current     int64
	running     bool
	interactive bool
	iconic      bool
	started     time.Time
	now         func() time.Time
	width       int
}

func NewProgressBar(out io.StringWriter, message string, total int64) *ProgressBar {
	common.Trace("ProgressBar created with message: %s, total: %d", message, total)
	return &ProgressBar{
		out:         out,
		message:     message,
		total:       total,
		interactive: Interactive,
		iconic:      Iconic,
		now:         time.Now,
		width:       TerminalWidth(),
	}
}

func (it *ProgressBar) Start() {
	if it.running {
		return
	}
	it.running = true
	it.started = it.now()

	if !it.interactive {
		it.out.WriteString(it.message + "\n")
		return
	}
	it.out.WriteString(HideCursor())
	it.draw()
}

// Advance moves the bar forward by step units.
func (it *ProgressBar) Advance(step int64) {
	it.Set(it.current+step, "")
}

// Set moves the bar to current and optionally replaces the message. The bar
// only moves forward; smaller values keep the current position.
func (it *ProgressBar) Set(current int64, message string) {
	if current > it.current {
		it.current = current
	}
	if it.total > 0 && it.current > it.total {
		it.current = it.total
	}
	if message != "" {
		it.message = message
	}
	if it.interactive && it.running {
		it.draw()
	}
}

func (it *ProgressBar) Finish(success bool) {
	if !it.running {
		return
	}
	it.running = false
	common.Trace("Stopping progress bar with success=%v: %s", success, it.message)

	status, color := "[OK]", StatusColor("done")
	if !success {
		status, color = "[FAIL]", StatusColor("failed")
	}
	if it.iconic {
		status = "✓"
		if !success {
			status = "✗"
		}
	}
	it.out.WriteString(fmt.Sprintf("%s%s%s %s%s\n", ClearLine(), color, status, it.message, Reset))
	it.out.WriteString(ShowCursor())
}

func (it *ProgressBar) IsRunning() bool {
	return it.running
}

func (it *ProgressBar) Percent() int {
	if it.total <= 0 {
		return 0
	}
	percentage := int((it.current * 100) / it.total)
	if percentage > 100 {
		percentage = 100
	}
	return percentage
}

func (it *ProgressBar) remaining() string {
	if it.current <= 0 || it.total <= 0 {
		return ""
	}
	elapsed := it.now().Sub(it.started)
	if elapsed <= 0 {
		return ""
	}
	rate := float64(it.current) / elapsed.Seconds()
	if rate <= 0 {
		return ""
	}
	left := time.Duration(float64(it.total-it.current)/rate) * time.Second
	minutes := int(left.Minutes())
	seconds := int(left.Seconds()) % 60
	if minutes > 0 {
		return fmt.Sprintf(" %dm%ds remaining", minutes, seconds)
	}
	return fmt.Sprintf(" %ds remaining", seconds)
}

func (it *ProgressBar) barWidth(remaining string) int {
	width := it.width - len(it.message) - len(remaining) - 20
	if width < 10 {
		width = 10
	}
	if width > 50 {
		width = 50
	}
	return width
}

// Render returns the current bar line without any cursor control.
func (it *ProgressBar) Render() string {
	percentage := it.Percent()
	remaining := it.remaining()
	width := it.barWidth(remaining)

	var bar string
	if it.iconic {
		model := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage())
		bar = model.ViewAs(float64(percentage) / 100)
	} else {
		bar = "[" + asciiBar(percentage, width) + "]"
	}
	return fmt.Sprintf("%s %3d%%%s %s", bar, percentage, remaining, it.message)
}

func asciiBar(percentage, width int) string {
	filled := (percentage * width) / 100
	if filled > width {
		filled = width
	}
	var bar strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < filled-1:
			bar.WriteString("=")
		case i == filled-1:
			bar.WriteString(">")
		default:
			bar.WriteString(" ")
		}
	}
	return bar.String()
}

func (it *ProgressBar) draw() {
	it.out.WriteString(ClearLine() + it.Render())
}
