package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback during ingestion and embedding.
type Reporter interface {
	Start(label string, total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a
// CIReporter when running under CI.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(label string, total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs. Updates
// are throttled to every ten percent so large ingests stay readable.
type CIReporter struct {
	label    string
	total    int
	lastTick int
}

func (r *CIReporter) Start(label string, total int) {
	r.label = label
	r.total = total
	r.lastTick = -1
	fmt.Fprintf(os.Stderr, "%s: %d items\n", label, total)
}

func (r *CIReporter) Update(current int, message string) {
	if r.total <= 0 {
		return
	}
	tick := current * 10 / r.total
	if tick == r.lastTick && current != r.total {
		return
	}
	r.lastTick = tick
	fmt.Fprintf(os.Stderr, "%s: %d/%d (%d%%) %s\n", r.label, current, r.total, current*100/r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(os.Stderr, "%s: done\n", r.label)
}
