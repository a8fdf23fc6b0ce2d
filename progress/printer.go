package progress

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes a status line for each progress report the placement
// engine delivers. The zero value is not ready for use; call New.
type Printer struct {
	w       io.Writer
	total   int
	inPlace bool
	printer *message.Printer
}

// New returns a Printer reporting against a run of total placements.
// inPlace selects terminal-style updating: each report clears and rewrites
// one line instead of appending a new one.
func New(w io.Writer, total int, inPlace bool) *Printer {
	return &Printer{
		w:       w,
		total:   total,
		inPlace: inPlace,
		printer: message.NewPrinter(language.English),
	}
}

// Report writes one status line. Its signature matches the placement
// engine's progress callback, so it can be installed directly with
// placement.WithProgress(p.Report).
func (p *Printer) Report(filled, liveCount, liveCountMax int) {
	percent := 100 * float64(filled) / float64(p.total)
	p.line(percent, liveCount, liveCountMax)
}

// Done writes the final 100% line, with the boundary drained to zero, and
// terminates it with a newline regardless of in-place mode.
func (p *Printer) Done(liveCountMax int) {
	p.line(100, 0, liveCountMax)
	io.WriteString(p.w, "\n")
}

func (p *Printer) line(percent float64, liveCount, liveCountMax int) {
	if p.inPlace {
		io.WriteString(p.w, "\033[2K\r")
	}
	p.printer.Fprintf(p.w, "%.2f%%\t| boundary size: %d\t| max boundary size: %d", percent, liveCount, liveCountMax)
	if !p.inPlace {
		io.WriteString(p.w, "\n")
	}
}
