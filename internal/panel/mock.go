package panel

import (
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"ledmanager/internal/display"
	"ledmanager/internal/logging"
)

// Mock is a no-hardware Driver. It records every Present/Clear call and,
// when constructed with a writer, renders a textual ANSI-colored
// approximation of the framebuffer — downsampled to one character per 2x2
// pixel block so a 64x64 frame fits a terminal.
type Mock struct {
	mu            sync.Mutex
	logger        *slog.Logger
	writer        io.Writer
	colorize      bool
	presentCount  int
	lastChecksum  uint64
	last          *display.Framebuffer
}

// NewMock constructs a mock panel driver. If writer is non-nil, every
// Present renders a textual preview to it; color output is used only when
// writer looks like a terminal, as judged by go-isatty.
func NewMock(logger *slog.Logger, writer io.Writer) *Mock {
	m := &Mock{logger: logger, writer: writer}
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		m.colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return m
}

// Present records the frame and, if configured with a writer, prints a
// preview.
func (m *Mock) Present(fb *display.Framebuffer) {
	if fb == nil {
		return
	}
	m.mu.Lock()
	m.presentCount++
	m.lastChecksum = checksum(fb)
	m.last = fb.Clone()
	writer := m.writer
	colorize := m.colorize
	logger := m.logger
	m.mu.Unlock()

	if logger != nil {
		logger.Debug("mock panel present",
			logging.Int("present_count", m.PresentCount()),
			logging.Uint64("frame_checksum", m.lastChecksum),
		)
	}

	if writer != nil {
		renderPreview(writer, fb, colorize)
	}
}

// Clear presents an all-black framebuffer.
func (m *Mock) Clear() {
	m.Present(display.NewFramebuffer())
}

// PresentCount reports how many times Present has been called.
func (m *Mock) PresentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presentCount
}

// LastChecksum reports a checksum of the most recently presented frame, for
// test assertions that don't want to compare full framebuffers.
func (m *Mock) LastChecksum() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastChecksum
}

// LastFrame returns a copy of the most recently presented framebuffer, or
// nil if Present has never been called.
func (m *Mock) LastFrame() *display.Framebuffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return nil
	}
	return m.last.Clone()
}

func checksum(fb *display.Framebuffer) uint64 {
	h := fnv.New64a()
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			c := fb.At(x, y)
			h.Write([]byte{c.R, c.G, c.B})
		}
	}
	return h.Sum64()
}

// renderPreview writes one row of characters per two framebuffer rows,
// sampling the top-left pixel of each 2x2 block.
func renderPreview(w io.Writer, fb *display.Framebuffer, colorize bool) {
	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x += 2 {
			c := fb.At(x, y)
			if !colorize {
				if c == display.ColorBlack {
					fmt.Fprint(w, " ")
				} else {
					fmt.Fprint(w, "#")
				}
				continue
			}
			swatch := color.RGB(int(c.R), int(c.G), int(c.B))
			swatch.Fprint(w, "#")
		}
		fmt.Fprintln(w)
	}
}
