//go:build !windows

package refhost

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/term"

	"github.com/tilekit/tilekit"
)

// TermHost renders a display onto a raw-mode terminal using xterm's SGR
// extended mouse protocol for input and 24-bit background-color escapes as
// pixels, for devices whose only console is a serial line or SSH session.
type TermHost struct {
	mu            sync.Mutex
	out           *bufio.Writer
	fd            int
	oldState      *term.State
	width, height int
	tileW, tileH  int
	tile          []tilekit.Color

	face   *basicfont.Face
	events chan tilekit.Event
	start  time.Time
}

// NewTermHost puts stdin into raw mode and enables SGR mouse reporting on
// stdout. Callers must call Close to restore the terminal.
func NewTermHost(width, height, tileW, tileH int) (*TermHost, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("refhost: enabling raw mode: %w", err)
	}
	h := &TermHost{
		out:      bufio.NewWriter(os.Stdout),
		fd:       fd,
		oldState: old,
		width:    width,
		height:   height,
		tileW:    tileW,
		tileH:    tileH,
		tile:     make([]tilekit.Color, tileW*tileH),
		face:     basicfont.Face7x13,
		events:   make(chan tilekit.Event, 64),
		start:    time.Now(),
	}
	fmt.Fprint(h.out, "\x1b[?1006h\x1b[?1000h\x1b[2J")
	h.out.Flush()
	go h.readInput()
	return h, nil
}

// Close disables mouse reporting and restores the terminal's prior mode.
func (h *TermHost) Close() error {
	fmt.Fprint(h.out, "\x1b[?1000l\x1b[?1006l")
	h.out.Flush()
	return term.Restore(h.fd, h.oldState)
}

// readInput decodes xterm SGR mouse sequences (ESC [ < btn ; x ; y M/m) off
// stdin and forwards button-1 press/release pairs as engine events.
func (h *TermHost) readInput() {
	r := bufio.NewReader(os.Stdin)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b != 0x1b {
			continue
		}
		if b, err = r.ReadByte(); err != nil {
			return
		} else if b != '[' {
			continue
		}
		if b, err = r.ReadByte(); err != nil {
			return
		} else if b != '<' {
			continue
		}

		var params []byte
		var terminator byte
		for {
			b, err = r.ReadByte()
			if err != nil {
				return
			}
			if b == 'M' || b == 'm' {
				terminator = b
				break
			}
			params = append(params, b)
		}

		fields := strings.Split(string(params), ";")
		if len(fields) != 3 {
			continue
		}
		btn, err1 := strconv.Atoi(fields[0])
		x, err2 := strconv.Atoi(fields[1])
		y, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil || btn&3 != 0 {
			continue
		}

		kind := tilekit.EventPress
		if terminator == 'm' {
			kind = tilekit.EventRelease
		}
		select {
		case h.events <- tilekit.Event{Kind: kind, X: x - 1, Y: y - 1}:
		default:
		}
	}
}

func (h *TermHost) Panic(code tilekit.PanicCode) {
	fmt.Fprintln(os.Stderr, "tilekit: panic:", code.String())
}

func (h *TermHost) GetMonotonicTime() tilekit.Tick {
	return tilekit.Tick(time.Since(h.start).Milliseconds())
}

func (h *TermHost) GetEvent(timeout tilekit.Tick) (tilekit.Event, bool) {
	timer := time.NewTimer(time.Duration(timeout) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev := <-h.events:
		return ev, true
	case <-timer.C:
		return tilekit.Event{}, false
	}
}

func (h *TermHost) GetFontMetrics(f tilekit.Font) tilekit.FontMetrics {
	m := h.face.Metrics()
	return tilekit.FontMetrics{
		Ascent:     m.Ascent.Round(),
		Descent:    m.Descent.Round(),
		Center:     (m.Ascent.Round() - m.Descent.Round()) / 2,
		LineHeight: m.Height.Round(),
	}
}

func (h *TermHost) GetGlyphMetrics(f tilekit.Font, codepoint rune) (tilekit.GlyphMetrics, bool) {
	return glyphMetrics(h.face, codepoint)
}

func (h *TermHost) DrawGlyph(dest, src tilekit.Rect, metrics tilekit.GlyphMetrics, colors tilekit.ColorPair) {
	coverage, ok := metrics.UserData.([]byte)
	if !ok || metrics.Width == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for y := dest.Y1; y < dest.Y2; y++ {
		sy := src.Y1 + (y - dest.Y1)
		if sy < 0 || sy >= metrics.Height || y < 0 || y >= h.tileH {
			continue
		}
		for x := dest.X1; x < dest.X2; x++ {
			sx := src.X1 + (x - dest.X1)
			if sx < 0 || sx >= metrics.Width || x < 0 || x >= h.tileW {
				continue
			}
			if coverage[sy*metrics.Width+sx] >= 128 {
				h.tile[y*h.tileW+x] = colors.Foreground
			}
		}
	}
}

func (h *TermHost) DrawFill(dest tilekit.Rect, c tilekit.Color) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for y := dest.Y1; y < dest.Y2 && y < h.tileH; y++ {
		if y < 0 {
			continue
		}
		for x := dest.X1; x < dest.X2 && x < h.tileW; x++ {
			if x < 0 {
				continue
			}
			h.tile[y*h.tileW+x] = c
		}
	}
}

// BltTile paints the tile back-buffer at (x,y) using one 24-bit background
// color escape per run of same-colored pixels in each row.
func (h *TermHost) BltTile(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var b strings.Builder
	for ty := 0; ty < h.tileH; ty++ {
		fmt.Fprintf(&b, "\x1b[%d;%dH", y+ty+1, x+1)
		row := h.tile[ty*h.tileW : (ty+1)*h.tileW]
		i := 0
		for i < len(row) {
			c := row[i]
			j := i + 1
			for j < len(row) && row[j] == c {
				j++
			}
			r, g, bl := byte(c>>16), byte(c>>8), byte(c)
			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm%s", r, g, bl, strings.Repeat(" ", j-i))
			i = j
		}
		b.WriteString("\x1b[0m")
	}
	h.out.WriteString(b.String())
	h.out.Flush()
}
