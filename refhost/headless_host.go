// Package refhost provides reference tilekit.Host implementations: a
// pixel-backed headless host for integration tests and tooling, a windowed
// Ebiten host for desktop development, and a terminal host for serial
// consoles and SSH sessions on devices with no framebuffer at all.
package refhost

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tilekit/tilekit"
)

// HeadlessHost renders into an in-memory image.RGBA instead of a physical
// display. It never opens a window or touches a GPU, which makes it the
// host of choice for package-level integration tests and CI, and for
// devices where a framebuffer is reached through some other path than this
// process.
type HeadlessHost struct {
	mu     sync.Mutex
	canvas *image.RGBA
	tile   *image.RGBA
	tileW  int
	tileH  int

	face font.Face

	events   []tilekit.Event
	eventIdx int
	tick     tilekit.Tick

	panicked  bool
	panicCode tilekit.PanicCode
}

// NewHeadlessHost returns a host backed by a width x height canvas, tiled at
// tileW x tileH. events, if any, are replayed in order by GetEvent; once
// exhausted, GetEvent reports a timeout.
func NewHeadlessHost(width, height, tileW, tileH int, events ...tilekit.Event) *HeadlessHost {
	return &HeadlessHost{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		tile:   image.NewRGBA(image.Rect(0, 0, tileW, tileH)),
		tileW:  tileW,
		tileH:  tileH,
		face:   basicfont.Face7x13,
		events: events,
	}
}

// Canvas returns the current composited display image. Callers must not
// mutate the returned image while the host is in use.
func (h *HeadlessHost) Canvas() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.canvas
}

// PushEvent appends an event to be returned by a future GetEvent call,
// letting a test drive the host interactively instead of pre-scripting the
// whole run.
func (h *HeadlessHost) PushEvent(ev tilekit.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *HeadlessHost) Panic(code tilekit.PanicCode) {
	h.mu.Lock()
	h.panicked = true
	h.panicCode = code
	h.mu.Unlock()
}

func (h *HeadlessHost) GetMonotonicTime() tilekit.Tick {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tick++
	return h.tick
}

func (h *HeadlessHost) GetEvent(timeout tilekit.Tick) (tilekit.Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.eventIdx >= len(h.events) {
		return tilekit.Event{}, false
	}
	ev := h.events[h.eventIdx]
	h.eventIdx++
	return ev, true
}

func (h *HeadlessHost) GetFontMetrics(f tilekit.Font) tilekit.FontMetrics {
	m := h.face.Metrics()
	return tilekit.FontMetrics{
		Ascent:     m.Ascent.Round(),
		Descent:    m.Descent.Round(),
		Center:     (m.Ascent.Round() - m.Descent.Round()) / 2,
		LineHeight: m.Height.Round(),
	}
}

func (h *HeadlessHost) GetGlyphMetrics(f tilekit.Font, codepoint rune) (tilekit.GlyphMetrics, bool) {
	return glyphMetrics(h.face, codepoint)
}

func (h *HeadlessHost) DrawGlyph(dest, src tilekit.Rect, metrics tilekit.GlyphMetrics, colors tilekit.ColorPair) {
	coverage, ok := metrics.UserData.([]byte)
	if !ok || metrics.Width == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	fg := colorOf(colors.Foreground)
	for y := dest.Y1; y < dest.Y2; y++ {
		sy := src.Y1 + (y - dest.Y1)
		if sy < 0 || sy >= metrics.Height {
			continue
		}
		for x := dest.X1; x < dest.X2; x++ {
			sx := src.X1 + (x - dest.X1)
			if sx < 0 || sx >= metrics.Width {
				continue
			}
			a := coverage[sy*metrics.Width+sx]
			if a == 0 {
				continue
			}
			h.tile.Set(x, y, blend(fg, a))
		}
	}
}

func (h *HeadlessHost) DrawFill(dest tilekit.Rect, c tilekit.Color) {
	h.mu.Lock()
	defer h.mu.Unlock()
	col := colorOf(c)
	for y := dest.Y1; y < dest.Y2; y++ {
		for x := dest.X1; x < dest.X2; x++ {
			h.tile.Set(x, y, col)
		}
	}
}

func (h *HeadlessHost) BltTile(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ty := 0; ty < h.tileH; ty++ {
		for tx := 0; tx < h.tileW; tx++ {
			h.canvas.Set(x+tx, y+ty, h.tile.At(tx, ty))
		}
	}
}

// glyphMetrics rasterizes a single glyph from f and packs its coverage into
// a row-major byte slice addressed as src.Y1*width+src.X1, matching the
// glyph-local coordinate space DrawGlyph's src rect is expressed in.
func glyphMetrics(f font.Face, codepoint rune) (tilekit.GlyphMetrics, bool) {
	dr, mask, maskp, advance, ok := f.Glyph(fixed.P(0, 0), codepoint)
	if !ok {
		return tilekit.GlyphMetrics{}, false
	}
	width, height := dr.Dx(), dr.Dy()
	coverage := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			coverage[y*width+x] = byte(a >> 8)
		}
	}
	return tilekit.GlyphMetrics{
		Codepoint: codepoint,
		Width:     width,
		Height:    height,
		XBearing:  dr.Min.X,
		YBearing:  -dr.Min.Y,
		XAdvance:  advance.Round(),
		UserData:  coverage,
	}, true
}

func colorOf(c tilekit.Color) color.RGBA {
	return color.RGBA{
		A: byte(c >> 24),
		R: byte(c >> 16),
		G: byte(c >> 8),
		B: byte(c),
	}
}

func blend(c color.RGBA, a byte) color.RGBA {
	c.A = a
	return c
}
