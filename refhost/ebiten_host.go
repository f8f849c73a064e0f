//go:build !headless

package refhost

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"github.com/tilekit/tilekit"
)

// EbitenHost is a windowed reference host. The engine's own event loop
// blocks in GetEvent waiting for input, while Ebiten drives input and
// presentation from its own callback-based game loop on a separate
// goroutine; eventChan bridges the two.
type EbitenHost struct {
	width, height int
	tileW, tileH  int

	mu      sync.Mutex
	display *ebiten.Image
	tile    *image.RGBA

	face      *basicfont.Face
	eventChan chan tilekit.Event
	ready     chan struct{}
	readyOnce sync.Once
	start     time.Time

	pressed bool
}

// NewEbitenHost creates a host with a width x height window tiled at
// tileW x tileH. Call Run to start the game loop; Run blocks until the
// window is closed.
func NewEbitenHost(width, height, tileW, tileH int) *EbitenHost {
	return &EbitenHost{
		width:     width,
		height:    height,
		tileW:     tileW,
		tileH:     tileH,
		tile:      image.NewRGBA(image.Rect(0, 0, tileW, tileH)),
		face:      basicfont.Face7x13,
		eventChan: make(chan tilekit.Event, 64),
		ready:     make(chan struct{}),
		start:     time.Now(),
	}
}

// Run opens the window and blocks until it is closed. It must be called
// from the process's main goroutine; drive the engine's own Start/event
// loop from a separate goroutine once Run's ready signal has fired, or
// simply launch that goroutine before calling Run and let it block on
// GetEvent until the window appears.
func (h *EbitenHost) Run(title string) error {
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)
	return ebiten.RunGame(h)
}

func (h *EbitenHost) Update() error {
	if ebiten.IsWindowBeingClosed() {
		select {
		case h.eventChan <- tilekit.Event{Kind: tilekit.EventQuit}:
		default:
		}
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.pressed = true
		h.send(tilekit.Event{Kind: tilekit.EventPress, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && h.pressed {
		h.pressed = false
		h.send(tilekit.Event{Kind: tilekit.EventRelease, X: x, Y: y})
	}
	return nil
}

func (h *EbitenHost) send(ev tilekit.Event) {
	select {
	case h.eventChan <- ev:
	default:
	}
}

func (h *EbitenHost) Draw(screen *ebiten.Image) {
	h.mu.Lock()
	if h.display == nil {
		h.display = ebiten.NewImage(h.width, h.height)
	}
	screen.DrawImage(h.display, nil)
	h.mu.Unlock()

	h.readyOnce.Do(func() { close(h.ready) })
}

func (h *EbitenHost) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Panic reports a fatal programming error to the terminal; EbitenHost has
// no other console to surface it on.
func (h *EbitenHost) Panic(code tilekit.PanicCode) {
	println("tilekit: panic:", code.String())
}

// GetMonotonicTime reports milliseconds since the host was constructed,
// truncated to the engine's 16-bit tick width.
func (h *EbitenHost) GetMonotonicTime() tilekit.Tick {
	return tilekit.Tick(time.Since(h.start).Milliseconds())
}

func (h *EbitenHost) GetEvent(timeout tilekit.Tick) (tilekit.Event, bool) {
	<-h.ready
	timer := time.NewTimer(time.Duration(timeout) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev := <-h.eventChan:
		return ev, true
	case <-timer.C:
		return tilekit.Event{}, false
	}
}

func (h *EbitenHost) GetFontMetrics(f tilekit.Font) tilekit.FontMetrics {
	m := h.face.Metrics()
	return tilekit.FontMetrics{
		Ascent:     m.Ascent.Round(),
		Descent:    m.Descent.Round(),
		Center:     (m.Ascent.Round() - m.Descent.Round()) / 2,
		LineHeight: m.Height.Round(),
	}
}

func (h *EbitenHost) GetGlyphMetrics(f tilekit.Font, codepoint rune) (tilekit.GlyphMetrics, bool) {
	return glyphMetrics(h.face, codepoint)
}

func (h *EbitenHost) DrawGlyph(dest, src tilekit.Rect, metrics tilekit.GlyphMetrics, colors tilekit.ColorPair) {
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

func (h *EbitenHost) DrawFill(dest tilekit.Rect, c tilekit.Color) {
	h.mu.Lock()
	defer h.mu.Unlock()
	col := colorOf(c)
	for y := dest.Y1; y < dest.Y2; y++ {
		for x := dest.X1; x < dest.X2; x++ {
			h.tile.Set(x, y, col)
		}
	}
}

func (h *EbitenHost) BltTile(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.display == nil {
		h.display = ebiten.NewImage(h.width, h.height)
	}
	region := image.Rect(x, y, x+h.tileW, y+h.tileH)
	sub, ok := h.display.SubImage(region).(*ebiten.Image)
	if !ok {
		return
	}
	sub.WritePixels(h.tile.Pix)
}
