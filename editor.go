package tilekit

import "strconv"

// EditorStyle controls the chrome around an editor's input field: the
// field's own display style, the keypad's button style, and the label text
// for the editor's fixed-function keys. It is a supplement to the three
// editor operations named in the engine's public surface, letting callers
// restyle keypad chrome without forking the editor logic.
type EditorStyle struct {
	Field         *Style
	Key           *Style
	AcceptText    []byte
	CancelText    []byte
	BackspaceText []byte
	ClearText     []byte
	ShiftText     []byte
	SpaceText     []byte
}

const numberEditorBufCap = 16

// numberEditor drives the shared state machine behind EditInteger and
// EditReal: a 4x4 keypad of digits, a decimal point (real mode only), a
// minus-sign key (signed mode only; it inserts '-' only into an empty
// buffer), backspace, clear, accept and cancel.
type numberEditor struct {
	ctx    *Context
	buf    [numberEditorBufCap]byte
	len    int
	real   bool
	signed bool
	field  WidgetHandle
	accept bool
}

func (e *numberEditor) text() []byte { return e.buf[:e.len] }

func (e *numberEditor) refreshField() {
	e.ctx.SetWidgetText(e.field, e.text())
}

func (e *numberEditor) append(b byte) {
	if e.len >= numberEditorBufCap-1 {
		return
	}
	switch {
	case b >= '0' && b <= '9':
		// always legal.
	case b == '.':
		if !e.real || containsByte(e.text(), '.') {
			return
		}
	case b == '-':
		if !e.signed || e.len != 0 {
			return
		}
	default:
		return
	}
	e.buf[e.len] = b
	e.len++
	e.refreshField()
}

func (e *numberEditor) backspace() {
	if e.len == 0 {
		return
	}
	e.len--
	e.refreshField()
}

func (e *numberEditor) clear() {
	e.len = 0
	e.refreshField()
}

func (e *numberEditor) cancel() {
	e.accept = false
	e.ctx.Stop(0)
}

func (e *numberEditor) commit() {
	e.accept = true
	e.ctx.Stop(1)
}

func containsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

// numberKeyCallback is the generic trampoline installed on every keypad
// widget; the actual action is a closure stashed in the widget's user
// pointer.
func numberKeyCallback(_ *Context, _ WidgetHandle, userData any) {
	userData.(func())()
}

func buildNumberEditor(e *numberEditor, bounds Rect, style EditorStyle, initial []byte) {
	e.len = copy(e.buf[:numberEditorBufCap-1], initial)

	fieldH := bounds.Height() / 5
	keypadBounds := Rect{X1: bounds.X1, Y1: bounds.Y1 + fieldH, X2: bounds.X2, Y2: bounds.Y2}
	fieldBounds := NewRect(bounds.X1, bounds.Y1, bounds.Width(), fieldH)

	e.field = e.ctx.AddWidget(fieldBounds, style.Field, e.text(), false)

	type key struct {
		label  []byte
		action func()
	}
	rows := [4][4]key{}

	mk := func(label []byte, action func()) key { return key{label: label, action: action} }

	rows[0] = [4]key{
		mk([]byte("7"), func() { e.append('7') }),
		mk([]byte("8"), func() { e.append('8') }),
		mk([]byte("9"), func() { e.append('9') }),
		mk(style.BackspaceText, e.backspace),
	}
	rows[1] = [4]key{
		mk([]byte("4"), func() { e.append('4') }),
		mk([]byte("5"), func() { e.append('5') }),
		mk([]byte("6"), func() { e.append('6') }),
		mk(style.ClearText, e.clear),
	}
	rows[2] = [4]key{
		mk([]byte("1"), func() { e.append('1') }),
		mk([]byte("2"), func() { e.append('2') }),
		mk([]byte("3"), func() { e.append('3') }),
		mk(style.CancelText, e.cancel),
	}

	signKey := mk([]byte(""), func() {})
	if e.signed {
		signKey = mk([]byte("-"), func() { e.append('-') })
	}
	dotKey := mk([]byte(""), func() {})
	if e.real {
		dotKey = mk([]byte("."), func() { e.append('.') })
	}
	rows[3] = [4]key{
		signKey,
		mk([]byte("0"), func() { e.append('0') }),
		dotKey,
		mk(style.AcceptText, e.commit),
	}

	cellW := keypadBounds.Width() / 4
	cellH := keypadBounds.Height() / 4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			k := rows[r][c]
			rect := NewRect(keypadBounds.X1+c*cellW, keypadBounds.Y1+r*cellH, cellW, cellH)
			h := e.ctx.AddWidget(rect, style.Key, k.label, true)
			e.ctx.SetWidgetCallback(h, numberKeyCallback, k.action)
		}
	}
}

// EditInteger runs a nested event loop hosting a number keypad seeded with
// value, and returns the edited value and whether the user accepted (vs.
// cancelled). Values are bounded to a 16-byte text buffer.
func EditInteger(ctx *Context, bounds Rect, style EditorStyle, value int, signed bool) (int, bool) {
	e := &numberEditor{ctx: ctx, real: false, signed: signed}
	buildNumberEditor(e, bounds, style, []byte(strconv.Itoa(value)))
	ctx.Start()
	if !e.accept {
		return value, false
	}
	n, err := strconv.Atoi(string(e.text()))
	if err != nil {
		return value, false
	}
	return n, true
}

// EditReal is EditInteger's floating-point counterpart; the keypad also
// exposes a decimal point key.
func EditReal(ctx *Context, bounds Rect, style EditorStyle, value float64) (float64, bool) {
	e := &numberEditor{ctx: ctx, real: true, signed: true}
	buildNumberEditor(e, bounds, style, []byte(strconv.FormatFloat(value, 'g', -1, 64)))
	ctx.Start()
	if !e.accept {
		return value, false
	}
	f, err := strconv.ParseFloat(string(e.text()), 64)
	if err != nil {
		return value, false
	}
	return f, true
}

// stringKeypadUpper and stringKeypadLower are the 10x5 QWERTY-style keypad
// labels, transcribed verbatim from the reference implementation's fixed
// layout tables; shift toggles between them. Cells left empty are spacers.
var stringKeypadUpper = [50]string{
	"!", "@", "#", "$", "%", "^", "&", "*", "(", ")",
	"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P",
	"A", "S", "D", "F", "G", "H", "J", "K", "L", ".",
	"", "Z", "X", "C", "V", "B", "N", "M", ",", "",
	"", "", "", "", "", "", "", "", "", "",
}

var stringKeypadLower = [50]string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"q", "w", "e", "r", "t", "y", "u", "i", "o", "p",
	"a", "s", "d", "f", "g", "h", "j", "k", "l", ".",
	"", "z", "x", "c", "v", "b", "n", "m", ",", "",
	"", "", "", "", "", "", "", "", "", "",
}

const (
	stringKeyShift     = 30
	stringKeyBackspace = 39
	stringKeyCancel    = 40
	stringKeyClear     = 41
	stringKeySpace     = 42
	stringKeyAccept    = 49
)

type stringEditor struct {
	ctx        *Context
	buf        []byte
	cap        int
	allowEmpty bool
	field      WidgetHandle
	keys       [50]WidgetHandle
	shifted    bool
	accept     bool
}

func (e *stringEditor) refreshField() {
	e.ctx.SetWidgetText(e.field, e.buf)
}

// enforceFormat mirrors the reference implementation: character keys (and
// space) are disabled once the buffer is full, and backspace/clear/accept
// are enabled only when there is something to act on (accept is also
// enabled on an empty buffer when the editor allows an empty result).
func (e *stringEditor) enforceFormat() {
	space := e.cap - len(e.buf)
	charEnabled := space > 0
	for i, label := range e.currentLabels() {
		if label == "" {
			continue
		}
		if i == stringKeyShift || i == stringKeyBackspace || i == stringKeyCancel ||
			i == stringKeyClear || i == stringKeySpace || i == stringKeyAccept {
			continue
		}
		e.ctx.SetWidgetEnabled(e.keys[i], charEnabled)
	}
	e.ctx.SetWidgetEnabled(e.keys[stringKeySpace], charEnabled)
	e.ctx.SetWidgetEnabled(e.keys[stringKeyBackspace], len(e.buf) > 0)
	e.ctx.SetWidgetEnabled(e.keys[stringKeyClear], len(e.buf) > 0)
	e.ctx.SetWidgetEnabled(e.keys[stringKeyAccept], len(e.buf) > 0 || e.allowEmpty)
	e.refreshField()
}

func (e *stringEditor) currentLabels() [50]string {
	if e.shifted {
		return stringKeypadUpper
	}
	return stringKeypadLower
}

func (e *stringEditor) appendText(s string) {
	space := e.cap - len(e.buf)
	if space <= 0 {
		return
	}
	if len(s) > space {
		s = s[:space]
	}
	e.buf = append(e.buf, s...)
	e.enforceFormat()
}

// truncate removes the last rune of buf, UTF-8 aware: it strips trailing
// continuation bytes (top two bits == 0b10) before removing the lead byte
// that started the sequence, so the remaining buffer is always valid
// UTF-8.
func (e *stringEditor) truncate() {
	for len(e.buf) > 0 {
		last := e.buf[len(e.buf)-1]
		e.buf = e.buf[:len(e.buf)-1]
		if last&0xC0 != 0x80 {
			break
		}
	}
	e.enforceFormat()
}

func (e *stringEditor) clear() {
	e.buf = e.buf[:0]
	e.enforceFormat()
}

func (e *stringEditor) toggleShift() {
	e.shifted = !e.shifted
	labels := e.currentLabels()
	for i, h := range e.keys {
		if i == stringKeyShift || i == stringKeyBackspace || i == stringKeyCancel ||
			i == stringKeyClear || i == stringKeySpace || i == stringKeyAccept {
			continue
		}
		if labels[i] == "" {
			continue
		}
		e.ctx.SetWidgetText(h, []byte(labels[i]))
	}
}

func (e *stringEditor) cancel() {
	e.accept = false
	e.ctx.Stop(0)
}

func (e *stringEditor) commit() {
	e.accept = true
	e.ctx.Stop(1)
}

func stringKeyCallback(_ *Context, _ WidgetHandle, userData any) {
	userData.(func())()
}

// EditString runs a nested event loop hosting a QWERTY-style on-screen
// keyboard seeded with the bytes of initial, and returns the edited bytes
// (capped to capacity) and whether the user accepted. allowEmpty controls
// whether Accept is enabled with no characters typed.
func EditString(ctx *Context, bounds Rect, style EditorStyle, initial []byte, capacity int, allowEmpty bool) ([]byte, bool) {
	e := &stringEditor{ctx: ctx, cap: capacity, allowEmpty: allowEmpty}
	e.buf = append(make([]byte, 0, capacity), initial...)
	if len(e.buf) > capacity {
		e.buf = e.buf[:capacity]
	}

	fieldH := bounds.Height() / 6
	fieldBounds := NewRect(bounds.X1, bounds.Y1, bounds.Width(), fieldH)
	keypadBounds := Rect{X1: bounds.X1, Y1: bounds.Y1 + fieldH, X2: bounds.X2, Y2: bounds.Y2}

	e.field = ctx.AddWidget(fieldBounds, style.Field, e.buf, false)

	cellW := keypadBounds.Width() / 10
	cellH := keypadBounds.Height() / 5
	labels := e.currentLabels()

	for i := 0; i < 50; i++ {
		row := i / 10
		col := i % 10
		rect := NewRect(keypadBounds.X1+col*cellW, keypadBounds.Y1+row*cellH, cellW, cellH)

		var label string
		var action func()
		switch i {
		case stringKeyShift:
			label, action = string(style.ShiftText), e.toggleShift
		case stringKeyBackspace:
			label, action = string(style.BackspaceText), e.truncate
		case stringKeyCancel:
			label, action = string(style.CancelText), e.cancel
		case stringKeyClear:
			label, action = string(style.ClearText), e.clear
		case stringKeySpace:
			label, action = string(style.SpaceText), func() { e.appendText(" ") }
		case stringKeyAccept:
			label, action = string(style.AcceptText), e.commit
		default:
			label = labels[i]
			ch := label
			action = func() { e.appendText(ch) }
		}

		enabled := label != ""
		h := ctx.AddWidget(rect, style.Key, []byte(label), enabled)
		e.keys[i] = h
		if action != nil {
			ctx.SetWidgetCallback(h, stringKeyCallback, action)
		}
	}

	e.enforceFormat()
	ctx.Start()

	if !e.accept {
		return initial, false
	}
	return e.buf, true
}
