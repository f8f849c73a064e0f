package tilekit

// WidgetState is one of the three states a widget may be in.
type WidgetState int

const (
	Disabled WidgetState = iota
	Enabled
	Pressed
)

const numWidgetStates = 3

// HAlign is horizontal text alignment.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Style is immutable and application-owned: a font handle, alignment,
// padding, and one color pair per widget state.
type Style struct {
	Font     Font
	HAlign   HAlign
	VAlign   VAlign
	HPadding int
	VPadding int
	Colors   [numWidgetStates]ColorPair
}
