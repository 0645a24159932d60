// Package ui holds the pieces shared by every component: the Base embed
// with size and focus, and the layout constants.
package ui

// Layout sizes in terminal cells.
const (
	ScrollMargin    = 3 // rows kept visible around the cursor
	BorderHeight    = 2
	HeaderHeight    = 2 // title and separator
	PanelOverhead   = BorderHeight + HeaderHeight
	SearchBarHeight = 3
	StatusHeight    = 1
	// MinQueryWidth is the narrowest query input kept before the now
	// playing segment of the search bar is dropped.
	MinQueryWidth = 12
)

// Base is embedded by component models for their size and focus.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b *Base) SetSize(width, height int) { b.width, b.height = width, height }

func (b Base) IsFocused() bool { return b.focused }

func (b Base) Size() (width, height int) { return b.width, b.height }

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// ListHeight is the height left after overhead rows, never negative.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
