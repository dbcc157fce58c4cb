package nestscroll

import (
	"gopkg.in/yaml.v3"
)

// Layer is a pre-rendered buffer with scroll management. It implements both
// TopSurface and BottomSurface, so either region of a Coordinator can be a
// Layer.
//
// Content is rendered once into a Buffer; the Coordinator only moves the
// window over it.
type Layer struct {
	buffer    *Buffer
	scrollY   int
	maxScroll int

	// Viewport height, set by the host during layout
	viewHeight int

	notify ScrollNotifier
}

// LayerScrollInfo is the snapshot payload of a Layer.
type LayerScrollInfo struct {
	ScrollY int `yaml:"scroll_y"`
}

// NewLayer creates a new empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// SetBuffer replaces the content and scrolls back to the top. The notifier
// hears about it once, and only if the layer was scrolled.
func (l *Layer) SetBuffer(buf *Buffer) {
	prev := l.scrollY
	l.buffer = buf
	l.scrollY = 0
	l.updateMaxScroll()
	if prev != 0 && l.notify != nil {
		l.notify(0, l.maxScroll)
	}
}

// Buffer returns the underlying buffer.
func (l *Layer) Buffer() *Buffer {
	return l.buffer
}

// SetViewport sets the visible height of the layer.
func (l *Layer) SetViewport(height int) {
	l.viewHeight = max(height, 0)
	l.updateMaxScroll()
}

// updateMaxScroll recalculates the maximum scroll position and clamps the
// current one to it.
func (l *Layer) updateMaxScroll() {
	if l.buffer == nil || l.viewHeight <= 0 {
		l.maxScroll = 0
	} else {
		l.maxScroll = max(l.buffer.Height()-l.viewHeight, 0)
	}
	if l.scrollY > l.maxScroll {
		l.ScrollTo(l.maxScroll)
	}
}

// ScrollY returns the current scroll position.
func (l *Layer) ScrollY() int {
	return l.scrollY
}

// MaxScroll returns the maximum scroll position.
func (l *Layer) MaxScroll() int {
	return l.maxScroll
}

// ScrollTo sets the scroll position, clamping to valid range.
func (l *Layer) ScrollTo(y int) {
	y = min(max(y, 0), l.maxScroll)
	if y == l.scrollY {
		return
	}
	l.scrollY = y
	if l.notify != nil {
		l.notify(l.scrollY, l.maxScroll)
	}
}

// ScrollDown scrolls down by n lines.
func (l *Layer) ScrollDown(n int) {
	l.ConsumeScroll(n)
}

// ScrollUp scrolls up by n lines.
func (l *Layer) ScrollUp(n int) {
	l.ConsumeScroll(-n)
}

// PageDown scrolls down by one viewport height.
func (l *Layer) PageDown() {
	l.ScrollDown(l.viewHeight)
}

// PageUp scrolls up by one viewport height.
func (l *Layer) PageUp() {
	l.ScrollUp(l.viewHeight)
}

// HalfPageDown scrolls down by half a viewport.
func (l *Layer) HalfPageDown() {
	l.ScrollDown(l.viewHeight / 2)
}

// HalfPageUp scrolls up by half a viewport.
func (l *Layer) HalfPageUp() {
	l.ScrollUp(l.viewHeight / 2)
}

// VisibleLine returns row i of the viewport.
func (l *Layer) VisibleLine(i int) string {
	if l.buffer == nil || i < 0 || i >= l.viewHeight {
		return ""
	}
	return l.buffer.GetLine(l.scrollY + i)
}

// =============================================================================
// Surface API
// =============================================================================

// CurrentScroll returns the first visible content row.
func (l *Layer) CurrentScroll() int { return l.scrollY }

// ScrollOffsetRange returns the largest valid CurrentScroll.
func (l *Layer) ScrollOffsetRange() int { return l.maxScroll }

// ViewHeight returns the viewport height in rows.
func (l *Layer) ViewHeight() int { return l.viewHeight }

// ScrollToStart shows the first content row.
func (l *Layer) ScrollToStart() { l.ScrollTo(0) }

// ScrollToEnd shows the last page of content.
func (l *Layer) ScrollToEnd() { l.ScrollTo(l.maxScroll) }

// ConsumeScroll moves by dy. Deltas beyond either end stop there, whatever
// their size.
func (l *Layer) ConsumeScroll(dy int) {
	switch {
	case dy > l.maxScroll-l.scrollY:
		l.ScrollTo(l.maxScroll)
	case dy < -l.scrollY:
		l.ScrollTo(0)
	default:
		l.ScrollTo(l.scrollY + dy)
	}
}

// ContentHeight returns the number of content rows, or HeightEnoughToScroll
// once the content fills the viewport.
func (l *Layer) ContentHeight() int {
	if l.buffer == nil {
		return 0
	}
	if h := l.buffer.Height(); h < l.viewHeight {
		return h
	}
	return HeightEnoughToScroll
}

// InjectScrollNotifier sets the function told about scroll changes. nil
// silences the layer.
func (l *Layer) InjectScrollNotifier(n ScrollNotifier) {
	l.notify = n
}

// SaveScrollInfo returns a LayerScrollInfo holding the current scroll.
func (l *Layer) SaveScrollInfo() any {
	return LayerScrollInfo{ScrollY: l.scrollY}
}

// RestoreScrollInfo accepts a LayerScrollInfo, a pointer to one, or the
// *yaml.Node produced by DecodeScrollInfo. Anything else is ignored.
func (l *Layer) RestoreScrollInfo(info any) {
	switch v := info.(type) {
	case LayerScrollInfo:
		l.ScrollTo(v.ScrollY)
	case *LayerScrollInfo:
		if v != nil {
			l.ScrollTo(v.ScrollY)
		}
	case *yaml.Node:
		var s LayerScrollInfo
		if v != nil && v.Decode(&s) == nil {
			l.ScrollTo(s.ScrollY)
		}
	}
}
