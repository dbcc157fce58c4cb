package nestscroll

import "math"

// OffsetController owns the vertical offset of the top region inside the
// container. Negative offsets push the top region up and out of view.
type OffsetController interface {
	TopAndBottomOffset() int
	SetTopAndBottomOffset(offset int)
	// SetOffsetCallback installs fn, called with the new offset after every
	// change. nil removes it.
	SetOffsetCallback(fn func(offset int))
}

// TopAreaScroller is an OffsetController that decides itself how a delta is
// split between the top surface and the offset. It returns the part of dy it
// consumed. offsetRange is the current travel budget of the offset.
type TopAreaScroller interface {
	OffsetController
	ScrollTopArea(top TopSurface, dy, offsetRange int) int
}

// TopArea is the default OffsetController.
type TopArea struct {
	offset   int
	onOffset func(int)
}

// NewTopArea creates a top area at offset 0.
func NewTopArea() *TopArea {
	return &TopArea{}
}

// TopAndBottomOffset returns the current offset.
func (a *TopArea) TopAndBottomOffset() int {
	return a.offset
}

// SetTopAndBottomOffset moves the top region. The callback only fires when
// the offset actually changes.
func (a *TopArea) SetTopAndBottomOffset(offset int) {
	if offset == a.offset {
		return
	}
	a.offset = offset
	if a.onOffset != nil {
		a.onOffset(offset)
	}
}

// SetOffsetCallback installs the change callback.
func (a *TopArea) SetOffsetCallback(fn func(offset int)) {
	a.onOffset = fn
}

// ScrollTopArea walks the top part of the scroll axis.
//
// Positive deltas scroll the top surface's content first and then push the
// offset up, never past -offsetRange. Negative deltas pull the offset back
// towards 0 first and then scroll the top surface's content back.
func (a *TopArea) ScrollTopArea(top TopSurface, dy, offsetRange int) int {
	return scrollTopArea(a, top, dy, offsetRange)
}

// scrollTopArea is the top-area split shared by TopArea and by controllers
// that do not implement TopAreaScroller.
func scrollTopArea(ctrl OffsetController, top TopSurface, dy, offsetRange int) int {
	switch {
	case dy > 0:
		remaining := dy - consumeSurface(top, dy)
		if remaining > 0 && ctrl != nil {
			remaining -= pushOffset(ctrl, remaining, -max(offsetRange, 0))
		}
		return dy - remaining
	case dy < 0:
		remaining := dy
		if ctrl != nil {
			remaining += pullOffset(ctrl, magnitude(dy))
		}
		if remaining < 0 {
			remaining -= consumeSurface(top, remaining)
		}
		return dy - remaining
	}
	return 0
}

// consumeSurface feeds dy to s and reports how far it actually moved.
func consumeSurface(s ScrollableSurface, dy int) int {
	if s == nil {
		return 0
	}
	before := s.CurrentScroll()
	s.ConsumeScroll(dy)
	return s.CurrentScroll() - before
}

// pushOffset moves the offset up by at most amount, stopping at minOffset.
// It returns the distance moved.
func pushOffset(ctrl OffsetController, amount, minOffset int) int {
	cur := ctrl.TopAndBottomOffset()
	room := cur - minOffset
	if room <= 0 {
		return 0
	}
	move := min(amount, room)
	ctrl.SetTopAndBottomOffset(cur - move)
	return move
}

// pullOffset moves a pushed-up offset back down by at most amount, stopping
// at 0. It returns the distance moved.
func pullOffset(ctrl OffsetController, amount int) int {
	cur := ctrl.TopAndBottomOffset()
	if cur >= 0 {
		return 0
	}
	move := min(amount, -cur)
	ctrl.SetTopAndBottomOffset(cur + move)
	return move
}

// magnitude is |dy| saturated at math.MaxInt.
func magnitude(dy int) int {
	switch {
	case dy == math.MinInt:
		return math.MaxInt
	case dy < 0:
		return -dy
	}
	return dy
}
