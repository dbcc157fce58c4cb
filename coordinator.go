package nestscroll

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

// Coordinator joins a top and a bottom surface into one continuous vertical
// scroll. The top region sits at TopAndBottomOffset inside a container of
// Height rows; the bottom region follows directly below it.
//
// The whole axis, in scroll order, is: top content, top offset, bottom
// content. A Coordinator is not safe for concurrent use; drive it from the
// goroutine that owns the UI.
type Coordinator struct {
	top    TopSurface
	bottom BottomSurface
	offset OffsetController
	height int

	listeners listenerRegistry
	log       *logrus.Entry
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for attach failures and scroll tracing.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHeight sets the initial container height.
func WithHeight(h int) Option {
	return func(c *Coordinator) { c.height = h }
}

// WithOffsetController replaces the default TopArea.
func WithOffsetController(ctrl OffsetController) Option {
	return func(c *Coordinator) { c.offset = ctrl }
}

// NewCoordinator creates a coordinator with no surfaces attached and a
// TopArea offset controller.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		offset: NewTopArea(),
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.offset != nil {
		c.offset.SetOffsetCallback(c.onTopAreaOffset)
	}
	return c
}

// =============================================================================
// Attachment
// =============================================================================

// SetTopView attaches v as the top region. v must be a non-nil TopSurface;
// otherwise the coordinator is left untouched and an error wrapping
// ErrNotTopSurface is returned.
func (c *Coordinator) SetTopView(v any) error {
	top, ok := v.(TopSurface)
	if !ok || isNil(v) {
		err := fmt.Errorf("%w (got %T)", ErrNotTopSurface, v)
		c.log.WithError(err).Warn("rejected top view")
		return err
	}
	top.InjectScrollNotifier(c.onTopScroll)
	if c.top != nil && !sameValue(c.top, top) {
		c.top.InjectScrollNotifier(nil)
	}
	c.top = top
	c.log.WithField("view", fmt.Sprintf("%T", v)).Debug("top view attached")
	return nil
}

// SetBottomView attaches v as the bottom region. v must be a non-nil
// BottomSurface; otherwise the coordinator is left untouched and an error
// wrapping ErrNotBottomSurface is returned.
func (c *Coordinator) SetBottomView(v any) error {
	bottom, ok := v.(BottomSurface)
	if !ok || isNil(v) {
		err := fmt.Errorf("%w (got %T)", ErrNotBottomSurface, v)
		c.log.WithError(err).Warn("rejected bottom view")
		return err
	}
	bottom.InjectScrollNotifier(c.onBottomScroll)
	if c.bottom != nil && !sameValue(c.bottom, bottom) {
		c.bottom.InjectScrollNotifier(nil)
	}
	c.bottom = bottom
	c.log.WithField("view", fmt.Sprintf("%T", v)).Debug("bottom view attached")
	return nil
}

// DetachTopView removes the top region, if any.
func (c *Coordinator) DetachTopView() {
	if c.top != nil {
		c.top.InjectScrollNotifier(nil)
		c.top = nil
	}
}

// DetachBottomView removes the bottom region, if any.
func (c *Coordinator) DetachBottomView() {
	if c.bottom != nil {
		c.bottom.InjectScrollNotifier(nil)
		c.bottom = nil
	}
}

// SetOffsetController swaps the offset controller. The previous controller
// stops reporting to this coordinator.
func (c *Coordinator) SetOffsetController(ctrl OffsetController) {
	if c.offset != nil {
		c.offset.SetOffsetCallback(nil)
	}
	c.offset = ctrl
	if ctrl != nil {
		ctrl.SetOffsetCallback(c.onTopAreaOffset)
	}
}

// TopView returns the attached top surface, or nil.
func (c *Coordinator) TopView() TopSurface { return c.top }

// BottomView returns the attached bottom surface, or nil.
func (c *Coordinator) BottomView() BottomSurface { return c.bottom }

// OffsetController returns the offset controller, or nil.
func (c *Coordinator) OffsetController() OffsetController { return c.offset }

// SetHeight sets the container height. The host calls it after layout.
func (c *Coordinator) SetHeight(h int) { c.height = h }

// Height returns the container height.
func (c *Coordinator) Height() int { return c.height }

// =============================================================================
// Listeners
// =============================================================================

// AddScrollListener registers l. Adding a listener twice has no effect.
// Listeners whose dynamic type is not comparable, such as a bare func type,
// cannot be told apart and are rejected with a warning.
func (c *Coordinator) AddScrollListener(l ScrollListener) {
	if l != nil && !comparableListener(l) {
		c.log.WithField("listener", fmt.Sprintf("%T", l)).Warn("rejected scroll listener: type is not comparable")
		return
	}
	c.listeners.add(l)
}

// RemoveScrollListener unregisters l. Removing an unknown listener has no
// effect. It is safe to call from inside OnScroll.
func (c *Coordinator) RemoveScrollListener(l ScrollListener) {
	c.listeners.remove(l)
}

// =============================================================================
// Scrolling
// =============================================================================

// ScrollBy routes dy by direction. Positive deltas go to the top area (top
// content, then offset); the bottom surface is never touched. Negative
// deltas go to the bottom surface alone.
func (c *Coordinator) ScrollBy(dy int) {
	if c.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		c.log.WithField("dy", dy).Trace("scroll by")
	}
	switch {
	case dy > 0:
		c.scrollTopArea(dy)
	case dy < 0:
		if c.bottom != nil {
			c.bottom.ConsumeScroll(dy)
		}
	}
}

// ScrollChained walks the whole axis, letting whatever one region cannot
// absorb spill into the next: top, offset, bottom for positive deltas and
// bottom, offset, top for negative ones. It returns the consumed part of dy.
func (c *Coordinator) ScrollChained(dy int) int {
	switch {
	case dy > 0:
		consumed := c.scrollTopArea(dy)
		if rest := dy - consumed; rest > 0 {
			consumed += consumeSurface(c.bottom, rest)
		}
		return consumed
	case dy < 0:
		consumed := consumeSurface(c.bottom, dy)
		if rest := dy - consumed; rest < 0 {
			consumed += c.scrollTopArea(rest)
		}
		return consumed
	}
	return 0
}

func (c *Coordinator) scrollTopArea(dy int) int {
	if s, ok := c.offset.(TopAreaScroller); ok {
		return s.ScrollTopArea(c.top, dy, c.OffsetRange())
	}
	return scrollTopArea(c.offset, c.top, dy, c.OffsetRange())
}

// ScrollToTop brings every dimension back to its start: bottom content,
// offset and top content.
func (c *Coordinator) ScrollToTop() {
	if c.bottom != nil {
		c.bottom.ScrollToStart()
	}
	if c.top != nil {
		c.setOffset(0)
		c.top.ScrollToStart()
	}
}

// ScrollToBottom scrolls the top content to its end, pushes the top region
// up until the end of the bottom content meets the bottom of the container,
// and scrolls the bottom content to its end.
//
// When the bottom content is shorter than its view and top plus content
// still fit in the container, the top region stays at offset 0.
func (c *Coordinator) ScrollToBottom() {
	if c.top != nil {
		c.top.ScrollToEnd()
		if c.bottom != nil {
			topHeight := c.top.ViewHeight()
			contentHeight := c.bottom.ContentHeight()
			switch {
			case contentHeight == HeightEnoughToScroll:
				c.setOffset(c.height - c.bottom.ViewHeight() - topHeight)
			case topHeight+contentHeight < c.height:
				c.setOffset(0)
			default:
				c.setOffset(c.height - contentHeight - topHeight)
			}
		}
	}
	if c.bottom != nil {
		c.bottom.ScrollToEnd()
	}
}

// ScrollBottomViewToTop shows the start of the bottom content at the top of
// the container, with the top region scrolled to its end and pushed up.
func (c *Coordinator) ScrollBottomViewToTop() {
	if c.top != nil {
		c.top.ScrollToEnd()
	}
	if c.bottom == nil {
		return
	}
	c.bottom.ScrollToStart()

	bottomHeight := c.bottom.ContentHeight()
	if bottomHeight == HeightEnoughToScroll {
		bottomHeight = c.bottom.ViewHeight()
	}
	c.setOffset(c.height - bottomHeight - c.topHeight())
}

func (c *Coordinator) setOffset(offset int) {
	if c.offset != nil {
		c.offset.SetTopAndBottomOffset(offset)
	}
}

func (c *Coordinator) topHeight() int {
	if c.top == nil {
		return 0
	}
	return c.top.ViewHeight()
}

// OffsetRange is how far the top region can be pushed up before the bottom
// region, or its shorter content, fills the rest of the container. It is 0
// until both surfaces are attached and may be negative when everything fits.
func (c *Coordinator) OffsetRange() int {
	if c.top == nil || c.bottom == nil {
		return 0
	}
	contentHeight := c.bottom.ContentHeight()
	if contentHeight == HeightEnoughToScroll {
		return c.top.ViewHeight() - (c.height - c.bottom.ViewHeight())
	}
	return c.top.ViewHeight() - (c.height - contentHeight)
}

// =============================================================================
// Notification
// =============================================================================

// Position reads the unified scroll position from the attached surfaces.
func (c *Coordinator) Position() Position {
	p := Position{
		OffsetCurrent: c.offsetCurrent(),
		OffsetRange:   c.OffsetRange(),
	}
	p.TopCurrent, p.TopRange = surfaceScroll(c.top)
	p.BottomCurrent, p.BottomRange = surfaceScroll(c.bottom)
	return p
}

func (c *Coordinator) onTopScroll(current, scrollRange int) {
	p := c.Position()
	p.TopCurrent, p.TopRange = current, scrollRange
	c.dispatch(p)
}

func (c *Coordinator) onBottomScroll(current, scrollRange int) {
	p := c.Position()
	p.BottomCurrent, p.BottomRange = current, scrollRange
	c.dispatch(p)
}

func (c *Coordinator) onTopAreaOffset(offset int) {
	p := c.Position()
	p.OffsetCurrent = -offset
	c.dispatch(p)
}

func (c *Coordinator) dispatch(p Position) {
	if c.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		c.log.WithFields(logrus.Fields{
			"position":  p.String(),
			"listeners": c.listeners.size(),
		}).Trace("dispatch scroll")
	}
	c.listeners.dispatch(p)
}

func (c *Coordinator) offsetCurrent() int {
	if c.offset == nil {
		return 0
	}
	return -c.offset.TopAndBottomOffset()
}

// surfaceScroll reads current and range, treating a nil surface as empty.
func surfaceScroll(s ScrollableSurface) (current, scrollRange int) {
	if s == nil {
		return 0, 0
	}
	return s.CurrentScroll(), s.ScrollOffsetRange()
}

// isNil reports whether v is nil or a typed nil such as (*Layer)(nil).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameValue compares a and b with ==, treating values of a non-comparable
// type as different.
func sameValue(a, b any) bool {
	if t := reflect.TypeOf(a); t == nil || t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
