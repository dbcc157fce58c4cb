package nestscroll

// HeightEnoughToScroll is returned by BottomSurface.ContentHeight when the
// content already fills the surface's own view, so the container never needs
// to compensate the top offset for short content.
const HeightEnoughToScroll = -1

// ScrollNotifier is injected into a surface by the Coordinator. The surface
// calls it after every change of its internal scroll position.
type ScrollNotifier func(current, scrollRange int)

// ScrollableSurface is the capability shared by both regions of a nested
// scroll container.
type ScrollableSurface interface {
	// CurrentScroll is the position within the surface's own content.
	CurrentScroll() int
	// ScrollOffsetRange is the maximum value CurrentScroll can reach.
	ScrollOffsetRange() int
	// ConsumeScroll moves the content by dy, stopping at either end.
	// Any int is a valid delta; implementations saturate and never wrap.
	ConsumeScroll(dy int)
	// ScrollToStart and ScrollToEnd pin the content to 0 and to the range.
	ScrollToStart()
	ScrollToEnd()
	// ViewHeight is the measured height of the surface inside the container.
	ViewHeight() int

	// InjectScrollNotifier replaces the notifier; nil detaches it.
	InjectScrollNotifier(n ScrollNotifier)

	// SaveScrollInfo returns an opaque snapshot that only this surface
	// understands. RestoreScrollInfo ignores payloads it does not recognise.
	SaveScrollInfo() any
	RestoreScrollInfo(info any)
}

// TopSurface is the upper region, usually a header.
type TopSurface interface {
	ScrollableSurface
}

// BottomSurface is the lower region, usually a list.
type BottomSurface interface {
	ScrollableSurface
	// ContentHeight is the height of the content when it is shorter than
	// the view, or HeightEnoughToScroll.
	ContentHeight() int
}
