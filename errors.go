package nestscroll

import "errors"

var (
	// ErrNotTopSurface is returned when a view attached as the top region
	// does not implement TopSurface.
	ErrNotTopSurface = errors.New("nestscroll: top view must implement TopSurface")

	// ErrNotBottomSurface is returned when a view attached as the bottom
	// region does not implement BottomSurface.
	ErrNotBottomSurface = errors.New("nestscroll: bottom view must implement BottomSurface")

	// ErrNoScrollInfo is returned when encoding a nil snapshot.
	ErrNoScrollInfo = errors.New("nestscroll: no scroll info")
)
