package nestscroll

import "fmt"

// Position is the unified scroll position of a container. It is computed on
// demand and handed to listeners; it is never stored.
//
// OffsetCurrent is the negated top offset, so it grows as the top region is
// pushed out of view.
type Position struct {
	TopCurrent    int
	TopRange      int
	OffsetCurrent int
	OffsetRange   int
	BottomCurrent int
	BottomRange   int
}

// Total is the position along the single axis top → offset → bottom.
func (p Position) Total() int {
	return p.TopCurrent + p.OffsetCurrent + p.BottomCurrent
}

// TotalRange is the length of the single axis. A negative offset range means
// the top region never needs to leave the view and counts as 0.
func (p Position) TotalRange() int {
	return p.TopRange + max(p.OffsetRange, 0) + p.BottomRange
}

func (p Position) String() string {
	return fmt.Sprintf("top %d/%d offset %d/%d bottom %d/%d",
		p.TopCurrent, p.TopRange,
		p.OffsetCurrent, p.OffsetRange,
		p.BottomCurrent, p.BottomRange)
}
