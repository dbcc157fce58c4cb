package nestscroll

// Region tells which part of the container a frame row shows.
type Region uint8

const (
	RegionNone Region = iota
	RegionTop
	RegionBottom
)

// Frameable is a surface that can report its visible rows.
type Frameable interface {
	VisibleLine(i int) string
}

// FrameRow is one row of a composed container frame.
type FrameRow struct {
	Text   string
	Region Region
}

// Frame composes the container as Height rows of exactly width cells. The
// top region is drawn at its offset and the bottom region directly below it;
// rows outside either are blank. Surfaces that are not Frameable occupy
// their rows but draw nothing.
func (c *Coordinator) Frame(width int) []FrameRow {
	if c.height <= 0 {
		return nil
	}
	rows := make([]FrameRow, c.height)
	y := 0
	if c.offset != nil {
		y = c.offset.TopAndBottomOffset()
	}
	if c.top != nil {
		c.blit(rows, c.top, RegionTop, y)
		y += c.top.ViewHeight()
	}
	if c.bottom != nil {
		c.blit(rows, c.bottom, RegionBottom, y)
	}
	for i := range rows {
		rows[i].Text = padLine(rows[i].Text, width)
	}
	return rows
}

// blit copies the viewport of s into rows starting at container row dstY.
func (c *Coordinator) blit(rows []FrameRow, s ScrollableSurface, region Region, dstY int) {
	f, _ := s.(Frameable)
	for i, n := 0, s.ViewHeight(); i < n; i++ {
		y := dstY + i
		if y < 0 {
			continue
		}
		if y >= len(rows) {
			return
		}
		rows[y].Region = region
		if f != nil {
			rows[y].Text = f.VisibleLine(i)
		}
	}
}
