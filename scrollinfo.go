package nestscroll

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ScrollInfo is a snapshot of a container's scroll state. The top and bottom
// payloads belong to the surfaces that produced them and are passed back
// untouched on restore.
type ScrollInfo struct {
	topInfo         any
	bottomInfo      any
	topBottomOffset int
}

// NewScrollInfo builds a snapshot from its parts.
func NewScrollInfo(topInfo, bottomInfo any, topBottomOffset int) *ScrollInfo {
	return &ScrollInfo{
		topInfo:         topInfo,
		bottomInfo:      bottomInfo,
		topBottomOffset: topBottomOffset,
	}
}

// TopInfo returns the top surface's payload, or nil when no top was attached.
func (s *ScrollInfo) TopInfo() any { return s.topInfo }

// BottomInfo returns the bottom surface's payload, or nil when no bottom was
// attached.
func (s *ScrollInfo) BottomInfo() any { return s.bottomInfo }

// TopBottomOffset returns the saved offset of the top region.
func (s *ScrollInfo) TopBottomOffset() int { return s.topBottomOffset }

// SaveScrollInfo captures both surfaces and the offset. A missing surface
// leaves a nil payload.
func (c *Coordinator) SaveScrollInfo() *ScrollInfo {
	var topInfo, bottomInfo any
	if c.top != nil {
		topInfo = c.top.SaveScrollInfo()
	}
	if c.bottom != nil {
		bottomInfo = c.bottom.SaveScrollInfo()
	}
	offset := 0
	if c.offset != nil {
		offset = c.offset.TopAndBottomOffset()
	}
	return NewScrollInfo(topInfo, bottomInfo, offset)
}

// RestoreScrollInfo applies a snapshot: offset first, so surfaces restore
// against the final geometry, then the top and bottom payloads. A nil
// snapshot is ignored.
func (c *Coordinator) RestoreScrollInfo(info *ScrollInfo) {
	if info == nil {
		return
	}
	c.setOffset(info.topBottomOffset)
	if c.top != nil {
		c.top.RestoreScrollInfo(info.topInfo)
	}
	if c.bottom != nil {
		c.bottom.RestoreScrollInfo(info.bottomInfo)
	}
}

// scrollInfoFile is the on-disk shape of a ScrollInfo.
type scrollInfoFile struct {
	Offset int `yaml:"offset"`
	Top    any `yaml:"top,omitempty"`
	Bottom any `yaml:"bottom,omitempty"`
}

type scrollInfoFileIn struct {
	Offset int       `yaml:"offset"`
	Top    yaml.Node `yaml:"top"`
	Bottom yaml.Node `yaml:"bottom"`
}

// EncodeScrollInfo writes info as YAML, so scroll state can outlive the
// process. Payloads are encoded with their own yaml tags.
func EncodeScrollInfo(w io.Writer, info *ScrollInfo) error {
	if info == nil {
		return ErrNoScrollInfo
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := scrollInfoFile{
		Offset: info.topBottomOffset,
		Top:    info.topInfo,
		Bottom: info.bottomInfo,
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode scroll info: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode scroll info: %w", err)
	}
	return nil
}

// DecodeScrollInfo reads a snapshot written by EncodeScrollInfo. The
// payloads come back as *yaml.Node; surfaces that support persistence decode
// them in RestoreScrollInfo. Absent payloads are nil.
func DecodeScrollInfo(r io.Reader) (*ScrollInfo, error) {
	var doc scrollInfoFileIn
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode scroll info: %w", ErrNoScrollInfo)
		}
		return nil, fmt.Errorf("decode scroll info: %w", err)
	}
	return NewScrollInfo(nodeOrNil(&doc.Top), nodeOrNil(&doc.Bottom), doc.Offset), nil
}

func nodeOrNil(n *yaml.Node) any {
	if n.Kind == 0 || n.Tag == "!!null" {
		return nil
	}
	return n
}
