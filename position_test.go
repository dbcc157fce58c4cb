package nestscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	p := Position{
		TopCurrent: 3, TopRange: 10,
		OffsetCurrent: 20, OffsetRange: 200,
		BottomCurrent: 7, BottomRange: 90,
	}
	assert.Equal(t, 30, p.Total())
	assert.Equal(t, 300, p.TotalRange())
	assert.Equal(t, "top 3/10 offset 20/200 bottom 7/90", p.String())

	p.OffsetRange = -50
	assert.Equal(t, 100, p.TotalRange())
}
