package parcoord

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLayout(t *testing.T) {
	assert.Equal(t, Vertical, resolveLayout(false, false))
	assert.Equal(t, Horizontal, resolveLayout(false, true))
	assert.Equal(t, Radial, resolveLayout(true, false))
	// Polar wins over inverted.
	assert.Equal(t, Radial, resolveLayout(true, true))
}

func TestAxisGeometryFractions(t *testing.T) {
	for _, count := range []int{1, 2, 5, 8} {
		for pos := 0; pos < count; pos++ {
			t.Run(fmt.Sprintf("%d_of_%d", pos, count), func(t *testing.T) {
				frac := (float64(pos) + 0.5) / float64(count)

				g := axisGeometry(pos, count, Vertical)
				assert.Equal(t, frac, g.Left)
				assert.Equal(t, 0.0, g.Width)
				assert.True(t, math.IsNaN(g.Top), "Top must be unset")
				assert.True(t, math.IsNaN(g.Height), "Height must be unset")
				assert.True(t, math.IsNaN(g.Angle), "Angle must be unset")

				g = axisGeometry(pos, count, Radial)
				assert.Equal(t, 360*frac, g.Angle)
				assert.True(t, math.IsNaN(g.Left))
				assert.True(t, math.IsNaN(g.Top))
			})
		}
	}
}

func TestAxisGeometryTransposed(t *testing.T) {
	v := axisGeometry(2, 5, Vertical)
	h := axisGeometry(2, 5, Horizontal)

	// The offset and size roles swap between the orientations.
	assert.Equal(t, v.Left, h.Top)
	assert.Equal(t, v.Width, h.Height)

	// No residual values from the other orientation.
	assert.True(t, math.IsNaN(h.Left))
	assert.True(t, math.IsNaN(h.Width))
	assert.True(t, math.IsNaN(v.Top))
	assert.True(t, math.IsNaN(v.Height))
}

func TestAxisGeometryIdempotent(t *testing.T) {
	for _, layout := range []Layout{Vertical, Horizontal, Radial} {
		a := axisGeometry(3, 7, layout)
		b := axisGeometry(3, 7, layout)
		require.True(t, a.Equal(b), "layout %s: %v != %v", layout, a, b)
	}
}

func TestAxisGeometryAfterFlip(t *testing.T) {
	// Re-positioning an axis after an orientation flip must not keep
	// stale values from the previous layout.
	a := newAxis(1, AxisOptions{}, AxisOptions{})
	a.setGeometry(4, Vertical)
	a.setGeometry(4, Horizontal)

	want := axisGeometry(1, 4, Horizontal)
	require.True(t, a.Geometry.Equal(want), "got %v, want %v", a.Geometry, want)
}
