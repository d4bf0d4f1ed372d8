package parcoord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointLabelPrecedence(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewChart(Options{
		Parallel: true,
		Axes: []AxisOptions{
			{Format: "%.1f kg"},
			{Type: Discrete, Categories: []string{"low", "mid", "high"}},
			{Type: Time, TimeFmt: "2006-01-02", T0: t0},
			{},
		},
	},
		NewSeries("a", 3.14159, 2, 86400, 2.5),
	)

	s := c.Series[0]
	assert.Equal(t, "3.1 kg", c.PointLabel(s, 0))
	assert.Equal(t, "high", c.PointLabel(s, 1))
	assert.Equal(t, "2020-01-02", c.PointLabel(s, 2))
	assert.Equal(t, "2.5", c.PointLabel(s, 3))
}

func TestPointLabelFormatWinsOverCategories(t *testing.T) {
	c := NewChart(Options{
		Parallel: true,
		Axes: []AxisOptions{{
			Format:     "#%.0f",
			Type:       Discrete,
			Categories: []string{"zero", "one", "two"},
		}},
	},
		NewSeries("a", 1),
	)
	assert.Equal(t, "#1", c.PointLabel(c.Series[0], 0))
}

func TestPointLabelCategoryOutOfRange(t *testing.T) {
	c := NewChart(Options{
		Parallel: true,
		Axes: []AxisOptions{{
			Type:       Discrete,
			Categories: []string{"zero", "one"},
		}},
	},
		NewSeries("a", 5),
	)
	// No category at index 5: fall back to the raw value.
	assert.Equal(t, "5", c.PointLabel(c.Series[0], 0))
}

func TestPointLabelIdempotent(t *testing.T) {
	c := NewChart(Options{
		Parallel: true,
		Axes:     []AxisOptions{{Format: "%.2f"}},
	},
		NewSeries("a", 1.5),
	)
	s := c.Series[0]

	first := c.PointLabel(s, 0)
	require.Equal(t, "1.50", first)

	// The resolved value is cached on the point; a later option change
	// does not alter an already formatted label.
	c.Axes[0].Options.Format = "%.0f"
	assert.Equal(t, first, c.PointLabel(s, 0))
}

func TestPointLabelOutOfRangeIndex(t *testing.T) {
	c := parallel(NewSeries("a", 1))
	assert.Equal(t, "", c.PointLabel(c.Series[0], -1))
	assert.Equal(t, "", c.PointLabel(c.Series[0], 5))
}

func TestDefaultTimeFmt(t *testing.T) {
	tests := []struct {
		span time.Duration
		want string
	}{
		{30 * time.Second, "15:04:05"},
		{6 * time.Hour, "15:04"},
		{10 * 24 * time.Hour, "Jan _2 15:04"},
		{300 * 24 * time.Hour, "2006-01-02"},
		{5 * 365 * 24 * time.Hour, "Jan 2006"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, defaultTimeFmt(tc.span), tc.span.String())
	}
}
