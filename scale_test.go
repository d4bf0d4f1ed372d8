package parcoord

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var scaleMapTests = []struct {
	st       ScaleType
	min, max float64
	x, want  float64
}{
	{Linear, 0, 10, 0, 0},
	{Linear, 0, 10, 5, 0.5},
	{Linear, 0, 10, 10, 1},
	{Linear, 0, 10, 15, 1.5},
	{Linear, 0, 10, -5, -0.5},
	{Discrete, -0.5, 2.5, 1, 0.5},
	{Logarithmic, 1, 100, 10, 0.5},
	{Logarithmic, 1, 100, 100, 1},
	{Linear, 3, 3, 3, nan},
	{Linear, nan, 10, 3, nan},
}

func TestScaleMap(t *testing.T) {
	for i, tc := range scaleMapTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewScale()
			s.ScaleType = tc.st
			s.Min, s.Max = tc.min, tc.max
			got := s.Map(tc.x)
			if math.IsNaN(tc.want) {
				if !math.IsNaN(got) {
					t.Errorf("Map(%v) = %v, want NaN", tc.x, got)
				}
				return
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Map(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestScaleAutoscaleFixed(t *testing.T) {
	s := NewScale()
	s.Data = Interval{2, 8}
	s.FixMin(0)
	s.FixMax(10)
	s.autoscale()
	if s.Min != 0 || s.Max != 10 {
		t.Errorf("autoscale with fixed edges = [%v:%v], want [0:10]",
			s.Min, s.Max)
	}
}

func TestScaleDeDegenerate(t *testing.T) {
	s := NewScale()
	s.deDegenerate()
	if s.Min != -1 || s.Max != 1 {
		t.Errorf("unset scale de-degenerated to [%v:%v], want [-1:1]",
			s.Min, s.Max)
	}

	s = NewScale()
	s.Min, s.Max = 4, 4
	s.deDegenerate()
	if s.Min != 3 || s.Max != 5 {
		t.Errorf("degenerate scale widened to [%v:%v], want [3:5]",
			s.Min, s.Max)
	}
}
