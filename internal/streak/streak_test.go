package streak

import (
	"math"
	"reflect"
	"testing"

	"StreakScanner/internal/model"
)

func TestSegment_AlternatingRuns(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 10, 9, 10}
	up, down := Segment(closes)
	if !reflect.DeepEqual(up, []int{2, 1}) {
		t.Errorf("up runs: expected [2 1], got %v", up)
	}
	if !reflect.DeepEqual(down, []int{3}) {
		t.Errorf("down runs: expected [3], got %v", down)
	}
}

func TestSegment_TieCountsAsDown(t *testing.T) {
	closes := []float64{10, 10, 10, 11}
	up, down := Segment(closes)
	if !reflect.DeepEqual(down, []int{2}) {
		t.Errorf("flat closes should form a down run, got %v", down)
	}
	if !reflect.DeepEqual(up, []int{1}) {
		t.Errorf("expected trailing up run of 1, got %v", up)
	}
}

func TestSegment_ShortSeries(t *testing.T) {
	for _, closes := range [][]float64{nil, {}, {100}} {
		up, down := Segment(closes)
		if len(up) != 0 || len(down) != 0 {
			t.Errorf("closes %v: expected empty runs, got up=%v down=%v", closes, up, down)
		}
	}
}

// Every transition lands in exactly one run, so the run lengths of both
// directions together must sum to N-1.
func TestSegment_CoversAllTransitions(t *testing.T) {
	series := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{1, 2, 1, 2, 1, 2},
		{3, 3, 3, 3},
		{10, 11, 12, 11, 10, 9, 10},
		{7, 2},
	}
	for _, closes := range series {
		up, down := Segment(closes)
		total := 0
		for _, r := range up {
			total += r
		}
		for _, r := range down {
			total += r
		}
		if total != len(closes)-1 {
			t.Errorf("closes %v: run lengths sum to %d, want %d", closes, total, len(closes)-1)
		}
	}
}

func TestCurrent_Directions(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   model.Streak
	}{
		{"too short", []float64{42}, model.Streak{Length: 0, Direction: model.DirectionNone}},
		{"empty", nil, model.Streak{Length: 0, Direction: model.DirectionNone}},
		{"single up", []float64{10, 9, 10}, model.Streak{Length: 1, Direction: model.DirectionUp}},
		{"long up", []float64{5, 6, 7, 8}, model.Streak{Length: 3, Direction: model.DirectionUp}},
		{"single down", []float64{9, 10, 9}, model.Streak{Length: 1, Direction: model.DirectionDown}},
		{"tie extends down", []float64{10, 9, 9}, model.Streak{Length: 2, Direction: model.DirectionDown}},
		{"full series down", []float64{4, 3, 2, 1}, model.Streak{Length: 3, Direction: model.DirectionDown}},
		{"scenario one", []float64{10, 11, 12, 11, 10, 9, 10}, model.Streak{Length: 1, Direction: model.DirectionUp}},
	}
	for _, tt := range tests {
		got := Current(tt.closes)
		if got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

// The trailing run the detector reports must match the last run the
// segmenter appends for that direction.
func TestCurrent_ConsistentWithSegment(t *testing.T) {
	series := [][]float64{
		{1, 2, 3, 2, 3, 4, 5},
		{5, 4, 3, 4, 3, 2},
		{1, 2, 1, 2, 1},
		{2, 2, 2},
		{10, 11, 12, 11, 10, 9, 10},
		{1, 5},
		{5, 1},
	}
	for _, closes := range series {
		cur := Current(closes)
		up, down := Segment(closes)

		var trailing []int
		if cur.Direction == model.DirectionUp {
			trailing = up
		} else {
			trailing = down
		}
		if len(trailing) == 0 {
			t.Errorf("closes %v: detector found %v but segmenter has no %s runs", closes, cur, cur.Direction)
			continue
		}
		if last := trailing[len(trailing)-1]; last != cur.Length {
			t.Errorf("closes %v: detector length %d, segmenter trailing run %d", closes, cur.Length, last)
		}
	}
}

func TestExtendProbability(t *testing.T) {
	tests := []struct {
		name   string
		runs   []int
		length int
		want   float64
	}{
		{"mixed history", []int{1, 1, 2, 3, 5}, 2, 200.0 / 3.0},
		{"empty history", nil, 1, 0},
		{"empty history long target", nil, 9, 0},
		{"no run reached target", []int{1, 2, 2}, 3, 0},
		{"all runs extended", []int{3, 4, 5}, 2, 100},
		{"new run always reaches one", []int{1, 2, 3}, 0, 100},
		{"exact length runs only", []int{2, 2, 2}, 2, 0},
	}
	for _, tt := range tests {
		got := ExtendProbability(tt.runs, tt.length)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %.4f, got %.4f", tt.name, tt.want, got)
		}
	}
}

// A run of length 10 is evidence for every intermediate length, not just its
// own final length.
func TestExtendProbability_LongRunCountsAtEveryLength(t *testing.T) {
	runs := []int{10}
	for length := 1; length < 10; length++ {
		if got := ExtendProbability(runs, length); got != 100 {
			t.Errorf("length %d: expected 100, got %.1f", length, got)
		}
	}
	if got := ExtendProbability(runs, 10); got != 0 {
		t.Errorf("length 10: expected 0, got %.1f", got)
	}
}

func TestStats(t *testing.T) {
	s := Stats([]int{1, 1, 2, 3, 5})
	if s.Count != 5 {
		t.Errorf("count: expected 5, got %d", s.Count)
	}
	if s.Longest != 5 {
		t.Errorf("longest: expected 5, got %d", s.Longest)
	}
	if math.Abs(s.Average-2.4) > 1e-9 {
		t.Errorf("average: expected 2.4, got %.2f", s.Average)
	}
	if s.Distribution[1] != 2 || s.Distribution[5] != 1 {
		t.Errorf("unexpected distribution: %v", s.Distribution)
	}

	empty := Stats(nil)
	if empty.Count != 0 || empty.Longest != 0 || empty.Average != 0 {
		t.Errorf("empty stats should be zero, got %+v", empty)
	}
}
