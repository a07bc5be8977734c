package streak

import (
	"errors"
	"math"
	"testing"

	"StreakScanner/internal/model"
)

func TestProject_UpStreak(t *testing.T) {
	upRuns := []int{1, 1, 2, 3, 5}
	downRuns := []int{1, 2, 2}
	cur := model.Streak{Length: 2, Direction: model.DirectionUp}

	p, err := Project(upRuns, downRuns, cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 up runs reached 2, 2 went past it.
	wantNextUp := 200.0 / 3.0
	if math.Abs(p.NextUpside-wantNextUp) > 1e-9 {
		t.Errorf("next upside: expected %.4f, got %.4f", wantNextUp, p.NextUpside)
	}

	// Extension branch re-estimates the up history at length 3:
	// reached 3: {3,5}, extended: {5} -> 50%.
	if math.Abs(p.AfterUpUpside-50) > 1e-9 {
		t.Errorf("after-up upside: expected 50, got %.4f", p.AfterUpUpside)
	}

	// Reversal branch starts a fresh down run: reached 1: all 3,
	// extended: {2,2} -> 66.7% down.
	wantAfterDownDown := 200.0 / 3.0
	if math.Abs(p.AfterDownDownside-wantAfterDownDown) > 1e-9 {
		t.Errorf("after-down downside: expected %.4f, got %.4f", wantAfterDownDown, p.AfterDownDownside)
	}
}

func TestProject_DownStreak(t *testing.T) {
	upRuns := []int{2, 4}
	downRuns := []int{1, 3, 3}
	cur := model.Streak{Length: 3, Direction: model.DirectionDown}

	p, err := Project(upRuns, downRuns, cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reached 3: {3,3}, extended: none -> 0% extension, 100% upside next.
	if p.NextDownside != 0 || p.NextUpside != 100 {
		t.Errorf("expected 0/100 next pair, got %.1f/%.1f", p.NextDownside, p.NextUpside)
	}

	// Reversal branch: fresh up run against {2,4} -> both extend past 1.
	if p.AfterUpUpside != 100 {
		t.Errorf("after-up upside: expected 100, got %.1f", p.AfterUpUpside)
	}

	// Extension branch: down run at length 4 -> no down run reached 4 -> 0.
	if p.AfterDownDownside != 0 || p.AfterDownUpside != 100 {
		t.Errorf("expected 0/100 after-down pair, got %.1f/%.1f", p.AfterDownDownside, p.AfterDownUpside)
	}
}

// Every pair the composer emits is complementary.
func TestProject_PairsSumTo100(t *testing.T) {
	cases := []struct {
		up, down []int
		cur      model.Streak
	}{
		{[]int{1, 2, 3}, []int{2, 2}, model.Streak{Length: 1, Direction: model.DirectionUp}},
		{[]int{1}, []int{5, 1, 2}, model.Streak{Length: 4, Direction: model.DirectionDown}},
		{nil, nil, model.Streak{Length: 1, Direction: model.DirectionUp}},
		{[]int{7}, nil, model.Streak{Length: 2, Direction: model.DirectionDown}},
	}
	for _, c := range cases {
		p, err := Project(c.up, c.down, c.cur)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pairs := [][2]float64{
			{p.NextUpside, p.NextDownside},
			{p.AfterUpUpside, p.AfterUpDownside},
			{p.AfterDownUpside, p.AfterDownDownside},
		}
		for i, pair := range pairs {
			if math.Abs(pair[0]+pair[1]-100) > 1e-9 {
				t.Errorf("cur %+v pair %d: %.4f + %.4f != 100", c.cur, i, pair[0], pair[1])
			}
		}
	}
}

// No history at all: the estimator's 0.0 propagates, it is not an error.
func TestProject_NoEvidenceDefaultsToBreak(t *testing.T) {
	p, err := Project(nil, nil, model.Streak{Length: 3, Direction: model.DirectionUp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.NextUpside != 0 || p.NextDownside != 100 {
		t.Errorf("expected 0/100, got %.1f/%.1f", p.NextUpside, p.NextDownside)
	}
	if p.AfterDownDownside != 0 || p.AfterDownUpside != 100 {
		t.Errorf("reversal branch should also default to break, got %.1f/%.1f",
			p.AfterDownDownside, p.AfterDownUpside)
	}
}

func TestProject_NoneDirection(t *testing.T) {
	_, err := Project([]int{1}, []int{1}, model.Streak{Direction: model.DirectionNone})
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAnalyze_Validation(t *testing.T) {
	if _, _, _, _, err := Analyze([]float64{100}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single close: expected ErrInsufficientData, got %v", err)
	}
	if _, _, _, _, err := Analyze(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty series: expected ErrInsufficientData, got %v", err)
	}
	if _, _, _, _, err := Analyze([]float64{10, math.NaN(), 12}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN close: expected ErrInvalidInput, got %v", err)
	}
	if _, _, _, _, err := Analyze([]float64{10, math.Inf(1)}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Inf close: expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 10, 9, 10}
	up, down, cur, proj, err := Analyze(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(up) != 2 || len(down) != 1 {
		t.Errorf("expected 2 up / 1 down runs, got %v / %v", up, down)
	}
	if cur.Length != 1 || cur.Direction != model.DirectionUp {
		t.Errorf("expected (1, up), got %+v", cur)
	}
	if math.Abs(proj.NextUpside+proj.NextDownside-100) > 1e-9 {
		t.Errorf("next pair not complementary: %.4f/%.4f", proj.NextUpside, proj.NextDownside)
	}
}
