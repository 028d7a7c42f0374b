package scoring

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestAggregateFullHouse(t *testing.T) {
	b := Aggregate(1.0, 1.0, ptr(100), ptr(1.0))
	if b.Overall != 100 {
		t.Errorf("overall = %v, want 100", b.Overall)
	}
	if b.Level != "excellent" {
		t.Errorf("level = %q, want excellent", b.Level)
	}
}

func TestAggregateAllZero(t *testing.T) {
	b := Aggregate(0, 0, ptr(0), ptr(0))
	if b.Overall != 0 {
		t.Errorf("overall = %v, want 0", b.Overall)
	}
	if b.Level != "needs_improvement" {
		t.Errorf("level = %q, want needs_improvement", b.Level)
	}
}

func TestAggregateWeights(t *testing.T) {
	b := Aggregate(0.8, 0.5, ptr(70), ptr(0.6))
	// 80*0.25 + 50*0.20 + 70*0.30 + 60*0.25 = 66
	if b.Overall != 66 {
		t.Errorf("overall = %v, want 66", b.Overall)
	}
	if b.Level != "fair" {
		t.Errorf("level = %q, want fair", b.Level)
	}
}

func TestAggregateAbsentComponents(t *testing.T) {
	b := Aggregate(0.8, 0.5, nil, nil)
	if b.Structure != 0 || b.Keywords != 0 {
		t.Errorf("absent components should be zero: %+v", b)
	}
	// 80*0.25 + 50*0.20 = 30; structure/keywords weight is not redistributed.
	if b.Overall != 30 {
		t.Errorf("overall = %v, want 30", b.Overall)
	}
}

func TestCoerceDefensive(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{-5, 0},
		{150, 100},
		{42.34, 42.3},
	}
	for _, tc := range cases {
		if got := coerce("test", tc.in); got != tc.want {
			t.Errorf("coerce(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQuickScore(t *testing.T) {
	if got := QuickScore(0.5, 0.5); got != 50 {
		t.Errorf("QuickScore = %v, want 50", got)
	}
	if got := QuickScore(1.0, 0); got != 60 {
		t.Errorf("QuickScore = %v, want 60", got)
	}
}

func TestLevelBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{85, "very_good"},
		{75, "good"},
		{65, "fair"},
		{55, "below_average"},
		{10, "needs_improvement"},
	}
	for _, tc := range cases {
		if got := Level(tc.score); got != tc.want {
			t.Errorf("Level(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
