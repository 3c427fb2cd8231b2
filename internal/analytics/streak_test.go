package analytics

import (
	"testing"
	"time"
)

func activeSet(today time.Time, offsets ...int) map[string]bool {
	set := make(map[string]bool)
	for _, off := range offsets {
		set[DayKey(today.AddDate(0, 0, -off))] = true
	}
	return set
}

func TestCurrentStreak(t *testing.T) {
	today := day(2025, 6, 10)

	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"three consecutive days ending today", []int{0, 1, 2}, 3},
		{"no activity at all", nil, 0},
		{"only today", []int{0}, 1},
		{"today inactive keeps streak alive", []int{1, 2, 3}, 3},
		{"gap breaks streak", []int{0, 1, 3, 4}, 2},
		{"today inactive and yesterday inactive", []int{2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(activeSet(today, tt.offsets...), today)
			if got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("streak must be non-negative, got %d", got)
			}
		})
	}
}

func TestCurrentStreakBounded(t *testing.T) {
	today := day(2025, 6, 10)
	// 活跃天数超出回溯上限
	set := make(map[string]bool)
	for i := 0; i < 500; i++ {
		set[DayKey(today.AddDate(0, 0, -i))] = true
	}

	if got := CurrentStreak(set, today); got != maxStreakLookback {
		t.Errorf("CurrentStreak = %d, want bounded at %d", got, maxStreakLookback)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []bool
		want int
	}{
		{"empty", nil, 0},
		{"all inactive", []bool{false, false, false}, 0},
		{"all active", []bool{true, true, true}, 3},
		{"run in the middle", []bool{false, true, true, true, false, true}, 3},
		{"longest run at the end", []bool{true, false, true, true}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestStreak(tt.days); got != tt.want {
				t.Errorf("LongestStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActivityFlags(t *testing.T) {
	today := day(2025, 6, 10)
	set := activeSet(today, 0, 2)

	flags := ActivityFlags(set, today, 4)
	want := []bool{false, true, false, true} // 6-07, 6-08, 6-09, 6-10

	if len(flags) != len(want) {
		t.Fatalf("expected %d flags, got %d", len(want), len(flags))
	}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("flag %d = %v, want %v", i, flags[i], want[i])
		}
	}
}
