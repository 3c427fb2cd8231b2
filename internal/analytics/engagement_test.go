package analytics

import "testing"

func TestCourseEngagementScore(t *testing.T) {
	tests := []struct {
		name string
		in   CourseEngagementInput
		want int
	}{
		{"all zero", CourseEngagementInput{}, 10}, // 退课率 0 反向给满 10 分
		{
			"mixed signals",
			CourseEngagementInput{
				CompletionRate:    50,
				TotalWatchSeconds: 7200, // 2h -> 20
				Views:             250,  // -> 25
				DropRatePercent:   10,   // -> 90
			},
			40, // 50*0.4 + 20*0.3 + 25*0.2 + 90*0.1
		},
		{
			"saturated signals cap at 100",
			CourseEngagementInput{
				CompletionRate:    100,
				TotalWatchSeconds: 360000, // 远超 10h 上限
				Views:             100000,
				DropRatePercent:   0,
			},
			100,
		},
		{
			"drop rate over 100 clamps complement at zero",
			CourseEngagementInput{CompletionRate: 100, DropRatePercent: 150},
			40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseEngagementScore(tt.in)
			if got != tt.want {
				t.Errorf("CourseEngagementScore = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d out of [0,100]", got)
			}
		})
	}
}

func TestStudentEngagementScore(t *testing.T) {
	in := StudentEngagementInput{
		ActiveDays:         15,
		PeriodDays:         30,
		CompletionRate:     80,
		TotalWatchSeconds:  18000, // 5h -> 50
		DistinctCategories: 3,     // -> 60
	}

	got := StudentEngagementScore(in)
	if got.Score != 60 { // (50+80+50+60)/4
		t.Errorf("Score = %v, want 60", got.Score)
	}
	if got.Consistency != 50 {
		t.Errorf("Consistency = %v, want 50", got.Consistency)
	}
	if got.TimeInvestment != 50 {
		t.Errorf("TimeInvestment = %v, want 50", got.TimeInvestment)
	}
	if got.CourseVariety != 60 {
		t.Errorf("CourseVariety = %v, want 60", got.CourseVariety)
	}
}

func TestStudentEngagementScoreEdges(t *testing.T) {
	// 周期为 0 天时规律性子项为 0 而不是除零
	zero := StudentEngagementScore(StudentEngagementInput{})
	if zero.Score != 0 {
		t.Errorf("empty input Score = %v, want 0", zero.Score)
	}

	// 所有子项拉满仍不超过 100
	max := StudentEngagementScore(StudentEngagementInput{
		ActiveDays:         30,
		PeriodDays:         30,
		CompletionRate:     100,
		TotalWatchSeconds:  360000,
		DistinctCategories: 10,
	})
	if max.Score != 100 {
		t.Errorf("saturated Score = %v, want 100", max.Score)
	}
}

func TestStudentEngagementScoreRange(t *testing.T) {
	inputs := []StudentEngagementInput{
		{ActiveDays: 1, PeriodDays: 7, CompletionRate: 12.5, TotalWatchSeconds: 333, DistinctCategories: 1},
		{ActiveDays: 7, PeriodDays: 7, CompletionRate: 99.99, TotalWatchSeconds: 99999, DistinctCategories: 7},
		{ActiveDays: 0, PeriodDays: 365, CompletionRate: 0, TotalWatchSeconds: 0, DistinctCategories: 0},
	}
	for _, in := range inputs {
		got := StudentEngagementScore(in)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("score %v out of [0,100] for %+v", got.Score, in)
		}
	}
}
