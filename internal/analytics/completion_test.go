package analytics

import "testing"

func TestCourseCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"10 enrollments 4 completed", 4, 10, 40},
		{"no enrollments", 0, 0, 0},
		{"all completed", 7, 7, 100},
		{"none completed", 0, 12, 0},
		{"rounds up", 1, 3, 33},
		{"rounds half up", 1, 8, 13}, // 12.5 -> 13
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseCompletionRate(tt.completed, tt.total)
			if got != tt.want {
				t.Errorf("CourseCompletionRate(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("completion rate %d out of [0,100]", got)
			}
		})
	}
}

func TestStudentAverageProgress(t *testing.T) {
	tests := []struct {
		name       string
		progresses []CourseProgress
		want       float64
	}{
		{"no enrollments", nil, 0},
		{
			"single course half done",
			[]CourseProgress{{CompletedLessons: 5, TotalLessons: 10}},
			50,
		},
		{
			"averages across courses",
			[]CourseProgress{
				{CompletedLessons: 10, TotalLessons: 10},
				{CompletedLessons: 0, TotalLessons: 10},
			},
			50,
		},
		{
			"course without published lessons counts as zero",
			[]CourseProgress{
				{CompletedLessons: 0, TotalLessons: 0},
				{CompletedLessons: 10, TotalLessons: 10},
			},
			50,
		},
		{
			"rounded to two decimals",
			[]CourseProgress{
				{CompletedLessons: 1, TotalLessons: 3},
				{CompletedLessons: 1, TotalLessons: 3},
				{CompletedLessons: 1, TotalLessons: 3},
			},
			33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StudentAverageProgress(tt.progresses)
			if got != tt.want {
				t.Errorf("StudentAverageProgress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(2.346); got != 2.35 {
		t.Errorf("Round2(2.346) = %v", got)
	}
	if got := Round2(2.344); got != 2.34 {
		t.Errorf("Round2(2.344) = %v", got)
	}
	if got := Round2(50); got != 50 {
		t.Errorf("Round2(50) = %v", got)
	}
}
