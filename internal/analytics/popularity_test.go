package analytics

import (
	"course_platform_backend/internal/util"
	"errors"
	"testing"
)

func TestParseMetric(t *testing.T) {
	for _, valid := range []string{"enrollments", "completions", "watch_time", "rating"} {
		if _, err := ParseMetric(valid); err != nil {
			t.Errorf("ParseMetric(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseMetric("views"); !errors.Is(err, util.ErrInvalidMetric) {
		t.Errorf("expected ErrInvalidMetric, got %v", err)
	}
}

func TestRankCoursesStableTieBreak(t *testing.T) {
	// A 和 B 报名数相同，保持传入顺序
	courses := []CourseMetric{
		{CourseID: 1, Value: 50}, // A
		{CourseID: 2, Value: 50}, // B
		{CourseID: 3, Value: 30}, // C
	}

	ranked := RankCourses(courses, 10)

	want := []RankedCourse{
		{Rank: 1, CourseID: 1, Value: 50},
		{Rank: 2, CourseID: 2, Value: 50},
		{Rank: 3, CourseID: 3, Value: 30},
	}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d courses, got %d", len(want), len(ranked))
	}
	for i, w := range want {
		if ranked[i] != w {
			t.Errorf("rank %d: got %+v, want %+v", i, ranked[i], w)
		}
	}
}

func TestRankCoursesTruncatesToLimit(t *testing.T) {
	courses := []CourseMetric{
		{CourseID: 1, Value: 10},
		{CourseID: 2, Value: 40},
		{CourseID: 3, Value: 30},
		{CourseID: 4, Value: 20},
	}

	ranked := RankCourses(courses, 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(ranked))
	}
	if ranked[0].CourseID != 2 || ranked[1].CourseID != 3 {
		t.Errorf("wrong order after truncation: %+v", ranked)
	}
}

func TestRankCoursesContiguousRanks(t *testing.T) {
	courses := []CourseMetric{
		{CourseID: 1, Value: 5},
		{CourseID: 2, Value: 5},
		{CourseID: 3, Value: 5},
		{CourseID: 4, Value: 1},
	}

	ranked := RankCourses(courses, 0) // limit 0 表示不截断
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Errorf("rank at %d: got %d, want %d", i, r.Rank, i+1)
		}
	}
}

func TestRankCoursesDoesNotMutateInput(t *testing.T) {
	courses := []CourseMetric{
		{CourseID: 1, Value: 1},
		{CourseID: 2, Value: 2},
	}

	RankCourses(courses, 10)
	if courses[0].CourseID != 1 || courses[1].CourseID != 2 {
		t.Error("input slice was reordered")
	}
}

func TestRankCoursesEmpty(t *testing.T) {
	if got := RankCourses(nil, 5); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}
