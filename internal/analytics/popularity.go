package analytics

import (
	"course_platform_backend/internal/util"
	"sort"
)

// Metric 热门课程排行的排序指标
type Metric string

const (
	MetricEnrollments Metric = "enrollments"
	MetricCompletions Metric = "completions"
	MetricWatchTime   Metric = "watch_time"
	MetricRating      Metric = "rating"
)

// ParseMetric 校验并解析排行指标参数
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricEnrollments, MetricCompletions, MetricWatchTime, MetricRating:
		return Metric(s), nil
	default:
		return "", util.ErrInvalidMetric
	}
}

// CourseMetric 参与排行的课程及其指标值
type CourseMetric struct {
	CourseID uint
	Value    float64
}

// RankedCourse 排行结果，Rank 从 1 起连续递增
type RankedCourse struct {
	Rank     int
	CourseID uint
	Value    float64
}

// RankCourses 按指标值降序稳定排序并截断到 limit，再按序号赋名次
// 指标值相同的课程保持传入时的相对顺序，名次不并列不跳号
func RankCourses(courses []CourseMetric, limit int) []RankedCourse {
	sorted := make([]CourseMetric, len(courses))
	copy(sorted, courses)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ranked := make([]RankedCourse, len(sorted))
	for i, c := range sorted {
		ranked[i] = RankedCourse{
			Rank:     i + 1,
			CourseID: c.CourseID,
			Value:    c.Value,
		}
	}
	return ranked
}
