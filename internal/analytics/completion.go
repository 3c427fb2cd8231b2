package analytics

import "math"

// CourseProgress 单门课程的课时完成情况
type CourseProgress struct {
	CompletedLessons int
	TotalLessons     int
}

// CourseCompletionRate 课程完成率，completed/total 取整到百分比
// 没有报名记录时返回 0
func CourseCompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ProgressPercent 单门课程进度百分比，没有已发布课时时返回 0
func ProgressPercent(p CourseProgress) float64 {
	if p.TotalLessons == 0 {
		return 0
	}
	return float64(p.CompletedLessons) / float64(p.TotalLessons) * 100
}

// StudentAverageProgress 学员所有报名课程的平均进度，保留两位小数
// 没有报名记录时返回 0
func StudentAverageProgress(progresses []CourseProgress) float64 {
	if len(progresses) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range progresses {
		sum += ProgressPercent(p)
	}
	return Round2(sum / float64(len(progresses)))
}

// Round2 四舍五入保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp 把 v 限制在 [lo, hi] 区间内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
