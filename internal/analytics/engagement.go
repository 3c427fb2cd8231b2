package analytics

import "math"

// CourseEngagementInput 课程参与度打分的原始信号
type CourseEngagementInput struct {
	CompletionRate    float64 // 0-100
	TotalWatchSeconds int
	Views             int
	DropRatePercent   float64 // 0-100
}

// CourseEngagementScore 课程参与度评分，0-100 取整
// 加权：完成率 40%，观看时长 30%，浏览量 20%，退课率反向 10%
func CourseEngagementScore(in CourseEngagementInput) int {
	watchScore := math.Min(float64(in.TotalWatchSeconds)/3600, 10) * 10
	viewsScore := math.Min(float64(in.Views)/100, 10) * 10
	dropComplement := math.Max(0, 100-in.DropRatePercent)

	score := in.CompletionRate*0.40 +
		watchScore*0.30 +
		viewsScore*0.20 +
		dropComplement*0.10

	return int(math.Round(Clamp(score, 0, 100)))
}

// StudentEngagementInput 学员参与度打分的原始信号
type StudentEngagementInput struct {
	ActiveDays         int
	PeriodDays         int
	CompletionRate     float64 // 0-100
	TotalWatchSeconds  int
	DistinctCategories int
}

// StudentEngagementBreakdown 学员参与度评分及各子项
type StudentEngagementBreakdown struct {
	Score          float64
	Consistency    float64
	CompletionRate float64
	TimeInvestment float64
	CourseVariety  float64
}

// StudentEngagementScore 学员参与度评分，0-100 保留两位小数
// 四个子项等权：学习规律性、完成率、时间投入、课程多样性
func StudentEngagementScore(in StudentEngagementInput) StudentEngagementBreakdown {
	consistency := 0.0
	if in.PeriodDays > 0 {
		consistency = float64(in.ActiveDays) / float64(in.PeriodDays) * 100
	}
	timeInvestment := math.Min(float64(in.TotalWatchSeconds)/3600*10, 100)
	variety := math.Min(float64(in.DistinctCategories)*20, 100)

	score := consistency*0.25 +
		in.CompletionRate*0.25 +
		timeInvestment*0.25 +
		variety*0.25

	return StudentEngagementBreakdown{
		Score:          Round2(Clamp(score, 0, 100)),
		Consistency:    Round2(consistency),
		CompletionRate: Round2(in.CompletionRate),
		TimeInvestment: Round2(timeInvestment),
		CourseVariety:  Round2(variety),
	}
}
