package model

// TrendPoint 趋势图单个时间桶
type TrendPoint struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// ActivityTrendPoint 报名与完成双序列趋势桶
type ActivityTrendPoint struct {
	Bucket      string `json:"bucket"`
	Enrollments int    `json:"enrollments"`
	Completions int    `json:"completions"`
}

// CompletionTrend 趋势响应
type CompletionTrend struct {
	Period string       `json:"period"`
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Points []TrendPoint `json:"points"`
}

// ActivityTrend 双序列趋势响应
type ActivityTrend struct {
	Period string               `json:"period"`
	Start  string               `json:"start"`
	End    string               `json:"end"`
	Points []ActivityTrendPoint `json:"points"`
}

// CourseCompletionReport 课程完成率报告
type CourseCompletionReport struct {
	CourseID         uint   `json:"courseId"`
	Title            string `json:"title"`
	TotalEnrollments int    `json:"totalEnrollments"`
	CompletedCount   int    `json:"completedCount"`
	ActiveCount      int    `json:"activeCount"`
	DroppedCount     int    `json:"droppedCount"`
	CompletionRate   int    `json:"completionRate"` // 0-100
}

// CourseEngagementReport 课程参与度报告
type CourseEngagementReport struct {
	CourseID          uint `json:"courseId"`
	EngagementScore   int  `json:"engagementScore"` // 0-100
	CompletionRate    int  `json:"completionRate"`
	TotalWatchSeconds int  `json:"totalWatchSeconds"`
	Views             int  `json:"views"`
	DropRate          int  `json:"dropRate"`
}

// PopularCourse 热门课程排行单项
type PopularCourse struct {
	Rank        uint    `json:"rank"`
	CourseID    uint    `json:"courseId"`
	Title       string  `json:"title"`
	MetricValue float64 `json:"metricValue"`
}

// PopularCoursesReport 热门课程排行
type PopularCoursesReport struct {
	Metric  string          `json:"metric"`
	Courses []PopularCourse `json:"courses"`
}

// StudentProgressReport 学员学习进度
type StudentProgressReport struct {
	StudentID        uint                   `json:"studentId"`
	TotalEnrollments int                    `json:"totalEnrollments"`
	CompletedCourses int                    `json:"completedCourses"`
	AverageProgress  float64                `json:"averageProgress"` // 0-100, 两位小数
	Courses          []CourseProgressDetail `json:"courses"`
}

// CourseProgressDetail 单门课程进度明细
type CourseProgressDetail struct {
	CourseID         uint    `json:"courseId"`
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	CompletedLessons int     `json:"completedLessons"`
	TotalLessons     int     `json:"totalLessons"`
	Progress         float64 `json:"progress"` // 0-100
}

// StudentEngagementReport 学员参与度报告
type StudentEngagementReport struct {
	StudentID       uint    `json:"studentId"`
	EngagementScore float64 `json:"engagementScore"` // 0-100, 两位小数
	Consistency     float64 `json:"consistency"`
	CompletionRate  float64 `json:"completionRate"`
	TimeInvestment  float64 `json:"timeInvestment"`
	CourseVariety   float64 `json:"courseVariety"`
	PeriodDays      int     `json:"periodDays"`
}

// StreakReport 学习连续天数
type StreakReport struct {
	StudentID     uint `json:"studentId"`
	CurrentStreak int  `json:"currentStreak"`
	LongestStreak int  `json:"longestStreak"`
	ActiveDays    int  `json:"activeDays"`
	WindowDays    int  `json:"windowDays"`
}

// RecommendedCourse 推荐课程单项
type RecommendedCourse struct {
	CourseID        uint    `json:"courseId"`
	Title           string  `json:"title"`
	CategoryID      uint    `json:"categoryId"`
	Score           float64 `json:"score"`
	DurationSeconds int     `json:"durationSeconds"`
}

// RecommendationList 按时间跨度分桶的学习路径推荐
type RecommendationList struct {
	StudentID  uint                `json:"studentId"`
	ShortTerm  []RecommendedCourse `json:"shortTerm"`
	MediumTerm []RecommendedCourse `json:"mediumTerm"`
	LongTerm   []RecommendedCourse `json:"longTerm"`
}

// CategoryPerformance 分类维度表现
type CategoryPerformance struct {
	CategoryID uint    `json:"categoryId"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
}

// SkillsGapReport 技能差距分析
type SkillsGapReport struct {
	StudentID     uint                  `json:"studentId"`
	MissingSkills []string              `json:"missingSkills"`
	StrongAreas   []CategoryPerformance `json:"strongAreas"`
	WeakAreas     []CategoryPerformance `json:"weakAreas"`
}

// DashboardReport 管理端总览
type DashboardReport struct {
	ReportID          string          `json:"reportId"`
	GeneratedAt       string          `json:"generatedAt"`
	TotalStudents     int             `json:"totalStudents"`
	TotalCourses      int             `json:"totalCourses"`
	TotalEnrollments  int             `json:"totalEnrollments"`
	ActiveEnrollments int             `json:"activeEnrollments"`
	CompletionRate    int             `json:"completionRate"`
	EnrollmentTrend   []TrendPoint    `json:"enrollmentTrend"`
	TopCourses        []PopularCourse `json:"topCourses"`
	CourseCompletion  map[string]int  `json:"courseCompletion"` // 课程标题 -> 完成率
	CacheHit          bool            `json:"cacheHit"`
}
