package service

import (
	"course_platform_backend/internal/analytics"
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
	"course_platform_backend/pkg/monitoring"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
)

// popularityWorkers 排行计算的并发上限
const popularityWorkers = 8

type AnalyticsService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	CatalogRepo    *repository.CatalogRepository
	Now            func() time.Time
}

func NewAnalyticsService(
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	catalogRepo *repository.CatalogRepository,
) *AnalyticsService {
	return &AnalyticsService{
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		CatalogRepo:    catalogRepo,
		Now:            time.Now,
	}
}

// validateWindow 在任何查询和计算发生前校验趋势参数
func validateWindow(period string, start, end time.Time) (analytics.Period, error) {
	p, err := analytics.ParsePeriod(period)
	if err != nil {
		return "", err
	}
	if end.Before(start) {
		return "", util.ErrInvalidDateRange
	}
	return p, nil
}

// GetEnrollmentTrend 报名趋势，courseID 为 0 时统计全平台
func (s *AnalyticsService) GetEnrollmentTrend(courseID uint, period string, start, end time.Time) (*model.CompletionTrend, error) {
	p, err := validateWindow(period, start, end)
	if err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("enrollment_trend").Inc()

	// 终点不做 SQL 预过滤，窗口止于末桶终点，由分桶引擎裁剪
	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{
		CourseID: courseID,
		From:     &start,
	})
	if err != nil {
		return nil, err
	}

	events := make([]time.Time, len(enrollments))
	for i, e := range enrollments {
		events[i] = e.EnrolledAt
	}

	return s.buildTrend(events, start, end, p, period)
}

// GetCompletionTrend 完课趋势，按完成时间分桶
func (s *AnalyticsService) GetCompletionTrend(courseID uint, period string, start, end time.Time) (*model.CompletionTrend, error) {
	p, err := validateWindow(period, start, end)
	if err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("completion_trend").Inc()

	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{
		CourseID: courseID,
		Status:   model.EnrollmentStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	var events []time.Time
	for _, e := range enrollments {
		if e.CompletedAt != nil {
			events = append(events, *e.CompletedAt)
		}
	}

	return s.buildTrend(events, start, end, p, period)
}

func (s *AnalyticsService) buildTrend(events []time.Time, start, end time.Time, p analytics.Period, period string) (*model.CompletionTrend, error) {
	points, err := analytics.AggregateTrend(events, start, end, p)
	if err != nil {
		return nil, err
	}

	out := make([]model.TrendPoint, len(points))
	for i, pt := range points {
		out[i] = model.TrendPoint{Bucket: pt.Bucket, Count: pt.Count}
	}

	return &model.CompletionTrend{
		Period: period,
		Start:  start.Format("2006-01-02"),
		End:    end.Format("2006-01-02"),
		Points: out,
	}, nil
}

// GetActivityTrend 报名与完成双序列趋势，共用同一套时间桶
func (s *AnalyticsService) GetActivityTrend(period string, start, end time.Time) (*model.ActivityTrend, error) {
	p, err := validateWindow(period, start, end)
	if err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("activity_trend").Inc()

	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{})
	if err != nil {
		return nil, err
	}

	var enrolledAt, completedAt []time.Time
	for _, e := range enrollments {
		enrolledAt = append(enrolledAt, e.EnrolledAt)
		if e.IsCompleted() {
			completedAt = append(completedAt, *e.CompletedAt)
		}
	}

	points, err := analytics.AggregateTrendSeries([][]time.Time{enrolledAt, completedAt}, start, end, p)
	if err != nil {
		return nil, err
	}

	out := make([]model.ActivityTrendPoint, len(points))
	for i, pt := range points {
		out[i] = model.ActivityTrendPoint{
			Bucket:      pt.Bucket,
			Enrollments: pt.Counts[0],
			Completions: pt.Counts[1],
		}
	}

	return &model.ActivityTrend{
		Period: period,
		Start:  start.Format("2006-01-02"),
		End:    end.Format("2006-01-02"),
		Points: out,
	}, nil
}

// GetCourseCompletion 单门课程完成率报告
func (s *AnalyticsService) GetCourseCompletion(courseID uint) (*model.CourseCompletionReport, error) {
	course, err := s.CatalogRepo.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("course_completion").Inc()

	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{CourseID: courseID})
	if err != nil {
		return nil, err
	}

	report := &model.CourseCompletionReport{
		CourseID:         course.ID,
		Title:            course.Title,
		TotalEnrollments: len(enrollments),
	}
	for _, e := range enrollments {
		switch e.Status {
		case model.EnrollmentStatusCompleted:
			report.CompletedCount++
		case model.EnrollmentStatusActive:
			report.ActiveCount++
		case model.EnrollmentStatusDropped:
			report.DroppedCount++
		}
	}
	report.CompletionRate = analytics.CourseCompletionRate(report.CompletedCount, report.TotalEnrollments)

	return report, nil
}

// GetCourseEngagement 单门课程参与度报告
func (s *AnalyticsService) GetCourseEngagement(courseID uint) (*model.CourseEngagementReport, error) {
	if _, err := s.CatalogRepo.GetCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("course_engagement").Inc()

	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{CourseID: courseID})
	if err != nil {
		return nil, err
	}
	progress, err := s.ProgressRepo.Find(repository.ProgressFilter{CourseID: courseID})
	if err != nil {
		return nil, err
	}

	completed, dropped := 0, 0
	for _, e := range enrollments {
		switch e.Status {
		case model.EnrollmentStatusCompleted:
			completed++
		case model.EnrollmentStatusDropped:
			dropped++
		}
	}

	totalWatch := 0
	for _, p := range progress {
		totalWatch += p.WatchedSeconds
	}

	completionRate := analytics.CourseCompletionRate(completed, len(enrollments))
	dropRate := analytics.CourseCompletionRate(dropped, len(enrollments))

	score := analytics.CourseEngagementScore(analytics.CourseEngagementInput{
		CompletionRate:    float64(completionRate),
		TotalWatchSeconds: totalWatch,
		Views:             len(progress),
		DropRatePercent:   float64(dropRate),
	})

	return &model.CourseEngagementReport{
		CourseID:          courseID,
		EngagementScore:   score,
		CompletionRate:    completionRate,
		TotalWatchSeconds: totalWatch,
		Views:             len(progress),
		DropRate:          dropRate,
	}, nil
}

// GetPopularCourses 热门课程排行
// 记录集各查一次，按课程分好组后并发计算各课程的指标值
func (s *AnalyticsService) GetPopularCourses(metric string, limit int) (*model.PopularCoursesReport, error) {
	m, err := analytics.ParseMetric(metric)
	if err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("popular_courses").Inc()

	courses, err := s.CatalogRepo.ListCourses(0, true)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{})
	if err != nil {
		return nil, err
	}

	var progress []model.LessonProgress
	if m == analytics.MetricWatchTime {
		progress, err = s.ProgressRepo.Find(repository.ProgressFilter{})
		if err != nil {
			return nil, err
		}
	}

	enrollByCourse := make(map[uint][]model.Enrollment)
	for _, e := range enrollments {
		enrollByCourse[e.CourseID] = append(enrollByCourse[e.CourseID], e)
	}
	watchByCourse := make(map[uint]int)
	for _, p := range progress {
		watchByCourse[p.CourseID] += p.WatchedSeconds
	}

	// 各课程之间互不依赖，map 阶段并发计算，reduce 阶段统一排序
	metrics := make([]analytics.CourseMetric, len(courses))
	sem := make(chan struct{}, popularityWorkers)
	var wg sync.WaitGroup
	for i, c := range courses {
		wg.Add(1)
		go func(i int, c model.Course) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			metrics[i] = analytics.CourseMetric{
				CourseID: c.ID,
				Value:    courseMetricValue(m, enrollByCourse[c.ID], watchByCourse[c.ID]),
			}
		}(i, c)
	}
	wg.Wait()

	ranked := analytics.RankCourses(metrics, limit)

	titles := make(map[uint]string, len(courses))
	for _, c := range courses {
		titles[c.ID] = c.Title
	}

	out := make([]model.PopularCourse, len(ranked))
	for i, r := range ranked {
		out[i] = model.PopularCourse{
			Rank:        uint(r.Rank),
			CourseID:    r.CourseID,
			Title:       titles[r.CourseID],
			MetricValue: r.Value,
		}
	}

	return &model.PopularCoursesReport{Metric: metric, Courses: out}, nil
}

// courseMetricValue 单门课程在指定指标下的取值
func courseMetricValue(m analytics.Metric, enrollments []model.Enrollment, watchSeconds int) float64 {
	switch m {
	case analytics.MetricEnrollments:
		return float64(len(enrollments))
	case analytics.MetricWatchTime:
		return float64(watchSeconds)
	default:
		completed := 0
		for _, e := range enrollments {
			if e.Status == model.EnrollmentStatusCompleted {
				completed++
			}
		}
		if m == analytics.MetricCompletions {
			return float64(completed)
		}
		// rating 以完成率作为评分的代理指标
		return float64(analytics.CourseCompletionRate(completed, len(enrollments)))
	}
}

// CourseCompletionRates 全部已发布课程的完成率，键为课程标题
func (s *AnalyticsService) CourseCompletionRates() (map[string]int, error) {
	courses, err := s.CatalogRepo.ListCourses(0, true)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{})
	if err != nil {
		return nil, err
	}

	totalByCourse := make(map[uint]int)
	completedByCourse := make(map[uint]int)
	for _, e := range enrollments {
		totalByCourse[e.CourseID]++
		if e.Status == model.EnrollmentStatusCompleted {
			completedByCourse[e.CourseID]++
		}
	}

	rates := make(map[string]int, len(courses))
	for _, c := range courses {
		rates[c.Title] = analytics.CourseCompletionRate(completedByCourse[c.ID], totalByCourse[c.ID])
	}
	return rates, nil
}
