package service

import (
	"context"
	"course_platform_backend/internal/analytics"
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/pkg/logger"
	"course_platform_backend/pkg/monitoring"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheKey = "reports:dashboard"

// dashboardTrendMonths 总览里报名趋势的默认跨度
const dashboardTrendMonths = 6

// dashboardTopCourses 总览里热门课程榜的长度
const dashboardTopCourses = 5

type DashboardService struct {
	StudentRepo    *repository.StudentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	CatalogRepo    *repository.CatalogRepository
	Analytics      *AnalyticsService
	Redis          *redis.Client
	CacheTTL       time.Duration
	Now            func() time.Time
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	catalogRepo *repository.CatalogRepository,
	analyticsService *AnalyticsService,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *DashboardService {
	return &DashboardService{
		StudentRepo:    studentRepo,
		EnrollmentRepo: enrollmentRepo,
		CatalogRepo:    catalogRepo,
		Analytics:      analyticsService,
		Redis:          rdb,
		CacheTTL:       cacheTTL,
		Now:            time.Now,
	}
}

// GetDashboard 管理端总览，短 TTL 的 Redis 读穿缓存
func (s *DashboardService) GetDashboard(ctx context.Context) (*model.DashboardReport, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var cached model.DashboardReport
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				monitoring.DashboardCacheCounter.WithLabelValues("hit").Inc()
				cached.CacheHit = true
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	monitoring.DashboardCacheCounter.WithLabelValues("miss").Inc()
	monitoring.ReportCounter.WithLabelValues("dashboard").Inc()

	report, err := s.buildDashboard()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, jsonErr := json.Marshal(report); jsonErr == nil {
			if err := s.Redis.Set(ctx, dashboardCacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return report, nil
}

func (s *DashboardService) buildDashboard() (*model.DashboardReport, error) {
	now := s.Now()

	students, err := s.StudentRepo.CountAll()
	if err != nil {
		return nil, err
	}
	courses, err := s.CatalogRepo.CountCourses()
	if err != nil {
		return nil, err
	}
	total, err := s.EnrollmentRepo.CountAll()
	if err != nil {
		return nil, err
	}
	active, err := s.EnrollmentRepo.CountByStatus(model.EnrollmentStatusActive)
	if err != nil {
		return nil, err
	}
	completed, err := s.EnrollmentRepo.CountByStatus(model.EnrollmentStatusCompleted)
	if err != nil {
		return nil, err
	}

	// 最近 6 个月的报名趋势
	start := now.AddDate(0, -(dashboardTrendMonths - 1), 0)
	trend, err := s.Analytics.GetEnrollmentTrend(0, string(analytics.PeriodMonth), start, now)
	if err != nil {
		return nil, err
	}

	top, err := s.Analytics.GetPopularCourses(string(analytics.MetricEnrollments), dashboardTopCourses)
	if err != nil {
		return nil, err
	}

	rates, err := s.Analytics.CourseCompletionRates()
	if err != nil {
		return nil, err
	}

	return &model.DashboardReport{
		ReportID:          model.GenerateReportID(),
		GeneratedAt:       now.Format(time.RFC3339),
		TotalStudents:     int(students),
		TotalCourses:      int(courses),
		TotalEnrollments:  int(total),
		ActiveEnrollments: int(active),
		CompletionRate:    analytics.CourseCompletionRate(int(completed), int(total)),
		EnrollmentTrend:   trend.Points,
		TopCourses:        top.Courses,
		CourseCompletion:  rates,
	}, nil
}
