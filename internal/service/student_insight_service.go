package service

import (
	"course_platform_backend/internal/analytics"
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
	"course_platform_backend/pkg/monitoring"
	"errors"
	"time"

	"gorm.io/gorm"
)

// streakWindowDays 连续学习统计的回看窗口
const streakWindowDays = 365

// defaultEngagementDays 学员参与度默认统计周期
const defaultEngagementDays = 30

type StudentInsightService struct {
	StudentRepo    *repository.StudentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	CatalogRepo    *repository.CatalogRepository
	Now            func() time.Time
}

func NewStudentInsightService(
	studentRepo *repository.StudentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	catalogRepo *repository.CatalogRepository,
) *StudentInsightService {
	return &StudentInsightService{
		StudentRepo:    studentRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		CatalogRepo:    catalogRepo,
		Now:            time.Now,
	}
}

func (s *StudentInsightService) requireStudent(studentID uint) error {
	if _, err := s.StudentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudentNotFound
		}
		return err
	}
	return nil
}

// GetStudentProgress 学员学习进度报告
func (s *StudentInsightService) GetStudentProgress(studentID uint) (*model.StudentProgressReport, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("student_progress").Inc()

	// 三类记录各取一次，内存里按课程归并
	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	progress, err := s.ProgressRepo.Find(repository.ProgressFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	courses, err := s.CatalogRepo.ListCourses(0, true)
	if err != nil {
		return nil, err
	}

	courseByID := make(map[uint]model.Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}
	completedLessons := make(map[uint]int)
	for _, p := range progress {
		if p.IsCompleted() {
			completedLessons[p.CourseID]++
		}
	}

	report := &model.StudentProgressReport{
		StudentID:        studentID,
		TotalEnrollments: len(enrollments),
		Courses:          make([]model.CourseProgressDetail, 0, len(enrollments)),
	}

	progresses := make([]analytics.CourseProgress, 0, len(enrollments))
	for _, e := range enrollments {
		course := courseByID[e.CourseID]
		cp := analytics.CourseProgress{
			CompletedLessons: completedLessons[e.CourseID],
			TotalLessons:     course.PublishedLessonCount(),
		}
		progresses = append(progresses, cp)

		if e.Status == model.EnrollmentStatusCompleted {
			report.CompletedCourses++
		}
		report.Courses = append(report.Courses, model.CourseProgressDetail{
			CourseID:         e.CourseID,
			Title:            course.Title,
			Status:           e.Status,
			CompletedLessons: cp.CompletedLessons,
			TotalLessons:     cp.TotalLessons,
			Progress:         analytics.Round2(analytics.ProgressPercent(cp)),
		})
	}
	report.AverageProgress = analytics.StudentAverageProgress(progresses)

	return report, nil
}

// GetStudentEngagement 学员参与度报告，days 为统计周期天数
func (s *StudentInsightService) GetStudentEngagement(studentID uint, days int) (*model.StudentEngagementReport, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = defaultEngagementDays
	}
	monitoring.ReportCounter.WithLabelValues("student_engagement").Inc()

	now := s.Now()
	from := now.AddDate(0, 0, -(days - 1))

	progress, err := s.ProgressRepo.Find(repository.ProgressFilter{StudentID: studentID, From: &from, To: &now})
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	courses, err := s.CatalogRepo.ListCourses(0, true)
	if err != nil {
		return nil, err
	}

	categoryByCourse := make(map[uint]uint, len(courses))
	for _, c := range courses {
		categoryByCourse[c.ID] = c.CategoryID
	}

	activeDays := make(map[string]bool)
	watchSeconds := 0
	categories := make(map[uint]bool)
	for _, p := range progress {
		activeDays[analytics.DayKey(p.LastWatchedAt)] = true
		watchSeconds += p.WatchedSeconds
		if cat, ok := categoryByCourse[p.CourseID]; ok {
			categories[cat] = true
		}
	}

	completed := 0
	for _, e := range enrollments {
		if e.Status == model.EnrollmentStatusCompleted {
			completed++
		}
	}
	completionRate := 0.0
	if len(enrollments) > 0 {
		completionRate = float64(completed) / float64(len(enrollments)) * 100
	}

	breakdown := analytics.StudentEngagementScore(analytics.StudentEngagementInput{
		ActiveDays:         len(activeDays),
		PeriodDays:         days,
		CompletionRate:     completionRate,
		TotalWatchSeconds:  watchSeconds,
		DistinctCategories: len(categories),
	})

	return &model.StudentEngagementReport{
		StudentID:       studentID,
		EngagementScore: breakdown.Score,
		Consistency:     breakdown.Consistency,
		CompletionRate:  breakdown.CompletionRate,
		TimeInvestment:  breakdown.TimeInvestment,
		CourseVariety:   breakdown.CourseVariety,
		PeriodDays:      days,
	}, nil
}

// GetStudentStreak 学员连续学习天数报告
func (s *StudentInsightService) GetStudentStreak(studentID uint) (*model.StreakReport, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("student_streak").Inc()

	now := s.Now()
	from := now.AddDate(0, 0, -(streakWindowDays - 1))

	progress, err := s.ProgressRepo.Find(repository.ProgressFilter{StudentID: studentID, From: &from})
	if err != nil {
		return nil, err
	}

	activeDays := make(map[string]bool)
	for _, p := range progress {
		activeDays[analytics.DayKey(p.LastWatchedAt)] = true
	}

	return &model.StreakReport{
		StudentID:     studentID,
		CurrentStreak: analytics.CurrentStreak(activeDays, now),
		LongestStreak: analytics.LongestStreak(analytics.ActivityFlags(activeDays, now, streakWindowDays)),
		ActiveDays:    len(activeDays),
		WindowDays:    streakWindowDays,
	}, nil
}
