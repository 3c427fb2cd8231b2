package service

import (
	"course_platform_backend/internal/analytics"
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
	"course_platform_backend/pkg/monitoring"
	"errors"

	"gorm.io/gorm"
)

type RecommendationService struct {
	StudentRepo    *repository.StudentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	CatalogRepo    *repository.CatalogRepository
}

func NewRecommendationService(
	studentRepo *repository.StudentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	catalogRepo *repository.CatalogRepository,
) *RecommendationService {
	return &RecommendationService{
		StudentRepo:    studentRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		CatalogRepo:    catalogRepo,
	}
}

func (s *RecommendationService) requireStudent(studentID uint) error {
	if _, err := s.StudentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudentNotFound
		}
		return err
	}
	return nil
}

// GetRecommendations 为学员生成学习路径推荐
func (s *RecommendationService) GetRecommendations(studentID uint, maxRecommendations int) (*model.RecommendationList, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("recommendations").Inc()

	// 1. 批量加载：全量报名（候选课程热度要用）、学员观看记录、课程目录
	allEnrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{})
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

	categoryByCourse := make(map[uint]uint, len(courses))
	for _, c := range courses {
		categoryByCourse[c.ID] = c.CategoryID
	}

	// 2. 学员偏好：各分类历史观看时长的前三名
	watchByCategory := make(map[uint]int)
	activeDays := make(map[string]bool)
	totalWatch := 0
	for _, p := range progress {
		if cat, ok := categoryByCourse[p.CourseID]; ok {
			watchByCategory[cat] += p.WatchedSeconds
		}
		activeDays[analytics.DayKey(p.LastWatchedAt)] = true
		totalWatch += p.WatchedSeconds
	}
	preferred := analytics.PreferredCategories(watchByCategory)

	// 平均学习时段：总观看时长除以活跃天数
	avgSession := 0.0
	if len(activeDays) > 0 {
		avgSession = float64(totalWatch) / float64(len(activeDays))
	}

	// 3. 候选集：已发布且学员未报名的课程
	enrolledByStudent := make(map[uint]bool)
	enrollCountByCourse := make(map[uint]int)
	for _, e := range allEnrollments {
		enrollCountByCourse[e.CourseID]++
		if e.StudentID == studentID {
			enrolledByStudent[e.CourseID] = true
		}
	}

	candidates := make([]analytics.Candidate, 0, len(courses))
	for _, c := range courses {
		if enrolledByStudent[c.ID] {
			continue
		}
		candidates = append(candidates, analytics.Candidate{
			CourseID:        c.ID,
			CategoryID:      c.CategoryID,
			Title:           c.Title,
			DurationSeconds: c.TotalDurationSeconds(),
			EnrollmentCount: enrollCountByCourse[c.ID],
		})
	}

	path := analytics.BuildLearningPath(analytics.RecommendationInput{
		PreferredCategories: preferred,
		AvgSessionSeconds:   avgSession,
		Candidates:          candidates,
		MaxRecommendations:  maxRecommendations,
	})

	return &model.RecommendationList{
		StudentID:  studentID,
		ShortTerm:  toRecommendedCourses(path.ShortTerm),
		MediumTerm: toRecommendedCourses(path.MediumTerm),
		LongTerm:   toRecommendedCourses(path.LongTerm),
	}, nil
}

func toRecommendedCourses(scored []analytics.ScoredCourse) []model.RecommendedCourse {
	out := make([]model.RecommendedCourse, len(scored))
	for i, sc := range scored {
		out[i] = model.RecommendedCourse{
			CourseID:        sc.CourseID,
			Title:           sc.Title,
			CategoryID:      sc.CategoryID,
			Score:           sc.Score,
			DurationSeconds: sc.DurationSeconds,
		}
	}
	return out
}

// GetSkillsGap 学员技能差距分析
func (s *RecommendationService) GetSkillsGap(studentID uint) (*model.SkillsGapReport, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	monitoring.ReportCounter.WithLabelValues("skills_gap").Inc()

	categories, err := s.CatalogRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	courses, err := s.CatalogRepo.ListCourses(0, true)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.Find(repository.EnrollmentFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	categoryByCourse := make(map[uint]uint, len(courses))
	for _, c := range courses {
		categoryByCourse[c.ID] = c.CategoryID
	}
	nameByCategory := make(map[uint]string, len(categories))
	allCategoryIDs := make([]uint, len(categories))
	for i, cat := range categories {
		nameByCategory[cat.ID] = cat.Name
		allCategoryIDs[i] = cat.ID
	}

	enrolled := make(map[uint]bool)
	var categoryEnrollments []analytics.CategoryEnrollment
	for _, e := range enrollments {
		cat, ok := categoryByCourse[e.CourseID]
		if !ok {
			continue
		}
		enrolled[cat] = true
		categoryEnrollments = append(categoryEnrollments, analytics.CategoryEnrollment{
			CategoryID: cat,
			Completed:  e.Status == model.EnrollmentStatusCompleted,
		})
	}

	missingIDs := analytics.MissingSkills(allCategoryIDs, enrolled)
	missing := make([]string, len(missingIDs))
	for i, id := range missingIDs {
		missing[i] = nameByCategory[id]
	}

	scores := analytics.CategoryScores(categoryEnrollments)
	strong, weak := analytics.StrongWeakAreas(scores)

	return &model.SkillsGapReport{
		StudentID:     studentID,
		MissingSkills: missing,
		StrongAreas:   toCategoryPerformance(strong, nameByCategory),
		WeakAreas:     toCategoryPerformance(weak, nameByCategory),
	}, nil
}

func toCategoryPerformance(scores []analytics.CategoryScore, names map[uint]string) []model.CategoryPerformance {
	out := make([]model.CategoryPerformance, len(scores))
	for i, s := range scores {
		out[i] = model.CategoryPerformance{
			CategoryID: s.CategoryID,
			Name:       names[s.CategoryID],
			Score:      s.Score,
		}
	}
	return out
}
