package repository

import (
	"course_platform_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// ProgressFilter 观看记录查询条件，零值字段不参与过滤
type ProgressFilter struct {
	StudentID uint
	CourseID  uint
	LessonID  uint
	From      *time.Time
	To        *time.Time
}

// Find 按条件批量加载观看记录
// 时间条件作用于 last_watched_at
func (r *ProgressRepository) Find(filter ProgressFilter) ([]model.LessonProgress, error) {
	query := r.DB.Model(&model.LessonProgress{})

	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.CourseID != 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.LessonID != 0 {
		query = query.Where("lesson_id = ?", filter.LessonID)
	}
	if filter.From != nil {
		query = query.Where("last_watched_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("last_watched_at <= ?", *filter.To)
	}

	var records []model.LessonProgress
	err := query.Order("last_watched_at ASC").Find(&records).Error
	return records, err
}
