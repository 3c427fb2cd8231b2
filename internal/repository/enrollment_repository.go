package repository

import (
	"course_platform_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// EnrollmentFilter 报名记录查询条件，零值字段不参与过滤
type EnrollmentFilter struct {
	StudentID uint
	CourseID  uint
	Status    string
	From      *time.Time
	To        *time.Time
}

// Find 按条件批量加载报名记录，每次请求只查一次
func (r *EnrollmentRepository) Find(filter EnrollmentFilter) ([]model.Enrollment, error) {
	query := r.DB.Model(&model.Enrollment{})

	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.CourseID != 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("enrolled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("enrolled_at <= ?", *filter.To)
	}

	var enrollments []model.Enrollment
	err := query.Order("enrolled_at ASC").Find(&enrollments).Error
	return enrollments, err
}

// CountAll 平台报名总数
func (r *EnrollmentRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Count(&count).Error
	return count, err
}

// CountByStatus 指定状态的报名数
func (r *EnrollmentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
