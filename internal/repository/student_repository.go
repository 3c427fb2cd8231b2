package repository

import (
	"course_platform_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

// FindByID 按 ID 取学员，不存在时返回 gorm.ErrRecordNotFound
func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.DB.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// CountAll 学员总数
func (r *StudentRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).Count(&count).Error
	return count, err
}
