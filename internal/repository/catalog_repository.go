package repository

import (
	"course_platform_backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ListCourses 加载课程目录，按需预载课时和分类
// publishedOnly 为 true 时只返回已发布课程，课时同样只保留已发布的
func (r *CatalogRepository) ListCourses(categoryID uint, publishedOnly bool) ([]model.Course, error) {
	query := r.DB.Model(&model.Course{}).Preload("Category")

	if publishedOnly {
		query = query.Where("published = ?", true).
			Preload("Lessons", func(db *gorm.DB) *gorm.DB {
				return db.Where("published = ?", true).Order("position ASC")
			})
	} else {
		query = query.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	}
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var courses []model.Course
	err := query.Order("id ASC").Find(&courses).Error
	return courses, err
}

// GetCourse 按 ID 取单门课程，预载已发布课时
func (r *CatalogRepository) GetCourse(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Category").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("published = ?", true).Order("position ASC")
		}).
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCategories 所有分类，按 ID 升序保证遍历顺序稳定
func (r *CatalogRepository) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("id ASC").Find(&categories).Error
	return categories, err
}

// CountCourses 已发布课程总数
func (r *CatalogRepository) CountCourses() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("published = ?", true).Count(&count).Error
	return count, err
}
