package database

import (
	"course_platform_backend/internal/config"
	"course_platform_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Student{},
		&model.Category{},
		&model.Course{},
		&model.Lesson{},
		&model.Enrollment{},
		&model.LessonProgress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认课程分类
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count == 0 {
		defaultCategories := []string{
			"编程基础",
			"数据结构与算法",
			"前端开发",
			"后端开发",
			"数据库",
			"软件工程",
		}
		for _, name := range defaultCategories {
			db.Create(&model.Category{Name: name})
		}
	}

	return db, nil
}
