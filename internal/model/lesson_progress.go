package model

import "time"

// LessonProgress 学员课时观看记录
// CompletedAt 为空表示仍在观看中
type LessonProgress struct {
	BaseModel
	StudentID      uint       `gorm:"index;uniqueIndex:idx_student_lesson" json:"studentId"`
	LessonID       uint       `gorm:"index;uniqueIndex:idx_student_lesson" json:"lessonId"`
	CourseID       uint       `gorm:"index" json:"courseId"`
	WatchedSeconds int        `json:"watchedSeconds"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	LastWatchedAt  time.Time  `gorm:"index" json:"lastWatchedAt"`
}

// IsCompleted 课时是否已看完
func (p *LessonProgress) IsCompleted() bool {
	return p.CompletedAt != nil
}
