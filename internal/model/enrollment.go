package model

import "time"

// 报名状态
const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
)

// Enrollment 学员报名记录
// 每个 (student, course) 只保留一条当前记录，退课后重新报名复用同一条
type Enrollment struct {
	BaseModel
	StudentID   uint       `gorm:"index;uniqueIndex:idx_student_course" json:"studentId"`
	CourseID    uint       `gorm:"index;uniqueIndex:idx_student_course" json:"courseId"`
	Status      string     `gorm:"size:20;index;default:active" json:"status"`
	EnrolledAt  time.Time  `gorm:"index" json:"enrolledAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// IsCompleted 状态与 CompletedAt 同时成立才算完成
func (e *Enrollment) IsCompleted() bool {
	return e.Status == EnrollmentStatusCompleted && e.CompletedAt != nil
}
