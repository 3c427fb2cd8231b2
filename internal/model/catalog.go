package model

// Category 课程分类
type Category struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex" json:"name"`
}

// Course 课程
type Course struct {
	BaseModel
	Title       string   `gorm:"size:255" json:"title"`
	CategoryID  uint     `gorm:"index" json:"categoryId"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Published   bool     `gorm:"default:false;index" json:"published"`
	Description string   `gorm:"type:text" json:"description"`
	Lessons     []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

// Lesson 课时，按 Position 排序
type Lesson struct {
	BaseModel
	CourseID        uint   `gorm:"index" json:"courseId"`
	Title           string `gorm:"size:255" json:"title"`
	DurationSeconds int    `json:"durationSeconds"`
	Position        int    `gorm:"index" json:"position"`
	Published       bool   `gorm:"default:false;index" json:"published"`
}

// Student 学员（仅身份信息，用于判定 NotFound）
type Student struct {
	BaseModel
	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:255;uniqueIndex" json:"email"`
}

// TotalDurationSeconds 返回课程已发布课时的总时长
func (c *Course) TotalDurationSeconds() int {
	total := 0
	for _, l := range c.Lessons {
		if l.Published {
			total += l.DurationSeconds
		}
	}
	return total
}

// PublishedLessonCount 返回课程已发布课时数
func (c *Course) PublishedLessonCount() int {
	count := 0
	for _, l := range c.Lessons {
		if l.Published {
			count++
		}
	}
	return count
}
