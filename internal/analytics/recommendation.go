package analytics

import "sort"

// 推荐打分的各项加分与入选门槛
const (
	categoryBonus       = 30.0
	levelBonus          = 15.0
	durationBonus       = 10.0
	popularityBonusCap  = 20.0
	inclusionThreshold  = 20.0
	defaultMaxRecommend = 8
)

// Candidate 待推荐的候选课程（学员尚未报名）
type Candidate struct {
	CourseID        uint
	CategoryID      uint
	Title           string
	DurationSeconds int
	EnrollmentCount int
}

// ScoredCourse 带推荐得分的课程
type ScoredCourse struct {
	Candidate
	Score float64
}

// LearningPath 按时间跨度分桶的学习路径
type LearningPath struct {
	ShortTerm  []ScoredCourse
	MediumTerm []ScoredCourse
	LongTerm   []ScoredCourse
}

// RecommendationInput 推荐计算的输入
type RecommendationInput struct {
	PreferredCategories []uint // 按历史观看时长排序的前三个分类
	AvgSessionSeconds   float64
	Candidates          []Candidate
	MaxRecommendations  int
}

// PreferredCategories 取学员历史观看时长最高的前三个分类
// 时长相同按分类 ID 升序，保证结果确定
func PreferredCategories(watchSecondsByCategory map[uint]int) []uint {
	type catWatch struct {
		id      uint
		seconds int
	}

	cats := make([]catWatch, 0, len(watchSecondsByCategory))
	for id, sec := range watchSecondsByCategory {
		cats = append(cats, catWatch{id: id, seconds: sec})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].seconds != cats[j].seconds {
			return cats[i].seconds > cats[j].seconds
		}
		return cats[i].id < cats[j].id
	})

	top := make([]uint, 0, 3)
	for i := 0; i < len(cats) && i < 3; i++ {
		top = append(top, cats[i].id)
	}
	return top
}

// popularityBonus 用候选集内报名数归一化出 [0,20) 的确定性热度加分
func popularityBonus(enrollments, maxEnrollments int) float64 {
	if maxEnrollments <= 0 || enrollments <= 0 {
		return 0
	}
	return popularityBonusCap * float64(enrollments) / float64(maxEnrollments+1)
}

// scoreCandidate 单个候选课程的推荐得分
func scoreCandidate(c Candidate, preferred map[uint]bool, avgSessionSeconds float64, maxEnrollments int) float64 {
	score := 0.0

	// 1. 命中偏好分类
	if preferred[c.CategoryID] {
		score += categoryBonus
	}

	// 2. 难度适配基础分（数据模型暂无难度元数据，先给固定分）
	score += levelBonus

	// 3. 时长不超过平均学习时段的两倍
	if avgSessionSeconds > 0 && float64(c.DurationSeconds) <= 2*avgSessionSeconds {
		score += durationBonus
	}

	// 4. 热度加分
	score += popularityBonus(c.EnrollmentCount, maxEnrollments)

	return score
}

// BuildLearningPath 给候选课程打分、筛选、排序并分桶成学习路径
// 短期取前 2 门，中期接下来 3 门，长期再 3 门
func BuildLearningPath(in RecommendationInput) LearningPath {
	preferred := make(map[uint]bool, len(in.PreferredCategories))
	for _, id := range in.PreferredCategories {
		preferred[id] = true
	}

	maxEnrollments := 0
	for _, c := range in.Candidates {
		if c.EnrollmentCount > maxEnrollments {
			maxEnrollments = c.EnrollmentCount
		}
	}

	scored := make([]ScoredCourse, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		score := scoreCandidate(c, preferred, in.AvgSessionSeconds, maxEnrollments)
		if score > inclusionThreshold {
			scored = append(scored, ScoredCourse{Candidate: c, Score: Round2(score)})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	max := in.MaxRecommendations
	if max <= 0 {
		max = defaultMaxRecommend
	}
	if len(scored) > max {
		scored = scored[:max]
	}

	return LearningPath{
		ShortTerm:  sliceRange(scored, 0, 2),
		MediumTerm: sliceRange(scored, 2, 5),
		LongTerm:   sliceRange(scored, 5, 8),
	}
}

func sliceRange(s []ScoredCourse, from, to int) []ScoredCourse {
	if from >= len(s) {
		return []ScoredCourse{}
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
