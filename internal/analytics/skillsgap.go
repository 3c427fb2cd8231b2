package analytics

import "sort"

// 技能差距报告的数量上限
const (
	maxMissingSkills = 5
	strongAreaCount  = 3
	weakAreaCount    = 2
)

// CategoryEnrollment 学员在某分类下的一条报名记录
type CategoryEnrollment struct {
	CategoryID uint
	Completed  bool
}

// CategoryScore 分类维度表现评分
type CategoryScore struct {
	CategoryID uint
	Score      float64
}

// MissingSkills 学员未接触过的分类，按 allCategories 的顺序取前 5 个
func MissingSkills(allCategories []uint, enrolled map[uint]bool) []uint {
	missing := make([]uint, 0, maxMissingSkills)
	for _, id := range allCategories {
		if enrolled[id] {
			continue
		}
		missing = append(missing, id)
		if len(missing) == maxMissingSkills {
			break
		}
	}
	return missing
}

// CategoryScores 按分类累计表现评分并降序排列
// 完成一门记 1.0 分，未完成记 0.5 分；同分保持分类首次出现的顺序
func CategoryScores(enrollments []CategoryEnrollment) []CategoryScore {
	index := make(map[uint]int)
	scores := make([]CategoryScore, 0)

	for _, e := range enrollments {
		i, ok := index[e.CategoryID]
		if !ok {
			i = len(scores)
			index[e.CategoryID] = i
			scores = append(scores, CategoryScore{CategoryID: e.CategoryID})
		}
		if e.Completed {
			scores[i].Score += 1.0
		} else {
			scores[i].Score += 0.5
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// StrongWeakAreas 从降序评分中取强弱项
// 强项为前 3，弱项为同一列表的末 2，分类不足 5 个时两者可能重叠
func StrongWeakAreas(scores []CategoryScore) (strong, weak []CategoryScore) {
	n := len(scores)

	top := strongAreaCount
	if top > n {
		top = n
	}
	strong = scores[:top]

	bottom := n - weakAreaCount
	if bottom < 0 {
		bottom = 0
	}
	weak = scores[bottom:]

	return strong, weak
}
