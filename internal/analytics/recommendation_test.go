package analytics

import "testing"

func pathLen(p LearningPath) int {
	return len(p.ShortTerm) + len(p.MediumTerm) + len(p.LongTerm)
}

func TestPreferredCategories(t *testing.T) {
	watch := map[uint]int{
		1: 3600,
		2: 7200,
		3: 1800,
		4: 900,
	}

	got := PreferredCategories(watch)
	want := []uint{2, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("preferred[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestPreferredCategoriesDeterministicTies(t *testing.T) {
	watch := map[uint]int{5: 100, 3: 100, 9: 100, 1: 100}

	// 时长相同按 ID 升序，结果必须稳定
	for i := 0; i < 10; i++ {
		got := PreferredCategories(watch)
		if got[0] != 1 || got[1] != 3 || got[2] != 5 {
			t.Fatalf("tie-break not deterministic: %v", got)
		}
	}
}

func TestPopularityBonusRange(t *testing.T) {
	cases := []struct{ count, max int }{
		{0, 0}, {0, 100}, {50, 100}, {100, 100}, {1, 1},
	}
	for _, c := range cases {
		bonus := popularityBonus(c.count, c.max)
		if bonus < 0 || bonus >= popularityBonusCap {
			t.Errorf("popularityBonus(%d, %d) = %v out of [0, 20)", c.count, c.max, bonus)
		}
	}
}

func TestBuildLearningPathInclusionThreshold(t *testing.T) {
	in := RecommendationInput{
		PreferredCategories: []uint{1},
		AvgSessionSeconds:   1800,
		Candidates: []Candidate{
			// 30 + 15 + 10 = 55，入选
			{CourseID: 1, CategoryID: 1, DurationSeconds: 3600},
			// 仅 15 基础分，不过 20 门槛
			{CourseID: 2, CategoryID: 9, DurationSeconds: 360000},
			// 15 + 10 = 25，入选
			{CourseID: 3, CategoryID: 9, DurationSeconds: 1800},
		},
	}

	path := BuildLearningPath(in)
	if pathLen(path) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", pathLen(path))
	}
	if path.ShortTerm[0].CourseID != 1 {
		t.Errorf("highest scored course should rank first, got %d", path.ShortTerm[0].CourseID)
	}
	if path.ShortTerm[1].CourseID != 3 {
		t.Errorf("second course should be 3, got %d", path.ShortTerm[1].CourseID)
	}
}

func TestBuildLearningPathRespectsMax(t *testing.T) {
	candidates := make([]Candidate, 10)
	for i := range candidates {
		candidates[i] = Candidate{
			CourseID:        uint(i + 1),
			CategoryID:      1,
			DurationSeconds: 600,
		}
	}

	in := RecommendationInput{
		PreferredCategories: []uint{1},
		AvgSessionSeconds:   1800,
		Candidates:          candidates,
		MaxRecommendations:  4,
	}

	path := BuildLearningPath(in)
	if pathLen(path) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", pathLen(path))
	}
	if len(path.ShortTerm) != 2 || len(path.MediumTerm) != 2 || len(path.LongTerm) != 0 {
		t.Errorf("unexpected bucket sizes: %d/%d/%d",
			len(path.ShortTerm), len(path.MediumTerm), len(path.LongTerm))
	}
}

func TestBuildLearningPathBuckets(t *testing.T) {
	candidates := make([]Candidate, 12)
	for i := range candidates {
		candidates[i] = Candidate{
			CourseID:        uint(i + 1),
			CategoryID:      1,
			DurationSeconds: 600,
		}
	}

	in := RecommendationInput{
		PreferredCategories: []uint{1},
		AvgSessionSeconds:   1800,
		Candidates:          candidates,
	}

	// 默认上限 8：短期 2，中期 3，长期 3
	path := BuildLearningPath(in)
	if len(path.ShortTerm) != 2 || len(path.MediumTerm) != 3 || len(path.LongTerm) != 3 {
		t.Errorf("unexpected bucket sizes: %d/%d/%d",
			len(path.ShortTerm), len(path.MediumTerm), len(path.LongTerm))
	}
}

func TestBuildLearningPathDeterministic(t *testing.T) {
	in := RecommendationInput{
		PreferredCategories: []uint{1, 2},
		AvgSessionSeconds:   1800,
		Candidates: []Candidate{
			{CourseID: 1, CategoryID: 1, DurationSeconds: 600, EnrollmentCount: 40},
			{CourseID: 2, CategoryID: 2, DurationSeconds: 600, EnrollmentCount: 80},
			{CourseID: 3, CategoryID: 1, DurationSeconds: 600, EnrollmentCount: 10},
		},
	}

	first := BuildLearningPath(in)
	for i := 0; i < 5; i++ {
		again := BuildLearningPath(in)
		if pathLen(again) != pathLen(first) {
			t.Fatal("recommendation output not deterministic")
		}
		for j := range first.ShortTerm {
			if again.ShortTerm[j].CourseID != first.ShortTerm[j].CourseID {
				t.Fatal("recommendation ordering not deterministic")
			}
		}
	}

	// 报名数最高的课程热度加分最多，应排第一
	if first.ShortTerm[0].CourseID != 2 {
		t.Errorf("most popular preferred course should rank first, got %d", first.ShortTerm[0].CourseID)
	}
}

func TestBuildLearningPathEmptyCandidates(t *testing.T) {
	path := BuildLearningPath(RecommendationInput{})
	if pathLen(path) != 0 {
		t.Errorf("expected empty path, got %d items", pathLen(path))
	}
}

func TestBuildLearningPathStableForEqualScores(t *testing.T) {
	in := RecommendationInput{
		PreferredCategories: []uint{1},
		AvgSessionSeconds:   1800,
		Candidates: []Candidate{
			{CourseID: 7, CategoryID: 1, DurationSeconds: 600},
			{CourseID: 3, CategoryID: 1, DurationSeconds: 600},
			{CourseID: 5, CategoryID: 1, DurationSeconds: 600},
		},
	}

	path := BuildLearningPath(in)
	want := []uint{7, 3}
	for i, w := range want {
		if path.ShortTerm[i].CourseID != w {
			t.Errorf("equal scores must keep input order: got %d at %d, want %d",
				path.ShortTerm[i].CourseID, i, w)
		}
	}
}
