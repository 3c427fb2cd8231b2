package analytics

import "testing"

func TestMissingSkills(t *testing.T) {
	all := []uint{1, 2, 3, 4, 5, 6, 7}
	enrolled := map[uint]bool{2: true, 5: true}

	got := MissingSkills(all, enrolled)
	want := []uint{1, 3, 4, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d missing skills, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("missing[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestMissingSkillsCappedAtFive(t *testing.T) {
	all := []uint{1, 2, 3, 4, 5, 6, 7, 8}

	got := MissingSkills(all, nil)
	if len(got) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(got))
	}
	// 保持 allCategories 的顺序
	for i, w := range []uint{1, 2, 3, 4, 5} {
		if got[i] != w {
			t.Errorf("missing[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestCategoryScores(t *testing.T) {
	// Math 完成一门 + 在学一门 = 1.5，Art 在学一门 = 0.5
	enrollments := []CategoryEnrollment{
		{CategoryID: 1, Completed: true},  // Math
		{CategoryID: 2, Completed: false}, // Art
		{CategoryID: 1, Completed: false}, // Math
	}

	got := CategoryScores(enrollments)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].CategoryID != 1 || got[0].Score != 1.5 {
		t.Errorf("expected Math first with 1.5, got %+v", got[0])
	}
	if got[1].CategoryID != 2 || got[1].Score != 0.5 {
		t.Errorf("expected Art second with 0.5, got %+v", got[1])
	}
}

func TestCategoryScoresStableForTies(t *testing.T) {
	enrollments := []CategoryEnrollment{
		{CategoryID: 9, Completed: false},
		{CategoryID: 4, Completed: false},
	}

	got := CategoryScores(enrollments)
	// 同分保持首次出现顺序
	if got[0].CategoryID != 9 || got[1].CategoryID != 4 {
		t.Errorf("tie order not stable: %+v", got)
	}
}

func TestStrongWeakAreas(t *testing.T) {
	scores := []CategoryScore{
		{CategoryID: 1, Score: 5},
		{CategoryID: 2, Score: 4},
		{CategoryID: 3, Score: 3},
		{CategoryID: 4, Score: 2},
		{CategoryID: 5, Score: 1},
	}

	strong, weak := StrongWeakAreas(scores)
	if len(strong) != 3 || strong[0].CategoryID != 1 || strong[2].CategoryID != 3 {
		t.Errorf("unexpected strong areas: %+v", strong)
	}
	if len(weak) != 2 || weak[0].CategoryID != 4 || weak[1].CategoryID != 5 {
		t.Errorf("unexpected weak areas: %+v", weak)
	}
}

func TestStrongWeakAreasOverlapWithFewCategories(t *testing.T) {
	scores := []CategoryScore{
		{CategoryID: 1, Score: 1.5},
		{CategoryID: 2, Score: 0.5},
	}

	strong, weak := StrongWeakAreas(scores)
	if len(strong) != 2 {
		t.Errorf("expected 2 strong areas, got %d", len(strong))
	}
	if len(weak) != 2 {
		t.Errorf("expected 2 weak areas, got %d", len(weak))
	}
	// 分类少于 5 个时强弱项允许重叠
	if strong[0].CategoryID != weak[0].CategoryID {
		t.Errorf("expected overlap, strong=%+v weak=%+v", strong, weak)
	}
}

func TestStrongWeakAreasEmpty(t *testing.T) {
	strong, weak := StrongWeakAreas(nil)
	if len(strong) != 0 || len(weak) != 0 {
		t.Errorf("expected empty results, got %+v / %+v", strong, weak)
	}
}
