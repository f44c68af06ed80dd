package service_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
)

func newGenerator(store *fakeStore, seed int64) *service.ExamGeneratorService {
	weakness := newWeaknessService(store)
	return service.NewExamGeneratorService(weakness, store, store, rand.New(rand.NewSource(seed)))
}

// seedBankType 为某题型铺 n 道题，难度从 0.1 到 0.9 均匀分布，
// 保证任何槽位的难度窗口内都有足够候选。
func seedBankType(store *fakeStore, idBase, subjectID uint, qType model.QuestionType, n int, score float64) {
	for i := 0; i < n; i++ {
		difficulty := 0.1 + 0.8*float64(i)/float64(n-1)
		store.addQuestion(idBase+uint(i), subjectID, qType, difficulty, score)
	}
}

func TestDefaultTemplateRegistry(t *testing.T) {
	cases := []struct {
		totalScore float64
		entries    int
		sum        float64
	}{
		{150, 3, 158}, // 12×4 + 4×5 + 6×15
		{100, 2, 100}, // 10×4 + 5×12
		{120, 3, 115}, // 通用模板 10×4 + 5×5 + 5×10
	}

	for _, tc := range cases {
		template := service.DefaultTemplate(tc.totalScore)
		if len(template) != tc.entries {
			t.Errorf("target %v: expected %d entries, got %d", tc.totalScore, tc.entries, len(template))
		}
		if got := template.TotalScore(); got != tc.sum {
			t.Errorf("target %v: expected template sum %v, got %v", tc.totalScore, tc.sum, got)
		}
	}
}

func TestDefaultTemplateReturnsCopy(t *testing.T) {
	first := service.DefaultTemplate(150)
	first[0].Count = 999

	second := service.DefaultTemplate(150)
	if second[0].Count == 999 {
		t.Error("DefaultTemplate must return a copy, registry was mutated")
	}
}

func TestDifficultyTargetMapping(t *testing.T) {
	cases := map[model.DifficultyLevel]float64{
		model.DifficultyEasy:   0.3,
		model.DifficultyMedium: 0.5,
		model.DifficultyHard:   0.7,
		"unknown":              0.5,
	}
	for level, want := range cases {
		if got := service.DifficultyTarget(level); got != want {
			t.Errorf("level %q: expected %v, got %v", level, want, got)
		}
	}
}

func TestSlotDifficultyGradient(t *testing.T) {
	bases := []float64{0.3, 0.5, 0.7}
	counts := []int{1, 4, 12}

	for _, base := range bases {
		for _, count := range counts {
			prev := -1.0
			for i := 0; i < count; i++ {
				target := service.SlotDifficultyTarget(i, count, base)
				if target < prev {
					t.Errorf("base %v count %d: target decreased at slot %d (%v < %v)",
						base, count, i, target, prev)
				}
				if target < 0.1 || target > 0.9 {
					t.Errorf("base %v count %d slot %d: target %v outside [0.1, 0.9]",
						base, count, i, target)
				}
				prev = target
			}
		}
	}

	// 首槽落在下限，梯度截断在 [0.1, 0.9]
	if got := service.SlotDifficultyTarget(0, 12, 0.3); got != 0.1 {
		t.Errorf("easy base floor: expected 0.1, got %v", got)
	}
	if got := service.SlotDifficultyTarget(0, 12, 0.5); got != 0.3 {
		t.Errorf("medium base floor: expected 0.3, got %v", got)
	}
}

// 难度梯度体现在题库检索窗口上：同一题型内检索下界单调不减
func TestGenerateQueryWindowsAscend(t *testing.T) {
	store := newFakeStore()
	generator := newGenerator(store, 1)

	_, err := generator.GenerateExam(service.GenerateExamRequest{
		StudentID:       1,
		SubjectID:       1,
		DifficultyLevel: model.DifficultyMedium,
		Template:        model.ExamTemplate{{Type: model.QuestionChoice, Count: 5, Score: 4}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.searchLog) != 5 {
		t.Fatalf("expected 5 searches for 5 slots, got %d", len(store.searchLog))
	}
	for i := 1; i < len(store.searchLog); i++ {
		cur, prev := store.searchLog[i], store.searchLog[i-1]
		if *cur.MinDifficulty < *prev.MinDifficulty {
			t.Errorf("slot %d: difficulty window moved backwards (%v < %v)",
				i, *cur.MinDifficulty, *prev.MinDifficulty)
		}
		width := *cur.MaxDifficulty - *cur.MinDifficulty
		if width < 0.299 || width > 0.301 {
			t.Errorf("slot %d: window width %v, expected 0.3", i, width)
		}
	}
}

// 题库充足时，150 分默认模板选满 12+4+6=22 道题，实际总分 158
func TestGenerateFullPaper(t *testing.T) {
	store := newFakeStore()
	seedBankType(store, 1000, 1, model.QuestionChoice, 40, 4)
	seedBankType(store, 2000, 1, model.QuestionFillIn, 20, 5)
	seedBankType(store, 3000, 1, model.QuestionShortAnswer, 20, 15)
	generator := newGenerator(store, 7)

	exam, err := generator.GenerateExam(service.GenerateExamRequest{
		StudentID:       1,
		SubjectID:       1,
		TotalScore:      150,
		DifficultyLevel: model.DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exam.ActualCount != 22 {
		t.Fatalf("expected 22 questions, got %d", exam.ActualCount)
	}
	if exam.TotalScore != 158 {
		t.Errorf("expected actual total 158, got %v", exam.TotalScore)
	}

	stats := exam.DifficultyStats
	if stats.Easy+stats.Medium+stats.Hard != exam.ActualCount {
		t.Errorf("difficulty buckets %d+%d+%d do not sum to %d",
			stats.Easy, stats.Medium, stats.Hard, exam.ActualCount)
	}
	if stats.Average < 0 || stats.Average > 1 {
		t.Errorf("average difficulty %v outside [0, 1]", stats.Average)
	}

	// 无作答历史，不存在薄弱点
	if exam.WeaknessCoverage.Total != 0 || exam.WeaknessCoverage.Rate != 0 {
		t.Errorf("expected zero weakness coverage, got %+v", exam.WeaknessCoverage)
	}
	for i, q := range exam.Questions {
		if q.OrderNum != i+1 {
			t.Errorf("question %d: expected order %d, got %d", i, i+1, q.OrderNum)
		}
	}
}

func TestGenerateNoDuplicateQuestions(t *testing.T) {
	store := newFakeStore()
	seedBankType(store, 100, 1, model.QuestionChoice, 15, 4)

	for seed := int64(1); seed <= 5; seed++ {
		generator := newGenerator(store, seed)
		exam, err := generator.GenerateExam(service.GenerateExamRequest{
			StudentID:       1,
			SubjectID:       1,
			DifficultyLevel: model.DifficultyMedium,
			Template:        model.ExamTemplate{{Type: model.QuestionChoice, Count: 10, Score: 4}},
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		seen := make(map[uint]bool)
		for _, q := range exam.Questions {
			if seen[q.ID] {
				t.Fatalf("seed %d: question %d selected twice", seed, q.ID)
			}
			seen[q.ID] = true
		}
		store.searchLog = nil
	}
}

// 空题库：返回空卷与题库不足的提示，任何目标总分下都不报错
func TestGenerateEmptyBank(t *testing.T) {
	for _, target := range []float64{150, 100, 80} {
		store := newFakeStore()
		generator := newGenerator(store, 3)

		exam, err := generator.GenerateExam(service.GenerateExamRequest{
			StudentID:       1,
			SubjectID:       1,
			TotalScore:      target,
			DifficultyLevel: model.DifficultyMedium,
		})
		if err != nil {
			t.Fatalf("target %v: bank exhaustion must not error, got %v", target, err)
		}

		if exam.ActualCount != 0 || len(exam.Questions) != 0 {
			t.Errorf("target %v: expected empty paper, got %d questions", target, exam.ActualCount)
		}
		if exam.TotalScore != 0 {
			t.Errorf("target %v: expected zero score, got %v", target, exam.TotalScore)
		}
		if len(exam.Recommendations) == 0 {
			t.Fatalf("target %v: expected insufficiency recommendation", target)
		}
		if !strings.Contains(exam.Recommendations[0], "题库可能不足") {
			t.Errorf("target %v: expected insufficiency notice, got %q", target, exam.Recommendations[0])
		}
	}
}

// 薄弱点优先：题目命中薄弱知识点时打标，覆盖数与题目知识点关联一致
func TestGenerateWeakPointTagging(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "数学")
	// 知识点 11 掌握率 0：两题全错
	store.addQuestion(1, 1, model.QuestionChoice, 0.5, 4, 11)
	store.addQuestion(2, 1, model.QuestionChoice, 0.5, 4, 11)
	store.addAnswer(1, 1, 1, false)
	store.addAnswer(1, 1, 2, false)
	// 题库：一半题目挂在薄弱点 11 上，一半不挂
	for i := 0; i < 10; i++ {
		id := uint(100 + i)
		difficulty := 0.1 + 0.8*float64(i)/9
		if i%2 == 0 {
			store.addQuestion(id, 1, model.QuestionChoice, difficulty, 4, 11)
		} else {
			store.addQuestion(id, 1, model.QuestionChoice, difficulty, 4, 99)
		}
	}
	generator := newGenerator(store, 11)

	exam, err := generator.GenerateExam(service.GenerateExamRequest{
		StudentID:         1,
		SubjectID:         1,
		FocusOnWeaknesses: true,
		DifficultyLevel:   model.DifficultyMedium,
		Template:          model.ExamTemplate{{Type: model.QuestionChoice, Count: 6, Score: 4}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exam.WeaknessCoverage.Rate < 0 || exam.WeaknessCoverage.Rate > 1 {
		t.Errorf("coverage rate %v outside [0, 1]", exam.WeaknessCoverage.Rate)
	}
	if exam.WeaknessCoverage.Total != 1 {
		t.Errorf("expected 1 weak point considered, got %d", exam.WeaknessCoverage.Total)
	}

	covered := 0
	for _, q := range exam.Questions {
		touchesWeak := false
		for _, kp := range store.links[q.ID] {
			if kp.ID == 11 {
				touchesWeak = true
			}
		}
		if q.IsWeakPoint != touchesWeak {
			t.Errorf("question %d: weak tag %v, links say %v", q.ID, q.IsWeakPoint, touchesWeak)
		}
		if touchesWeak {
			covered = 1
		}
	}
	if exam.WeaknessCoverage.Covered != covered {
		t.Errorf("covered count %d, recomputed %d", exam.WeaknessCoverage.Covered, covered)
	}
}

// 题库与薄弱点完全不相干时覆盖率为 0，建议提示覆盖不足
func TestGenerateUnderCoverageRecommendation(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "数学")
	// 历史里有薄弱点 11，但题库里没有任何题挂在它上面
	store.linkQuestion(1, namedPoint(11, 1, "函数"))
	store.addAnswer(1, 1, 1, false)
	seedBankType(store, 100, 1, model.QuestionChoice, 15, 4)
	generator := newGenerator(store, 5)

	exam, err := generator.GenerateExam(service.GenerateExamRequest{
		StudentID:         1,
		SubjectID:         1,
		FocusOnWeaknesses: true,
		DifficultyLevel:   model.DifficultyMedium,
		Template:          model.ExamTemplate{{Type: model.QuestionChoice, Count: 5, Score: 4}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exam.ActualCount == 0 {
		t.Fatal("expected a non-empty paper")
	}
	if exam.WeaknessCoverage.Covered != 0 || exam.WeaknessCoverage.Rate != 0 {
		t.Errorf("expected zero coverage, got %+v", exam.WeaknessCoverage)
	}

	found := false
	for _, rec := range exam.Recommendations {
		if strings.Contains(rec, "建议补充相关题目") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected under-coverage recommendation, got %v", exam.Recommendations)
	}
}

// 两段式放宽：限定薄弱点检索为空后，原条件去掉知识点限制重试一次
func TestSelectQuestionFallback(t *testing.T) {
	store := newFakeStore()
	store.addQuestion(5, 1, model.QuestionChoice, 0.5, 4) // 不挂任何知识点
	generator := newGenerator(store, 1)

	minDiff, maxDiff := 0.35, 0.65
	filter := repository.QuestionFilter{
		SubjectID:     1,
		Type:          model.QuestionChoice,
		MinDifficulty: &minDiff,
		MaxDifficulty: &maxDiff,
	}

	question, err := generator.SelectQuestion(filter, []uint{77})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question == nil || question.ID != 5 {
		t.Fatalf("expected fallback to select question 5, got %+v", question)
	}

	if len(store.searchLog) != 2 {
		t.Fatalf("expected 2 searches (restricted then widened), got %d", len(store.searchLog))
	}
	first, second := store.searchLog[0], store.searchLog[1]
	if len(first.KnowledgePointIDs) != 1 || first.KnowledgePointIDs[0] != 77 {
		t.Errorf("first search should be restricted to kp 77, got %v", first.KnowledgePointIDs)
	}
	if len(second.KnowledgePointIDs) != 0 {
		t.Errorf("widened search must drop the kp filter, got %v", second.KnowledgePointIDs)
	}
	// 放宽只去掉知识点限制，其余条件原样保留
	if second.SubjectID != first.SubjectID || second.Type != first.Type ||
		*second.MinDifficulty != *first.MinDifficulty || *second.MaxDifficulty != *first.MaxDifficulty {
		t.Error("widened search must keep every other filter unchanged")
	}
}

func TestSelectQuestionRestrictedHit(t *testing.T) {
	store := newFakeStore()
	store.addQuestion(9, 1, model.QuestionChoice, 0.5, 4, 77)
	generator := newGenerator(store, 1)

	minDiff, maxDiff := 0.35, 0.65
	filter := repository.QuestionFilter{
		SubjectID:     1,
		Type:          model.QuestionChoice,
		MinDifficulty: &minDiff,
		MaxDifficulty: &maxDiff,
	}

	question, err := generator.SelectQuestion(filter, []uint{77})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question == nil || question.ID != 9 {
		t.Fatalf("expected restricted search to hit question 9, got %+v", question)
	}
	if len(store.searchLog) != 1 {
		t.Errorf("restricted hit must not trigger the widened retry, got %d searches", len(store.searchLog))
	}
}

func TestSelectQuestionExhausted(t *testing.T) {
	store := newFakeStore()
	generator := newGenerator(store, 1)

	question, err := generator.SelectQuestion(repository.QuestionFilter{SubjectID: 1}, nil)
	if err != nil {
		t.Fatalf("exhaustion must not error, got %v", err)
	}
	if question != nil {
		t.Errorf("expected nil question from empty bank, got %+v", question)
	}
}

// 偏向薄弱点的槽位比例应接近 0.7：统计带知识点限制的首次检索次数
func TestWeakPreferenceDistribution(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "数学")
	// 造一个薄弱点，题库保持为空：选题失败不影响偏好判定的记录
	store.linkQuestion(1, namedPoint(11, 1, "函数"))
	store.addAnswer(1, 1, 1, false)
	generator := newGenerator(store, 99)

	const slots = 200
	_, err := generator.GenerateExam(service.GenerateExamRequest{
		StudentID:         1,
		SubjectID:         1,
		FocusOnWeaknesses: true,
		DifficultyLevel:   model.DifficultyMedium,
		Template:          model.ExamTemplate{{Type: model.QuestionChoice, Count: slots, Score: 4}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	preferred := 0
	for _, logged := range store.searchLog {
		if len(logged.KnowledgePointIDs) > 0 {
			preferred++
		}
	}

	// 期望 0.7×200=140，留足随机余量
	if preferred < slots/2 || preferred > slots*9/10 {
		t.Errorf("weak-preferring slots = %d of %d, expected around 140", preferred, slots)
	}
}

// 自定义模板逐字生效，不落回默认模板
func TestGenerateCustomTemplate(t *testing.T) {
	store := newFakeStore()
	seedBankType(store, 100, 1, model.QuestionEssay, 10, 30)
	generator := newGenerator(store, 2)

	exam, err := generator.GenerateExam(service.GenerateExamRequest{
		StudentID:       1,
		SubjectID:       1,
		TotalScore:      150, // 有自定义模板时总分不参与模板选择
		DifficultyLevel: model.DifficultyMedium,
		Template:        model.ExamTemplate{{Type: model.QuestionEssay, Count: 2, Score: 30}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, logged := range store.searchLog {
		if logged.Type != model.QuestionEssay {
			t.Errorf("expected only essay searches, got %q", logged.Type)
		}
	}
	if exam.ActualCount != 2 {
		t.Errorf("expected 2 essays, got %d", exam.ActualCount)
	}
	for _, q := range exam.Questions {
		if q.Type != model.QuestionEssay {
			t.Errorf("expected essay question, got %q", q.Type)
		}
	}
}
