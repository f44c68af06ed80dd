package service_test

import (
	"reflect"
	"testing"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
)

func newWeaknessService(store *fakeStore) *service.WeaknessAnalysisService {
	return service.NewWeaknessAnalysisService(store, store, store)
}

// 构造 20 条作答：5 个知识点各 4 题，正确数从 0 递增到 4，
// 掌握率依次 0.0 / 0.25 / 0.5 / 0.75 / 1.0。
func seedFivePointHistory(store *fakeStore, studentID, subjectID uint) {
	questionID := uint(0)
	for i := 0; i < 5; i++ {
		kpID := uint(101 + i)
		for j := 0; j < 4; j++ {
			questionID++
			store.addQuestion(questionID, subjectID, model.QuestionChoice, 0.5, 4, kpID)
			store.addAnswer(studentID, 1, questionID, j < i)
		}
	}
}

func TestEstimateRatios(t *testing.T) {
	store := newFakeStore()
	seedFivePointHistory(store, 1, 1)
	svc := newWeaknessService(store)

	records, err := svc.Estimate(1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 knowledge points, got %d", len(records))
	}

	wantRates := map[uint]float64{101: 0, 102: 0.25, 103: 0.5, 104: 0.75, 105: 1}
	for kpID, want := range wantRates {
		record, ok := records[kpID]
		if !ok {
			t.Fatalf("knowledge point %d missing from estimate", kpID)
		}
		if record.MasteryRate != want {
			t.Errorf("kp %d: expected rate %v, got %v", kpID, want, record.MasteryRate)
		}
		if record.TotalAttempts != 4 {
			t.Errorf("kp %d: expected 4 attempts, got %d", kpID, record.TotalAttempts)
		}
	}
}

func TestEstimatePurity(t *testing.T) {
	store := newFakeStore()
	seedFivePointHistory(store, 1, 1)
	svc := newWeaknessService(store)

	first, err := svc.Estimate(1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Estimate(1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated estimates differ: %v vs %v", first, second)
	}
}

func TestEstimateEmptyHistory(t *testing.T) {
	store := newFakeStore()
	svc := newWeaknessService(store)

	records, err := svc.Estimate(42, 0)
	if err != nil {
		t.Fatalf("empty history must not error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty map, got %d entries", len(records))
	}
}

func TestEstimateSubjectFilter(t *testing.T) {
	store := newFakeStore()
	// 题 1 属于科目 1，题 2 属于科目 2
	store.addQuestion(1, 1, model.QuestionChoice, 0.5, 4, 11)
	store.addQuestion(2, 2, model.QuestionChoice, 0.5, 4, 22)
	store.addAnswer(7, 1, 1, true)
	store.addAnswer(7, 1, 2, false)
	svc := newWeaknessService(store)

	records, err := svc.Estimate(7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 knowledge point after subject filter, got %d", len(records))
	}
	if _, ok := records[11]; !ok {
		t.Errorf("expected kp 11 in filtered estimate")
	}
}

func TestRankWeaknessesScenario(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "数学")
	seedFivePointHistory(store, 1, 1)
	svc := newWeaknessService(store)

	weaknesses, err := svc.RankWeaknesses(1, 0, 0.65)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 20 条作答、5 个知识点，3 个低于 0.65，按掌握率升序
	wantIDs := []uint{101, 102, 103}
	if len(weaknesses) != len(wantIDs) {
		t.Fatalf("expected %d weak points, got %d", len(wantIDs), len(weaknesses))
	}
	for i, want := range wantIDs {
		if weaknesses[i].KnowledgePointID != want {
			t.Errorf("position %d: expected kp %d, got %d", i, want, weaknesses[i].KnowledgePointID)
		}
	}
	for i := 1; i < len(weaknesses); i++ {
		if weaknesses[i].MasteryRate < weaknesses[i-1].MasteryRate {
			t.Errorf("mastery rates not ascending at %d", i)
		}
	}
	for _, weak := range weaknesses {
		if weak.MasteryRate >= 0.65 {
			t.Errorf("kp %d rate %v should be below threshold", weak.KnowledgePointID, weak.MasteryRate)
		}
		if weak.SubjectName != "数学" {
			t.Errorf("kp %d: expected subject 数学, got %q", weak.KnowledgePointID, weak.SubjectName)
		}
	}
}

func TestRankWeaknessesStableTies(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "物理")
	// 三个知识点：203 掌握率 0，201 与 202 并列 0.5，201 先出现
	store.addQuestion(1, 1, model.QuestionChoice, 0.5, 4, 201)
	store.addQuestion(2, 1, model.QuestionChoice, 0.5, 4, 201)
	store.addQuestion(3, 1, model.QuestionChoice, 0.5, 4, 202)
	store.addQuestion(4, 1, model.QuestionChoice, 0.5, 4, 202)
	store.addQuestion(5, 1, model.QuestionChoice, 0.5, 4, 203)
	store.addAnswer(1, 1, 1, true)
	store.addAnswer(1, 1, 2, false)
	store.addAnswer(1, 1, 3, true)
	store.addAnswer(1, 1, 4, false)
	store.addAnswer(1, 1, 5, false)
	svc := newWeaknessService(store)

	weaknesses, err := svc.RankWeaknesses(1, 0, 0.65)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []uint{203, 201, 202}
	if len(weaknesses) != len(wantIDs) {
		t.Fatalf("expected %d weak points, got %d", len(wantIDs), len(weaknesses))
	}
	for i, want := range wantIDs {
		if weaknesses[i].KnowledgePointID != want {
			t.Errorf("position %d: expected kp %d, got %d (ties must keep first-seen order)",
				i, want, weaknesses[i].KnowledgePointID)
		}
	}
}

func TestRankWeaknessesNewStudent(t *testing.T) {
	store := newFakeStore()
	svc := newWeaknessService(store)

	weaknesses, err := svc.RankWeaknesses(99, 0, 0.65)
	if err != nil {
		t.Fatalf("new student must not error, got %v", err)
	}
	if len(weaknesses) != 0 {
		t.Errorf("expected no weaknesses for a new student, got %d", len(weaknesses))
	}
}

func TestRankWeaknessesUnknownSubjectName(t *testing.T) {
	store := newFakeStore()
	// 不登记任何科目，名称解析兜底为 未知
	store.addQuestion(1, 3, model.QuestionChoice, 0.5, 4, 31)
	store.addAnswer(1, 1, 1, false)
	svc := newWeaknessService(store)

	weaknesses, err := svc.RankWeaknesses(1, 0, 0.65)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weaknesses) != 1 {
		t.Fatalf("expected 1 weak point, got %d", len(weaknesses))
	}
	if weaknesses[0].SubjectName != "未知" {
		t.Errorf("expected fallback subject name 未知, got %q", weaknesses[0].SubjectName)
	}
}

func TestMasteryMapNeutralDefault(t *testing.T) {
	store := newFakeStore()
	store.addQuestion(1, 1, model.QuestionChoice, 0.5, 4, 11)
	store.addAnswer(1, 1, 1, true)
	svc := newWeaknessService(store)

	mastery, err := svc.MasteryMap(1, []uint{11, 999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mastery[11] != 1.0 {
		t.Errorf("expected rate 1.0 for practiced kp, got %v", mastery[11])
	}
	if mastery[999] != 0.5 {
		t.Errorf("expected neutral 0.5 for unseen kp, got %v", mastery[999])
	}
}

func TestImprovementSuggestions(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "数学")
	store.addQuestion(1, 1, model.QuestionChoice, 0.5, 4)
	store.linkQuestion(1, namedPoint(11, 1, "函数"))
	store.addQuestion(2, 1, model.QuestionChoice, 0.5, 4)
	store.linkQuestion(2, namedPoint(11, 1, "函数"))
	store.addQuestion(3, 1, model.QuestionChoice, 0.5, 4)
	store.linkQuestion(3, namedPoint(11, 1, "函数"))
	store.addAnswer(1, 1, 1, true)
	store.addAnswer(1, 1, 2, false)
	store.addAnswer(1, 1, 3, false)
	svc := newWeaknessService(store)

	suggestions, err := svc.ImprovementSuggestions(1, 0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	want := "1. 加强【数学-函数】的练习 (当前掌握率: 33.3%, 已练习3题)"
	if suggestions[0] != want {
		t.Errorf("suggestion mismatch:\nwant %q\ngot  %q", want, suggestions[0])
	}
}

func TestImprovementSuggestionsTopN(t *testing.T) {
	store := newFakeStore()
	store.addSubject(1, "数学")
	seedFivePointHistory(store, 1, 1)
	svc := newWeaknessService(store)

	suggestions, err := svc.ImprovementSuggestions(1, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Errorf("expected suggestions capped at 2, got %d", len(suggestions))
	}
}

func TestCoverage(t *testing.T) {
	store := newFakeStore()
	store.addKnowledgePoint(11, 1, "集合")
	store.addKnowledgePoint(12, 1, "函数")
	store.addKnowledgePoint(13, 1, "数列")
	store.addKnowledgePoint(21, 2, "力学") // 其他科目，不参与
	store.addQuestion(1, 1, model.QuestionChoice, 0.5, 4, 11)
	store.addAnswer(1, 1, 1, true)
	svc := newWeaknessService(store)

	coverage, err := svc.Coverage(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coverage.Total != 3 {
		t.Errorf("expected 3 catalog points, got %d", coverage.Total)
	}
	if coverage.Attempted != 1 {
		t.Errorf("expected 1 attempted point, got %d", coverage.Attempted)
	}
	if len(coverage.Unattempted) != 2 {
		t.Errorf("expected 2 unattempted points, got %d", len(coverage.Unattempted))
	}
	want := 1.0 / 3.0
	if coverage.CoverageRate != want {
		t.Errorf("expected coverage rate %v, got %v", want, coverage.CoverageRate)
	}
}

func TestCoverageEmptyCatalog(t *testing.T) {
	store := newFakeStore()
	svc := newWeaknessService(store)

	coverage, err := svc.Coverage(1, 9)
	if err != nil {
		t.Fatalf("empty catalog must not error, got %v", err)
	}
	if coverage.Total != 0 || coverage.Attempted != 0 || coverage.CoverageRate != 0 {
		t.Errorf("expected zeroed coverage, got %+v", coverage)
	}
}

func namedPoint(id, subjectID uint, name string) model.KnowledgePoint {
	kp := model.KnowledgePoint{SubjectID: subjectID, Name: name, Level: 1}
	kp.ID = id
	return kp
}
