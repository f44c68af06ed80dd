package service

import (
	"fmt"
	"sort"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
)

const (
	// DefaultWeaknessThreshold 掌握率低于该值的知识点视为薄弱
	DefaultWeaknessThreshold = 0.65
	// NeutralMasteryRate 无作答数据时按中性掌握率处理
	NeutralMasteryRate = 0.5
	// DefaultSuggestionCount 默认返回的练习建议条数
	DefaultSuggestionCount = 5
)

// AnswerReader 作答历史读取契约
type AnswerReader interface {
	GetAllByStudent(studentID uint) ([]model.StudentAnswer, error)
}

// KnowledgePointReader 知识点读取契约：按题目取关联知识点，按科目取知识点目录
type KnowledgePointReader interface {
	GetByQuestion(questionID uint) ([]model.KnowledgePoint, error)
	FindBySubject(subjectID uint) ([]model.KnowledgePoint, error)
}

// SubjectReader 科目读取契约，仅用于名称解析
type SubjectReader interface {
	GetAll() ([]model.Subject, error)
}

// WeaknessAnalysisService 从作答历史推导知识点掌握度并识别薄弱点。
// 所有结果都是调用时刻作答历史的纯函数，任何环节不做缓存。
type WeaknessAnalysisService struct {
	Answers  AnswerReader
	Points   KnowledgePointReader
	Subjects SubjectReader
}

func NewWeaknessAnalysisService(answers AnswerReader, points KnowledgePointReader, subjects SubjectReader) *WeaknessAnalysisService {
	return &WeaknessAnalysisService{
		Answers:  answers,
		Points:   points,
		Subjects: subjects,
	}
}

// knowledgeTally 单个知识点的作答累计
type knowledgeTally struct {
	point   model.KnowledgePoint
	total   int
	correct int
}

// tallyByPoint 逐条作答累计各知识点的答题数与正确数。
// subjectID 为 0 时不过滤科目。返回切片按知识点在作答历史中首次出现的顺序排列，
// 排序并列时以此顺序为准。
func (s *WeaknessAnalysisService) tallyByPoint(studentID, subjectID uint) ([]*knowledgeTally, error) {
	answers, err := s.Answers.GetAllByStudent(studentID)
	if err != nil {
		return nil, err
	}

	index := make(map[uint]*knowledgeTally)
	var order []*knowledgeTally

	for _, answer := range answers {
		points, err := s.Points.GetByQuestion(answer.QuestionID)
		if err != nil {
			return nil, err
		}
		for _, kp := range points {
			if subjectID > 0 && kp.SubjectID != subjectID {
				continue
			}
			tally, ok := index[kp.ID]
			if !ok {
				tally = &knowledgeTally{point: kp}
				index[kp.ID] = tally
				order = append(order, tally)
			}
			tally.total++
			if answer.IsCorrect {
				tally.correct++
			}
		}
	}
	return order, nil
}

// Estimate 计算学生各知识点的掌握情况，掌握率 = 正确数 / 作答数。
// 只包含有作答记录的知识点；没有任何历史时返回空映射，不视为错误。
func (s *WeaknessAnalysisService) Estimate(studentID, subjectID uint) (map[uint]model.MasteryRecord, error) {
	tallies, err := s.tallyByPoint(studentID, subjectID)
	if err != nil {
		return nil, err
	}

	records := make(map[uint]model.MasteryRecord, len(tallies))
	for _, tally := range tallies {
		records[tally.point.ID] = model.MasteryRecord{
			TotalAttempts:   tally.total,
			CorrectAttempts: tally.correct,
			MasteryRate:     float64(tally.correct) / float64(tally.total),
		}
	}
	return records, nil
}

// RankWeaknesses 找出掌握率低于阈值的知识点，按掌握率从低到高排列。
// threshold 不为正时取 DefaultWeaknessThreshold。掌握率并列时保持
// 知识点在作答历史中首次出现的先后顺序。没有历史的新生返回空切片。
func (s *WeaknessAnalysisService) RankWeaknesses(studentID, subjectID uint, threshold float64) ([]model.WeaknessPoint, error) {
	if threshold <= 0 {
		threshold = DefaultWeaknessThreshold
	}

	tallies, err := s.tallyByPoint(studentID, subjectID)
	if err != nil {
		return nil, err
	}

	var weaknesses []model.WeaknessPoint
	var subjectNames map[uint]string

	for _, tally := range tallies {
		rate := float64(tally.correct) / float64(tally.total)
		if rate >= threshold {
			continue
		}
		if subjectNames == nil {
			if subjectNames, err = s.subjectNames(); err != nil {
				return nil, err
			}
		}
		name, ok := subjectNames[tally.point.SubjectID]
		if !ok {
			name = "未知"
		}
		weaknesses = append(weaknesses, model.WeaknessPoint{
			KnowledgePointID:   tally.point.ID,
			KnowledgePointName: tally.point.Name,
			SubjectID:          tally.point.SubjectID,
			SubjectName:        name,
			Level:              tally.point.Level,
			TotalAttempts:      tally.total,
			CorrectAttempts:    tally.correct,
			MasteryRate:        rate,
		})
	}

	sort.SliceStable(weaknesses, func(i, j int) bool {
		return weaknesses[i].MasteryRate < weaknesses[j].MasteryRate
	})
	return weaknesses, nil
}

// MasteryMap 返回指定知识点的掌握率，未作答过的知识点取中性值 0.5
func (s *WeaknessAnalysisService) MasteryMap(studentID uint, kpIDs []uint) (map[uint]float64, error) {
	records, err := s.Estimate(studentID, 0)
	if err != nil {
		return nil, err
	}

	mastery := make(map[uint]float64, len(kpIDs))
	for _, id := range kpIDs {
		if record, ok := records[id]; ok {
			mastery[id] = record.MasteryRate
		} else {
			mastery[id] = NeutralMasteryRate
		}
	}
	return mastery, nil
}

// ImprovementSuggestions 针对最薄弱的 topN 个知识点生成编号的练习建议。
// topN 不为正时取 DefaultSuggestionCount。
func (s *WeaknessAnalysisService) ImprovementSuggestions(studentID, subjectID uint, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultSuggestionCount
	}

	weaknesses, err := s.RankWeaknesses(studentID, subjectID, DefaultWeaknessThreshold)
	if err != nil {
		return nil, err
	}
	if len(weaknesses) > topN {
		weaknesses = weaknesses[:topN]
	}

	suggestions := make([]string, 0, len(weaknesses))
	for i, weak := range weaknesses {
		suggestions = append(suggestions, fmt.Sprintf(
			"%d. 加强【%s-%s】的练习 (当前掌握率: %.1f%%, 已练习%d题)",
			i+1, weak.SubjectName, weak.KnowledgePointName, weak.MasteryRate*100, weak.TotalAttempts,
		))
	}
	return suggestions, nil
}

// Coverage 统计学生在某科目下练习过的知识点占科目全部知识点的比例。
// 科目没有知识点时各项为零值，不报错。
func (s *WeaknessAnalysisService) Coverage(studentID, subjectID uint) (*model.SubjectCoverage, error) {
	catalog, err := s.Points.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	answers, err := s.Answers.GetAllByStudent(studentID)
	if err != nil {
		return nil, err
	}

	attempted := make(map[uint]bool)
	for _, answer := range answers {
		points, err := s.Points.GetByQuestion(answer.QuestionID)
		if err != nil {
			return nil, err
		}
		for _, kp := range points {
			if kp.SubjectID == subjectID {
				attempted[kp.ID] = true
			}
		}
	}

	coverage := &model.SubjectCoverage{SubjectID: subjectID, Total: len(catalog)}
	for _, kp := range catalog {
		if attempted[kp.ID] {
			coverage.Attempted++
		} else {
			coverage.Unattempted = append(coverage.Unattempted, kp)
		}
	}
	if coverage.Total > 0 {
		coverage.CoverageRate = float64(coverage.Attempted) / float64(coverage.Total)
	}
	return coverage, nil
}

// subjectNames 科目 ID 到名称的映射
func (s *WeaknessAnalysisService) subjectNames() (map[uint]string, error) {
	subjects, err := s.Subjects.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(subjects))
	for _, subject := range subjects {
		names[subject.ID] = subject.Name
	}
	return names, nil
}
