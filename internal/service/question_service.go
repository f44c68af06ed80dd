package service

import (
	"errors"
	"fmt"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"gorm.io/gorm"
)

// QuestionKnowledgeLink 建题时挂接的知识点及权重，权重缺省为 1
type QuestionKnowledgeLink struct {
	KnowledgePointID uint    `json:"knowledgePointId" binding:"required"`
	Weight           float64 `json:"weight"`
}

// QuestionService 题库管理
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	PointRepo    *repository.KnowledgePointRepository
	Subjects     *SubjectService
}

func NewQuestionService(questionRepo *repository.QuestionRepository, pointRepo *repository.KnowledgePointRepository, subjects *SubjectService) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		PointRepo:    pointRepo,
		Subjects:     subjects,
	}
}

// CreateQuestion 建题并挂接知识点。分值必须为正，难度限定在 [0,1]，
// 挂接的知识点必须存在且与题目同学科。
func (s *QuestionService) CreateQuestion(question *model.Question, links []QuestionKnowledgeLink) error {
	if question.Score <= 0 {
		return util.ErrInvalidScore
	}
	if question.Difficulty < 0 || question.Difficulty > 1 {
		return util.ErrInvalidDifficulty
	}
	if _, err := s.Subjects.GetSubject(question.SubjectID); err != nil {
		return err
	}

	rows := make([]model.QuestionKnowledge, 0, len(links))
	for _, link := range links {
		point, err := s.PointRepo.FindByID(link.KnowledgePointID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("知识点 %d: %w", link.KnowledgePointID, util.ErrPointNotFound)
			}
			return err
		}
		if point.SubjectID != question.SubjectID {
			return fmt.Errorf("知识点 %d: %w", link.KnowledgePointID, util.ErrPointSubjectMismatch)
		}

		weight := link.Weight
		if weight <= 0 {
			weight = 1
		}
		rows = append(rows, model.QuestionKnowledge{
			KnowledgePointID: link.KnowledgePointID,
			Weight:           weight,
		})
	}

	return s.QuestionRepo.Create(question, rows)
}

// GetQuestion 带知识点预加载
func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) ListQuestions(subjectID uint, qType model.QuestionType, page, limit int) ([]model.Question, int64, error) {
	return s.QuestionRepo.FindWithPagination(subjectID, qType, page, limit)
}
