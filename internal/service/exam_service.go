package service

import (
	"errors"
	"fmt"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"gorm.io/gorm"
)

// AnswerSubmission 单题判分结果，由录入方（教师/阅卷流程）给出
type AnswerSubmission struct {
	QuestionID    uint    `json:"questionId" binding:"required"`
	AnswerText    string  `json:"answerText"`
	ScoreObtained float64 `json:"scoreObtained"`
	IsCorrect     bool    `json:"isCorrect"`
}

// ExamDetail 试卷及其按题号排列的题目
type ExamDetail struct {
	Exam      *model.Exam      `json:"exam"`
	Questions []model.Question `json:"questions"`
}

// ExamService 考试生命周期：落库、录入成绩、统计
type ExamService struct {
	ExamRepo    *repository.ExamRepository
	AnswerRepo  *repository.AnswerRepository
	StudentRepo *repository.StudentRepository
}

func NewExamService(examRepo *repository.ExamRepository, answerRepo *repository.AnswerRepository, studentRepo *repository.StudentRepository) *ExamService {
	return &ExamService{
		ExamRepo:    examRepo,
		AnswerRepo:  answerRepo,
		StudentRepo: studentRepo,
	}
}

// CreateExam 教师手工建卷（不经组卷引擎）
func (s *ExamService) CreateExam(exam *model.Exam, questionIDs []uint) error {
	return s.ExamRepo.CreateWithQuestions(exam, questionIDs)
}

// SaveGeneratedExam 把组卷结果持久化为考试与试卷题目，题号沿用选题顺序。
// 返回落库后的考试记录。
func (s *ExamService) SaveGeneratedExam(generated *model.GeneratedExam, name string) (*model.Exam, error) {
	if name == "" {
		name = fmt.Sprintf("智能组卷-学生%d", generated.StudentID)
	}

	exam := &model.Exam{
		Name:       name,
		SubjectID:  generated.SubjectID,
		ExamType:   "模拟",
		TotalScore: generated.TotalScore,
	}

	questionIDs := make([]uint, 0, len(generated.Questions))
	for _, q := range generated.Questions {
		questionIDs = append(questionIDs, q.ID)
	}

	if err := s.ExamRepo.CreateWithQuestions(exam, questionIDs); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) GetExam(id uint) (*ExamDetail, error) {
	exam, err := s.ExamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	questions, err := s.ExamRepo.GetQuestions(id)
	if err != nil {
		return nil, err
	}
	return &ExamDetail{Exam: exam, Questions: questions}, nil
}

func (s *ExamService) ListExams(subjectID uint, page, limit int) ([]model.Exam, int64, error) {
	return s.ExamRepo.FindWithPagination(subjectID, page, limit)
}

// RecordAnswers 批量录入某学生在一场考试中的判分结果，并写入总分记录。
// 同一（学生，考试）只允许录入一次。
func (s *ExamService) RecordAnswers(examID, studentID uint, submissions []AnswerSubmission) (*model.ExamScore, error) {
	exam, err := s.ExamRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	if _, err := s.StudentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	recorded, err := s.AnswerRepo.ExistsForExam(studentID, examID)
	if err != nil {
		return nil, err
	}
	if recorded {
		return nil, util.ErrAnswerRecorded
	}

	answers := make([]model.StudentAnswer, 0, len(submissions))
	var obtained float64
	for _, sub := range submissions {
		answers = append(answers, model.StudentAnswer{
			StudentID:     studentID,
			ExamID:        examID,
			QuestionID:    sub.QuestionID,
			AnswerText:    sub.AnswerText,
			ScoreObtained: sub.ScoreObtained,
			IsCorrect:     sub.IsCorrect,
		})
		obtained += sub.ScoreObtained
	}

	if err := s.AnswerRepo.BatchCreate(answers); err != nil {
		return nil, err
	}

	score := &model.ExamScore{
		ExamID:    examID,
		StudentID: studentID,
		Score:     obtained,
	}
	if exam.TotalScore > 0 {
		score.ScoreRate = obtained / exam.TotalScore
	}
	if err := s.ExamRepo.CreateScore(score); err != nil {
		return nil, err
	}
	return score, nil
}

// Statistics 场次成绩汇总，零人参加返回零值统计
func (s *ExamService) Statistics(examID uint) (*model.ExamStatistics, error) {
	if _, err := s.ExamRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	return s.ExamRepo.GetStatistics(examID)
}
