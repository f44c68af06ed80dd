package repository

import (
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// CreateWithQuestions 创建考试并按序号写入试卷题目
func (r *ExamRepository) CreateWithQuestions(exam *model.Exam, questionIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exam).Error; err != nil {
			return err
		}
		if len(questionIDs) == 0 {
			return nil
		}
		links := make([]model.ExamQuestion, 0, len(questionIDs))
		for i, qid := range questionIDs {
			links = append(links, model.ExamQuestion{
				ExamID:     exam.ID,
				QuestionID: qid,
				OrderNum:   i + 1,
			})
		}
		return tx.Create(&links).Error
	})
}

// GetQuestions 试卷题目，按题号排序
func (r *ExamRepository) GetQuestions(examID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Joins("JOIN exam_questions eq ON eq.question_id = questions.id").
		Where("eq.exam_id = ?", examID).
		Order("eq.order_num").
		Preload("KnowledgePoints").
		Find(&questions).Error
	return questions, err
}

func (r *ExamRepository) CreateScore(score *model.ExamScore) error {
	return r.DB.Create(score).Error
}

// GetStatistics 考试成绩汇总，无人参加时各项为零值
func (r *ExamRepository) GetStatistics(examID uint) (*model.ExamStatistics, error) {
	var agg struct {
		Participants int64
		AvgScore     float64
		MaxScore     float64
		MinScore     float64
		AvgRate      float64
	}
	err := r.DB.Model(&model.ExamScore{}).
		Select("COUNT(*) AS participants, "+
			"COALESCE(AVG(score), 0) AS avg_score, "+
			"COALESCE(MAX(score), 0) AS max_score, "+
			"COALESCE(MIN(score), 0) AS min_score, "+
			"COALESCE(AVG(score_rate), 0) AS avg_rate").
		Where("exam_id = ?", examID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	return &model.ExamStatistics{
		ExamID:       examID,
		Participants: int(agg.Participants),
		AverageScore: agg.AvgScore,
		MaxScore:     agg.MaxScore,
		MinScore:     agg.MinScore,
		AverageRate:  agg.AvgRate,
	}, nil
}

// FindWithPagination 按科目分页列出考试
func (r *ExamRepository) FindWithPagination(subjectID uint, page, limit int) ([]model.Exam, int64, error) {
	query := r.DB.Model(&model.Exam{})
	if subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []model.Exam
	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&exams).Error
	return exams, total, err
}
