package repository

import (
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"

	"gorm.io/gorm"
)

// QuestionFilter 题库检索条件，全部条件取交集。
// KnowledgePointIDs 内部为并集（命中任一知识点即匹配），ExcludeIDs 无条件剔除。
type QuestionFilter struct {
	SubjectID         uint
	KnowledgePointIDs []uint
	Type              model.QuestionType
	MinDifficulty     *float64
	MaxDifficulty     *float64
	ExcludeIDs        []uint
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// Search 按条件检索题目，结果无重复、顺序不保证。
// 检索本身不做任何放宽重试，放宽策略由组卷方决定。
func (r *QuestionRepository) Search(filter *QuestionFilter) ([]model.Question, error) {
	query := r.DB.Model(&model.Question{})

	if filter.SubjectID > 0 {
		query = query.Where("questions.subject_id = ?", filter.SubjectID)
	}
	if filter.Type != "" {
		query = query.Where("questions.type = ?", filter.Type)
	}
	if filter.MinDifficulty != nil {
		query = query.Where("questions.difficulty >= ?", *filter.MinDifficulty)
	}
	if filter.MaxDifficulty != nil {
		query = query.Where("questions.difficulty <= ?", *filter.MaxDifficulty)
	}
	if len(filter.KnowledgePointIDs) > 0 {
		query = query.
			Joins("JOIN question_knowledge qk ON qk.question_id = questions.id").
			Where("qk.knowledge_point_id IN ?", filter.KnowledgePointIDs).
			Distinct("questions.*")
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("questions.id NOT IN ?", filter.ExcludeIDs)
	}

	var questions []model.Question
	err := query.Find(&questions).Error
	return questions, err
}

// Create 创建题目并写入知识点关联（带权重）
func (r *QuestionRepository) Create(question *model.Question, links []model.QuestionKnowledge) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		for i := range links {
			links[i].QuestionID = question.ID
			if links[i].Weight == 0 {
				links[i].Weight = 1.0
			}
		}
		return tx.Create(&links).Error
	})
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("KnowledgePoints").First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindWithPagination 按科目/题型分页列出题目，供题库管理使用
func (r *QuestionRepository) FindWithPagination(subjectID uint, qType model.QuestionType, page, limit int) ([]model.Question, int64, error) {
	query := r.DB.Model(&model.Question{})
	if subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}
	if qType != "" {
		query = query.Where("type = ?", qType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&questions).Error
	return questions, total, err
}
