package repository

import (
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"

	"gorm.io/gorm"
)

type KnowledgePointRepository struct {
	DB *gorm.DB
}

func NewKnowledgePointRepository(db *gorm.DB) *KnowledgePointRepository {
	return &KnowledgePointRepository{DB: db}
}

// GetByQuestion 题目关联的全部知识点
func (r *KnowledgePointRepository) GetByQuestion(questionID uint) ([]model.KnowledgePoint, error) {
	var points []model.KnowledgePoint
	err := r.DB.
		Joins("JOIN question_knowledge qk ON qk.knowledge_point_id = knowledge_points.id").
		Where("qk.question_id = ?", questionID).
		Find(&points).Error
	return points, err
}

func (r *KnowledgePointRepository) FindBySubject(subjectID uint) ([]model.KnowledgePoint, error) {
	var points []model.KnowledgePoint
	err := r.DB.Where("subject_id = ?", subjectID).Order("level, id").Find(&points).Error
	return points, err
}

func (r *KnowledgePointRepository) FindByID(id uint) (*model.KnowledgePoint, error) {
	var point model.KnowledgePoint
	err := r.DB.First(&point, id).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func (r *KnowledgePointRepository) Create(point *model.KnowledgePoint) error {
	return r.DB.Create(point).Error
}
