package repository

import (
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// GetAllByStudent 学生的全部作答历史，掌握度推导的唯一数据来源
func (r *AnswerRepository) GetAllByStudent(studentID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.DB.Where("student_id = ?", studentID).Order("id").Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) BatchCreate(answers []model.StudentAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.DB.Create(&answers).Error
}

// ExistsForExam 该学生在该考试下是否已有作答记录
func (r *AnswerRepository) ExistsForExam(studentID, examID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.StudentAnswer{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&count).Error
	return count > 0, err
}

func (r *AnswerRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentAnswer{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}
