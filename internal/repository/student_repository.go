package repository

import (
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByStudentNo(studentNo string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("student_no = ?", studentNo).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindWithPagination 按年级/班级分页列出学生
func (r *StudentRepository) FindWithPagination(grade, className string, page, limit int) ([]model.Student, int64, error) {
	query := r.DB.Model(&model.Student{})
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if className != "" {
		query = query.Where("class_name = ?", className)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []model.Student
	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("student_no").Find(&students).Error
	return students, total, err
}
