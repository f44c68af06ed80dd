package service

import (
	"errors"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"gorm.io/gorm"
)

// StudentService 学籍管理
type StudentService struct {
	StudentRepo *repository.StudentRepository
	AnswerRepo  *repository.AnswerRepository
}

func NewStudentService(studentRepo *repository.StudentRepository, answerRepo *repository.AnswerRepository) *StudentService {
	return &StudentService{
		StudentRepo: studentRepo,
		AnswerRepo:  answerRepo,
	}
}

// CreateStudent 学号全局唯一
func (s *StudentService) CreateStudent(student *model.Student) error {
	_, err := s.StudentRepo.FindByStudentNo(student.StudentNo)
	if err == nil {
		return util.ErrStudentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.StudentRepo.Create(student)
}

func (s *StudentService) GetStudent(id uint) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) ListStudents(grade, className string, page, limit int) ([]model.Student, int64, error) {
	return s.StudentRepo.FindWithPagination(grade, className, page, limit)
}

// AnswerCount 学生累计作答数，用于档案页展示
func (s *StudentService) AnswerCount(studentID uint) (int64, error) {
	return s.AnswerRepo.CountByStudent(studentID)
}
