package model

import "time"

// swagger:model Exam
type Exam struct {
	BaseModel
	Name            string     `gorm:"size:100;not null" json:"name"`
	SubjectID       uint       `gorm:"index;not null" json:"subjectId"`
	ExamType        string     `gorm:"size:20" json:"examType"` // 月考 / 期中 / 期末 / 模拟
	ExamDate        *time.Time `json:"examDate,omitempty"`
	TotalScore      float64    `gorm:"default:100" json:"totalScore"`
	GradeScope      string     `gorm:"size:20" json:"gradeScope"`
	DifficultyLevel string     `gorm:"size:10" json:"difficultyLevel"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamQuestion 试卷中的题目及其序号
type ExamQuestion struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ExamID     uint `gorm:"index;not null;uniqueIndex:idx_exam_question" json:"examId"`
	QuestionID uint `gorm:"not null;uniqueIndex:idx_exam_question" json:"questionId"`
	OrderNum   int  `gorm:"default:0" json:"orderNum"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}

// swagger:model ExamScore
type ExamScore struct {
	BaseModel
	ExamID      uint    `gorm:"not null;uniqueIndex:idx_exam_student" json:"examId"`
	StudentID   uint    `gorm:"not null;uniqueIndex:idx_exam_student" json:"studentId"`
	Score       float64 `gorm:"not null" json:"score"`
	RankInClass *int    `json:"rankInClass,omitempty"`
	RankInGrade *int    `json:"rankInGrade,omitempty"`
	ScoreRate   float64 `json:"scoreRate"` // 得分率 0~1
}

func (ExamScore) TableName() string {
	return "exam_scores"
}
