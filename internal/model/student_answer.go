package model

// StudentAnswer 学生作答记录，判分后不再修改，仅供分析读取
type StudentAnswer struct {
	BaseModel
	StudentID     uint    `gorm:"not null;uniqueIndex:idx_student_exam_question" json:"studentId"`
	ExamID        uint    `gorm:"not null;uniqueIndex:idx_student_exam_question" json:"examId"`
	QuestionID    uint    `gorm:"not null;uniqueIndex:idx_student_exam_question" json:"questionId"`
	AnswerText    string  `gorm:"type:text" json:"answerText"`
	ScoreObtained float64 `json:"scoreObtained"`
	IsCorrect     bool    `gorm:"index" json:"isCorrect"`
}

func (StudentAnswer) TableName() string {
	return "student_answers"
}
