package model

import "time"

type QuestionType string

const (
	QuestionChoice      QuestionType = "choice"
	QuestionMultiChoice QuestionType = "multi_choice"
	QuestionFillIn      QuestionType = "fill_in"
	QuestionShortAnswer QuestionType = "short_answer"
	QuestionEssay       QuestionType = "essay"
)

// DisplayName 题型中文名，用于试卷导出
func (t QuestionType) DisplayName() string {
	switch t {
	case QuestionChoice:
		return "选择题"
	case QuestionMultiChoice:
		return "多选题"
	case QuestionFillIn:
		return "填空题"
	case QuestionShortAnswer:
		return "解答题"
	case QuestionEssay:
		return "作文"
	default:
		return string(t)
	}
}

// swagger:model Question
type Question struct {
	BaseModel
	SubjectID       uint             `gorm:"index;not null" json:"subjectId"`
	Type            QuestionType     `gorm:"size:20;not null" json:"type"`
	Content         string           `gorm:"type:text;not null" json:"content"`
	Answer          string           `gorm:"type:text" json:"answer"`
	Analysis        string           `gorm:"type:text" json:"analysis"`
	Difficulty      float64          `gorm:"default:0.5" json:"difficulty"` // 0~1
	Score           float64          `gorm:"default:5" json:"score"`
	KnowledgePoints []KnowledgePoint `gorm:"many2many:question_knowledge;joinForeignKey:QuestionID;joinReferences:KnowledgePointID" json:"knowledgePoints,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionKnowledge 题目与知识点的带权关联
type QuestionKnowledge struct {
	QuestionID       uint      `gorm:"primaryKey" json:"questionId"`
	KnowledgePointID uint      `gorm:"primaryKey" json:"knowledgePointId"`
	Weight           float64   `gorm:"default:1" json:"weight"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (QuestionKnowledge) TableName() string {
	return "question_knowledge"
}
