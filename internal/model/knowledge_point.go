package model

// swagger:model KnowledgePoint
type KnowledgePoint struct {
	BaseModel
	SubjectID   uint   `gorm:"index;not null" json:"subjectId"`
	Name        string `gorm:"size:100;not null" json:"name"`
	ParentID    *uint  `gorm:"index" json:"parentId,omitempty"` // 上级知识点，可为空
	Level       int    `gorm:"default:1" json:"level"`
	Description string `gorm:"type:text" json:"description"`
}

func (KnowledgePoint) TableName() string {
	return "knowledge_points"
}
