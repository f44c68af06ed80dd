package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name     string `gorm:"size:50;unique;not null" json:"name"`
	Category string `gorm:"size:20" json:"category"` // 综合 / 理科 / 文科
	IsCore   bool   `gorm:"default:false" json:"isCore"`
}

func (Subject) TableName() string {
	return "subjects"
}
