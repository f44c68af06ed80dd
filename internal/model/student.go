package model

// swagger:model Student
type Student struct {
	BaseModel
	StudentNo      string `gorm:"size:20;unique;not null" json:"studentNo"` // 学号
	Name           string `gorm:"size:50;not null" json:"name"`
	Gender         string `gorm:"size:10" json:"gender"`
	Grade          string `gorm:"size:20" json:"grade"`
	ClassName      string `gorm:"size:20" json:"className"`
	EnrollmentYear int    `json:"enrollmentYear"`
}

func (Student) TableName() string {
	return "students"
}
