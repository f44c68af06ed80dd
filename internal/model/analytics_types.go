package model

// MasteryRecord 单个知识点的掌握情况，按需从作答历史推导，不落库
type MasteryRecord struct {
	TotalAttempts   int     `json:"totalAttempts"`
	CorrectAttempts int     `json:"correctAttempts"`
	MasteryRate     float64 `json:"masteryRate"` // correct / total
}

// WeaknessPoint 薄弱知识点及其掌握数据
type WeaknessPoint struct {
	KnowledgePointID   uint    `json:"knowledgePointId"`
	KnowledgePointName string  `json:"knowledgePointName"`
	SubjectID          uint    `json:"subjectId"`
	SubjectName        string  `json:"subjectName"`
	Level              int     `json:"level"`
	TotalAttempts      int     `json:"totalAttempts"`
	CorrectAttempts    int     `json:"correctAttempts"`
	MasteryRate        float64 `json:"masteryRate"`
}

// SubjectCoverage 某科目知识点的练习覆盖情况
type SubjectCoverage struct {
	SubjectID    uint             `json:"subjectId"`
	Total        int              `json:"total"`
	Attempted    int              `json:"attempted"`
	CoverageRate float64          `json:"coverageRate"`
	Unattempted  []KnowledgePoint `json:"unattempted,omitempty"`
}

// ExamStatistics 单场考试的成绩汇总
type ExamStatistics struct {
	ExamID       uint    `json:"examId"`
	Participants int     `json:"participants"`
	AverageScore float64 `json:"averageScore"`
	MaxScore     float64 `json:"maxScore"`
	MinScore     float64 `json:"minScore"`
	AverageRate  float64 `json:"averageRate"` // 平均得分率
}
