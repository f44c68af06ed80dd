package model

// DifficultyLevel 组卷的整体难度档位
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// TemplateEntry 试卷模板中的一组同型题：题型、题数、每题分值
type TemplateEntry struct {
	Type  QuestionType `json:"type"`
	Count int          `json:"count"`
	Score float64      `json:"score"`
}

// ExamTemplate 按序排列的模板条目，组卷按条目顺序逐槽选题
type ExamTemplate []TemplateEntry

// TotalScore 模板的理论总分
func (t ExamTemplate) TotalScore() float64 {
	var total float64
	for _, e := range t {
		total += float64(e.Count) * e.Score
	}
	return total
}

// GeneratedQuestion 选入试卷的题目及其命中薄弱点标记
type GeneratedQuestion struct {
	Question
	OrderNum    int  `json:"orderNum"`
	IsWeakPoint bool `json:"isWeakPoint"`
}

// DifficultyStats 试卷难度分布：<0.4 / [0.4,0.7) / >=0.7 三档
type DifficultyStats struct {
	Easy    int     `json:"easy"`
	Medium  int     `json:"medium"`
	Hard    int     `json:"hard"`
	Average float64 `json:"average"`
}

// WeaknessCoverage 薄弱知识点被试卷覆盖的情况
type WeaknessCoverage struct {
	Covered int     `json:"covered"`
	Total   int     `json:"total"`
	Rate    float64 `json:"rate"`
}

// GeneratedExam 组卷结果。选题为尽力而为：实际总分可偏离目标总分，
// 题库不足时题数少于模板槽位数，这些都通过统计与建议如实上报而非报错。
type GeneratedExam struct {
	StudentID          uint                `json:"studentId"`
	SubjectID          uint                `json:"subjectId"`
	Questions          []GeneratedQuestion `json:"questions"`
	TotalScore         float64             `json:"totalScore"` // 实际总分
	ActualCount        int                 `json:"actualCount"`
	DifficultyStats    DifficultyStats     `json:"difficultyStats"`
	WeaknessCoverage   WeaknessCoverage    `json:"weaknessCoverage"`
	Recommendations    []string            `json:"recommendations"`
	WeaknessesAnalyzed []WeaknessPoint     `json:"weaknessesAnalyzed"`
}
