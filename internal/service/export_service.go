package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"github.com/google/uuid"
)

var sectionNumerals = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}

// RenderPaper 把组卷结果排成可打印的纯文本试卷：按题型分节，
// 每题一行，格式为 题号.（分值）题干。
func RenderPaper(exam *model.GeneratedExam, subjectName string) string {
	var b strings.Builder

	b.WriteString("《" + subjectName + "》智能组卷\n")
	b.WriteString("总分：" + formatScore(exam.TotalScore) + "分　题数：" + strconv.Itoa(exam.ActualCount) + "\n")

	section := 0
	var lastType model.QuestionType
	for _, q := range exam.Questions {
		if q.Type != lastType {
			numeral := strconv.Itoa(section + 1)
			if section < len(sectionNumerals) {
				numeral = sectionNumerals[section]
			}
			b.WriteString("\n" + numeral + "、" + q.Type.DisplayName() + "\n")
			section++
			lastType = q.Type
		}
		b.WriteString(strconv.Itoa(q.OrderNum) + ".（" + formatScore(q.Score) + "分）" + q.Content + "\n")
	}

	return b.String()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportService 试卷导出：渲染为文本后写入已配置的对象存储
type ExportService struct {
	Storage StorageProvider
}

func NewExportService(storage StorageProvider) *ExportService {
	return &ExportService{Storage: storage}
}

// ExportPaper 对象名用 uuid，避免并发导出互相覆盖；返回可访问的 URL
func (s *ExportService) ExportPaper(ctx context.Context, exam *model.GeneratedExam, subjectName string) (string, error) {
	content := RenderPaper(exam, subjectName)
	objectName := "papers/" + uuid.New().String() + ".txt"

	return s.Storage.Upload(ctx, objectName, strings.NewReader(content), int64(len(content)), util.MimeTextPlain)
}
