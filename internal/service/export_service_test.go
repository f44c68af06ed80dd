package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
)

func TestRenderPaperSectionsAndNumbering(t *testing.T) {
	exam := &model.GeneratedExam{
		TotalScore:  28,
		ActualCount: 3,
		Questions: []model.GeneratedQuestion{
			{Question: model.Question{Type: model.QuestionChoice, Score: 4, Content: "下列说法正确的是？"}, OrderNum: 1},
			{Question: model.Question{Type: model.QuestionChoice, Score: 4, Content: "函数的定义域是？"}, OrderNum: 2},
			{Question: model.Question{Type: model.QuestionShortAnswer, Score: 20, Content: "求数列的通项公式。"}, OrderNum: 3},
		},
	}

	paper := service.RenderPaper(exam, "数学")

	if !strings.HasPrefix(paper, "《数学》智能组卷\n") {
		t.Fatalf("试卷标题不符: %q", paper)
	}
	if !strings.Contains(paper, "总分：28分　题数：3") {
		t.Errorf("汇总行不符:\n%s", paper)
	}

	// 题型切换才开新节，节号用中文数字
	if !strings.Contains(paper, "一、选择题") {
		t.Errorf("缺少选择题分节:\n%s", paper)
	}
	if !strings.Contains(paper, "二、解答题") {
		t.Errorf("缺少解答题分节:\n%s", paper)
	}
	if strings.Count(paper, "选择题") != 1 {
		t.Errorf("同题型不应重复开节:\n%s", paper)
	}

	if !strings.Contains(paper, "1.（4分）下列说法正确的是？") {
		t.Errorf("题目行格式不符:\n%s", paper)
	}
	if !strings.Contains(paper, "3.（20分）求数列的通项公式。") {
		t.Errorf("题目行格式不符:\n%s", paper)
	}
}

func TestRenderPaperFractionalScore(t *testing.T) {
	exam := &model.GeneratedExam{
		TotalScore:  4.5,
		ActualCount: 1,
		Questions: []model.GeneratedQuestion{
			{Question: model.Question{Type: model.QuestionFillIn, Score: 4.5, Content: "填空。"}, OrderNum: 1},
		},
	}

	paper := service.RenderPaper(exam, "语文")

	// 小数分值不带多余的零
	if !strings.Contains(paper, "总分：4.5分") {
		t.Errorf("总分格式不符:\n%s", paper)
	}
	if !strings.Contains(paper, "1.（4.5分）填空。") {
		t.Errorf("分值格式不符:\n%s", paper)
	}
}

func TestRenderPaperEmptyExam(t *testing.T) {
	exam := &model.GeneratedExam{}

	paper := service.RenderPaper(exam, "英语")

	if !strings.Contains(paper, "总分：0分　题数：0") {
		t.Errorf("空卷应输出零值汇总:\n%s", paper)
	}
	if strings.Contains(paper, "、") {
		t.Errorf("空卷不应有分节:\n%s", paper)
	}
}

func TestExportPaperStoresRenderedText(t *testing.T) {
	storage := &fakeStorage{}
	svc := service.NewExportService(storage)

	exam := &model.GeneratedExam{
		TotalScore:  8,
		ActualCount: 2,
		Questions: []model.GeneratedQuestion{
			{Question: model.Question{Type: model.QuestionChoice, Score: 4, Content: "选择一。"}, OrderNum: 1},
			{Question: model.Question{Type: model.QuestionChoice, Score: 4, Content: "选择二。"}, OrderNum: 2},
		},
	}

	url, err := svc.ExportPaper(context.Background(), exam, "物理")
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	if !strings.HasPrefix(storage.objectName, "papers/") || !strings.HasSuffix(storage.objectName, ".txt") {
		t.Errorf("对象名应为 papers/<uuid>.txt: %s", storage.objectName)
	}
	if storage.contentType != "text/plain; charset=utf-8" {
		t.Errorf("contentType = %s", storage.contentType)
	}
	if want := service.RenderPaper(exam, "物理"); string(storage.content) != want {
		t.Errorf("上传内容与渲染结果不一致:\n%s", storage.content)
	}
	if url != "/uploads/"+storage.objectName {
		t.Errorf("应返回存储层给出的地址: %s", url)
	}
}

func TestExportPaperUniqueObjectNames(t *testing.T) {
	storage := &fakeStorage{}
	svc := service.NewExportService(storage)
	exam := &model.GeneratedExam{ActualCount: 0}

	if _, err := svc.ExportPaper(context.Background(), exam, "化学"); err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	first := storage.objectName
	if _, err := svc.ExportPaper(context.Background(), exam, "化学"); err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	if first == storage.objectName {
		t.Errorf("两次导出不应复用对象名: %s", first)
	}
}
