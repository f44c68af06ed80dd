package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService      *service.ExamService
	GeneratorService *service.ExamGeneratorService
	ExportService    *service.ExportService
	StudentService   *service.StudentService
	SubjectService   *service.SubjectService
}

func NewExamController(
	examService *service.ExamService,
	generatorService *service.ExamGeneratorService,
	exportService *service.ExportService,
	studentService *service.StudentService,
	subjectService *service.SubjectService,
) *ExamController {
	return &ExamController{
		ExamService:      examService,
		GeneratorService: generatorService,
		ExportService:    exportService,
		StudentService:   studentService,
		SubjectService:   subjectService,
	}
}

// swagger:model GenerateExamRequest
type GenerateExamRequest struct {
	StudentID         uint                  `json:"studentId" binding:"required"`
	SubjectID         uint                  `json:"subjectId" binding:"required"`
	TotalScore        float64               `json:"totalScore"`
	FocusOnWeaknesses *bool                 `json:"focusOnWeaknesses"`
	DifficultyLevel   string                `json:"difficultyLevel" binding:"omitempty,oneof=easy medium hard"`
	Template          []model.TemplateEntry `json:"template"`
	Save              bool                  `json:"save"`
	Name              string                `json:"name"`
}

// GenerateExam godoc
// @Summary 智能组卷
// @Description 基于学生薄弱知识点生成针对性试卷，可选择落库保存
// @Tags 组卷
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body GenerateExamRequest true "组卷参数"
// @Success 200 {object} util.Response{data=model.GeneratedExam} "组卷结果"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "学生或学科不存在"
// @Router /api/v1/exams/generate [post]
func (c *ExamController) GenerateExam(ctx *gin.Context) {
	var req GenerateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.StudentService.GetStudent(req.StudentID); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "学生不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	subject, err := c.SubjectService.GetSubject(req.SubjectID)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, "学科不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	totalScore := req.TotalScore
	if totalScore <= 0 {
		totalScore = 150
	}
	focus := true
	if req.FocusOnWeaknesses != nil {
		focus = *req.FocusOnWeaknesses
	}
	level := model.DifficultyLevel(req.DifficultyLevel)
	if level == "" {
		level = model.DifficultyMedium
	}

	generated, err := c.GeneratorService.GenerateExam(service.GenerateExamRequest{
		StudentID:         req.StudentID,
		SubjectID:         req.SubjectID,
		TotalScore:        totalScore,
		FocusOnWeaknesses: focus,
		DifficultyLevel:   level,
		Template:          model.ExamTemplate(req.Template),
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.ExamsGenerated.WithLabelValues(subject.Name).Inc()
	monitoring.ExamQuestionCount.Observe(float64(generated.ActualCount))

	if req.Save && generated.ActualCount > 0 {
		exam, err := c.ExamService.SaveGeneratedExam(generated, req.Name)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"exam": exam, "generated": generated})
		return
	}

	util.Success(ctx, generated)
}

// swagger:model CreateExamRequest
type CreateExamRequest struct {
	Name            string  `json:"name" binding:"required"`
	SubjectID       uint    `json:"subjectId" binding:"required"`
	ExamType        string  `json:"examType"`
	ExamDate        string  `json:"examDate"` // 格式 2006-01-02
	TotalScore      float64 `json:"totalScore"`
	GradeScope      string  `json:"gradeScope"`
	DifficultyLevel string  `json:"difficultyLevel"`
	QuestionIDs     []uint  `json:"questionIds"`
}

// CreateExam godoc
// @Summary 手动创建试卷
// @Description 教师按题目ID列表直接创建试卷
// @Tags 组卷
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateExamRequest true "试卷信息"
// @Success 201 {object} util.Response{data=model.Exam} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam := &model.Exam{
		Name:            req.Name,
		SubjectID:       req.SubjectID,
		ExamType:        req.ExamType,
		TotalScore:      req.TotalScore,
		GradeScope:      req.GradeScope,
		DifficultyLevel: req.DifficultyLevel,
	}
	if req.ExamDate != "" {
		date, err := time.Parse(util.DateFormat, req.ExamDate)
		if err != nil {
			util.BadRequest(ctx, "examDate 格式应为 "+util.DateFormat)
			return
		}
		exam.ExamDate = &date
	}
	if err := c.ExamService.CreateExam(exam, req.QuestionIDs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, exam)
}

// GetExam godoc
// @Summary 试卷详情
// @Description 返回试卷信息和按序排列的题目列表
// @Tags 组卷
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "试卷ID"
// @Success 200 {object} util.Response{data=service.ExamDetail} "成功"
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /api/v1/exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	detail, err := c.ExamService.GetExam(id)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx, "试卷不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// ListExams godoc
// @Summary 试卷列表
// @Description 按学科筛选，分页返回
// @Tags 组卷
// @Produce  json
// @Security ApiKeyAuth
// @Param   subjectId query int false "学科ID"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/v1/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	subjectID := util.MustParseUint(ctx.Query("subjectId"))

	exams, total, err := c.ExamService.ListExams(subjectID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  exams,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// swagger:model RecordAnswersRequest
type RecordAnswersRequest struct {
	StudentID uint                       `json:"studentId" binding:"required"`
	Answers   []service.AnswerSubmission `json:"answers" binding:"required,min=1,dive"`
}

// RecordAnswers godoc
// @Summary 录入答题记录
// @Description 批量提交某学生在一场考试中的作答，并汇总成绩
// @Tags 组卷
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "试卷ID"
// @Param   body body RecordAnswersRequest true "作答记录"
// @Success 201 {object} util.Response{data=model.ExamScore} "录入成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "试卷或学生不存在"
// @Failure 409 {object} util.Response "该学生已有本场考试的作答记录"
// @Router /api/v1/exams/{id}/answers [post]
func (c *ExamController) RecordAnswers(ctx *gin.Context) {
	examID := util.MustParseUint(ctx.Param("id"))

	var req RecordAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.ExamService.RecordAnswers(examID, req.StudentID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExamNotFound):
			util.NotFound(ctx, "试卷不存在")
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx, "学生不存在")
		case errors.Is(err, util.ErrAnswerRecorded):
			util.Error(ctx, 409, "该学生已有本场考试的作答记录")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, score)
}

// GetStatistics godoc
// @Summary 考试统计
// @Description 返回一场考试的参考人数、平均分、最高最低分与平均得分率
// @Tags 组卷
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "试卷ID"
// @Success 200 {object} util.Response{data=model.ExamStatistics} "成功"
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /api/v1/exams/{id}/statistics [get]
func (c *ExamController) GetStatistics(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	stats, err := c.ExamService.Statistics(id)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx, "试卷不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, stats)
}

// swagger:model ExportExamRequest
type ExportExamRequest struct {
	StudentID         uint                  `json:"studentId" binding:"required"`
	SubjectID         uint                  `json:"subjectId" binding:"required"`
	TotalScore        float64               `json:"totalScore"`
	DifficultyLevel   string                `json:"difficultyLevel" binding:"omitempty,oneof=easy medium hard"`
	FocusOnWeaknesses *bool                 `json:"focusOnWeaknesses"`
	Template          []model.TemplateEntry `json:"template"`
}

// ExportExam godoc
// @Summary 导出试卷
// @Description 生成试卷并渲染为文本存入对象存储，返回下载地址
// @Tags 组卷
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ExportExamRequest true "组卷参数"
// @Success 200 {object} util.Response "导出成功，data.url 为下载地址"
// @Failure 404 {object} util.Response "学生或学科不存在"
// @Router /api/v1/exams/export [post]
func (c *ExamController) ExportExam(ctx *gin.Context) {
	var req ExportExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.StudentService.GetStudent(req.StudentID); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "学生不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	subject, err := c.SubjectService.GetSubject(req.SubjectID)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, "学科不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	totalScore := req.TotalScore
	if totalScore <= 0 {
		totalScore = 150
	}
	focus := true
	if req.FocusOnWeaknesses != nil {
		focus = *req.FocusOnWeaknesses
	}
	level := model.DifficultyLevel(req.DifficultyLevel)
	if level == "" {
		level = model.DifficultyMedium
	}

	generated, err := c.GeneratorService.GenerateExam(service.GenerateExamRequest{
		StudentID:         req.StudentID,
		SubjectID:         req.SubjectID,
		TotalScore:        totalScore,
		FocusOnWeaknesses: focus,
		DifficultyLevel:   level,
		Template:          model.ExamTemplate(req.Template),
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.ExamsGenerated.WithLabelValues(subject.Name).Inc()
	monitoring.ExamQuestionCount.Observe(float64(generated.ActualCount))

	url, err := c.ExportService.ExportPaper(ctx.Request.Context(), generated, subject.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"url":             url,
		"actualCount":     generated.ActualCount,
		"totalScore":      generated.TotalScore,
		"recommendations": generated.Recommendations,
	})
}
