package controller

import (
	"errors"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"github.com/gin-gonic/gin"
)

// AnalysisController 暴露学情分析的只读接口：掌握情况、薄弱点、练习建议、知识点覆盖
type AnalysisController struct {
	WeaknessService *service.WeaknessAnalysisService
	StudentService  *service.StudentService
}

func NewAnalysisController(weaknessService *service.WeaknessAnalysisService, studentService *service.StudentService) *AnalysisController {
	return &AnalysisController{
		WeaknessService: weaknessService,
		StudentService:  studentService,
	}
}

// 各接口都先确认学生存在，避免把"查无此人"当成"没有数据"返回空结果。
func (c *AnalysisController) requireStudent(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.StudentService.GetStudent(id); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "学生不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return 0, false
	}
	return id, true
}

// GetMastery godoc
// @Summary 知识点掌握情况
// @Description 按作答历史推导学生各知识点的掌握率，可按学科过滤
// @Tags 学情分析
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "学生ID"
// @Param   subjectId query int false "学科ID，0或缺省表示全部"
// @Success 200 {object} util.Response "掌握率映射，键为知识点ID"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/v1/students/{id}/mastery [get]
func (c *AnalysisController) GetMastery(ctx *gin.Context) {
	studentID, ok := c.requireStudent(ctx)
	if !ok {
		return
	}
	subjectID := util.MustParseUint(ctx.Query("subjectId"))

	records, err := c.WeaknessService.Estimate(studentID, subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	answerCount, err := c.StudentService.AnswerCount(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"studentId":   studentID,
		"subjectId":   subjectID,
		"answerCount": answerCount,
		"mastery":     records,
	})
}

// GetWeaknesses godoc
// @Summary 薄弱知识点
// @Description 掌握率低于阈值的知识点，按掌握率从低到高排列
// @Tags 学情分析
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "学生ID"
// @Param   subjectId query int false "学科ID，0或缺省表示全部"
// @Param   threshold query number false "掌握率阈值" default(0.65)
// @Success 200 {object} util.Response{data=[]model.WeaknessPoint} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/v1/students/{id}/weaknesses [get]
func (c *AnalysisController) GetWeaknesses(ctx *gin.Context) {
	studentID, ok := c.requireStudent(ctx)
	if !ok {
		return
	}
	subjectID := util.MustParseUint(ctx.Query("subjectId"))
	threshold := util.ParseFloatOr(ctx.Query("threshold"), service.DefaultWeaknessThreshold)

	weaknesses, err := c.WeaknessService.RankWeaknesses(studentID, subjectID, threshold)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, weaknesses)
}

// GetSuggestions godoc
// @Summary 练习建议
// @Description 针对最薄弱的知识点生成编号的练习建议
// @Tags 学情分析
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "学生ID"
// @Param   subjectId query int false "学科ID，0或缺省表示全部"
// @Param   topN query int false "建议条数" default(5)
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/v1/students/{id}/suggestions [get]
func (c *AnalysisController) GetSuggestions(ctx *gin.Context) {
	studentID, ok := c.requireStudent(ctx)
	if !ok {
		return
	}
	subjectID := util.MustParseUint(ctx.Query("subjectId"))
	topN := util.ParseIntOr(ctx.Query("topN"), service.DefaultSuggestionCount)

	suggestions, err := c.WeaknessService.ImprovementSuggestions(studentID, subjectID, topN)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, suggestions)
}

// GetCoverage godoc
// @Summary 知识点覆盖
// @Description 学生练习过的知识点占学科全部知识点的比例，附未练习清单
// @Tags 学情分析
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "学生ID"
// @Param   subjectId query int true "学科ID"
// @Success 200 {object} util.Response{data=model.SubjectCoverage} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/v1/students/{id}/coverage [get]
func (c *AnalysisController) GetCoverage(ctx *gin.Context) {
	studentID, ok := c.requireStudent(ctx)
	if !ok {
		return
	}
	subjectID := util.MustParseUint(ctx.Query("subjectId"))

	coverage, err := c.WeaknessService.Coverage(studentID, subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, coverage)
}
