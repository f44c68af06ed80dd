package controller

import (
	"errors"
	"strconv"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// swagger:model CreateQuestionRequest
type CreateQuestionRequest struct {
	SubjectID       uint                            `json:"subjectId" binding:"required"`
	Type            string                          `json:"type" binding:"required,oneof=choice multi_choice fill_in short_answer essay"`
	Content         string                          `json:"content" binding:"required"`
	Answer          string                          `json:"answer"`
	Analysis        string                          `json:"analysis"`
	Difficulty      float64                         `json:"difficulty"`
	Score           float64                         `json:"score" binding:"required"`
	KnowledgePoints []service.QuestionKnowledgeLink `json:"knowledgePoints"`
}

// CreateQuestion godoc
// @Summary 录入题目
// @Description 新建题目并挂接知识点，分值必须为正、难度在0到1之间
// @Tags 题库
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateQuestionRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.Question} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "学科或知识点不存在"
// @Router /api/v1/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.Question{
		SubjectID:  req.SubjectID,
		Type:       model.QuestionType(req.Type),
		Content:    req.Content,
		Answer:     req.Answer,
		Analysis:   req.Analysis,
		Difficulty: req.Difficulty,
		Score:      req.Score,
	}

	if err := c.QuestionService.CreateQuestion(question, req.KnowledgePoints); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidScore), errors.Is(err, util.ErrInvalidDifficulty),
			errors.Is(err, util.ErrPointSubjectMismatch):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrSubjectNotFound):
			util.NotFound(ctx, "学科不存在")
		case errors.Is(err, util.ErrPointNotFound):
			util.NotFound(ctx, "知识点不存在")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, question)
}

// GetQuestion godoc
// @Summary 题目详情
// @Description 返回题目及其知识点关联
// @Tags 题库
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Question} "成功"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/v1/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.QuestionService.GetQuestion(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "题目不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}

// ListQuestions godoc
// @Summary 题目列表
// @Description 按学科/题型筛选，分页返回
// @Tags 题库
// @Produce  json
// @Security ApiKeyAuth
// @Param   subjectId query int false "学科ID"
// @Param   type query string false "题型"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/v1/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	subjectID := util.MustParseUint(ctx.Query("subjectId"))
	qType := model.QuestionType(ctx.Query("type"))

	questions, total, err := c.QuestionService.ListQuestions(subjectID, qType, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  questions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
