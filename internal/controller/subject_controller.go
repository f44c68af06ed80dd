package controller

import (
	"errors"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// ListSubjects godoc
// @Summary 学科列表
// @Description 返回全部学科目录
// @Tags 学科
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Subject} "成功"
// @Router /api/v1/subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.SubjectService.ListSubjects(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// ListKnowledgePoints godoc
// @Summary 学科知识点目录
// @Description 返回某学科的全部知识点
// @Tags 学科
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "学科ID"
// @Success 200 {object} util.Response{data=[]model.KnowledgePoint} "成功"
// @Failure 404 {object} util.Response "学科不存在"
// @Router /api/v1/subjects/{id}/knowledge-points [get]
func (c *SubjectController) ListKnowledgePoints(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("id"))

	points, err := c.SubjectService.ListKnowledgePoints(ctx.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, "学科不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, points)
}

// swagger:model CreateKnowledgePointRequest
type CreateKnowledgePointRequest struct {
	SubjectID   uint   `json:"subjectId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ParentID    *uint  `json:"parentId"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// CreateKnowledgePoint godoc
// @Summary 新建知识点
// @Description 在某学科下登记知识点
// @Tags 学科
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateKnowledgePointRequest true "知识点信息"
// @Success 201 {object} util.Response{data=model.KnowledgePoint} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "学科不存在"
// @Router /api/v1/knowledge-points [post]
func (c *SubjectController) CreateKnowledgePoint(ctx *gin.Context) {
	var req CreateKnowledgePointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level := req.Level
	if level <= 0 {
		level = 1
	}
	point := &model.KnowledgePoint{
		SubjectID:   req.SubjectID,
		Name:        req.Name,
		ParentID:    req.ParentID,
		Level:       level,
		Description: req.Description,
	}

	if err := c.SubjectService.CreateKnowledgePoint(ctx.Request.Context(), point); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, "学科不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, point)
}
