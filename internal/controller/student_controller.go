package controller

import (
	"errors"
	"strconv"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

// swagger:model CreateStudentRequest
type CreateStudentRequest struct {
	StudentNo      string `json:"studentNo" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Gender         string `json:"gender"`
	Grade          string `json:"grade"`
	ClassName      string `json:"className"`
	EnrollmentYear int    `json:"enrollmentYear"`
}

// CreateStudent godoc
// @Summary 登记学生
// @Description 创建学籍记录，学号全局唯一
// @Tags 学生
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateStudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.Student} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "学号已存在"
// @Router /api/v1/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student := &model.Student{
		StudentNo:      req.StudentNo,
		Name:           req.Name,
		Gender:         req.Gender,
		Grade:          req.Grade,
		ClassName:      req.ClassName,
		EnrollmentYear: req.EnrollmentYear,
	}

	if err := c.StudentService.CreateStudent(student); err != nil {
		if errors.Is(err, util.ErrStudentExists) {
			util.Error(ctx, 409, "该学号已存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, student)
}

// ListStudents godoc
// @Summary 学生列表
// @Description 按年级/班级筛选，分页返回
// @Tags 学生
// @Produce  json
// @Security ApiKeyAuth
// @Param   grade query string false "年级"
// @Param   class query string false "班级"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/v1/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	grade := ctx.Query("grade")
	className := ctx.Query("class")

	students, total, err := c.StudentService.ListStudents(grade, className, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  students,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
