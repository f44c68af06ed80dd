package app

import (
	"github.com/fredricklemon581-lang/StudentCareerPlanner/docs"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/middleware"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api/v1")

	// 公共路由（无需登录）
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/auth/register", c.auth.Register)
		api.POST("/auth/login", c.auth.Login)
	}

	// 需要登录的路由
	authGroup := api.Group("")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 学科与知识点
		authGroup.GET("/subjects", c.subject.ListSubjects)
		authGroup.GET("/subjects/:id/knowledge-points", c.subject.ListKnowledgePoints)

		// 学情分析
		authGroup.GET("/students/:id/mastery", c.analysis.GetMastery)
		authGroup.GET("/students/:id/weaknesses", c.analysis.GetWeaknesses)
		authGroup.GET("/students/:id/suggestions", c.analysis.GetSuggestions)
		authGroup.GET("/students/:id/coverage", c.analysis.GetCoverage)

		// 智能组卷
		authGroup.POST("/exams/generate", c.exam.GenerateExam)
		authGroup.GET("/exams/:id", c.exam.GetExam)
		authGroup.GET("/exams/:id/statistics", c.exam.GetStatistics)

		// 教师接口
		teacher := authGroup.Group("")
		teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
		{
			teacher.POST("/students", c.student.CreateStudent)
			teacher.GET("/students", c.student.ListStudents)

			teacher.POST("/questions", c.question.CreateQuestion)
			teacher.GET("/questions", c.question.ListQuestions)
			teacher.GET("/questions/:id", c.question.GetQuestion)

			teacher.POST("/knowledge-points", c.subject.CreateKnowledgePoint)

			teacher.POST("/exams", c.exam.CreateExam)
			teacher.GET("/exams", c.exam.ListExams)
			teacher.POST("/exams/:id/answers", c.exam.RecordAnswers)
			teacher.POST("/exams/export", c.exam.ExportExam)
		}

		// 管理员接口
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
		{
			admin.GET("/users", c.user.GetUsers)
		}
	}
}
