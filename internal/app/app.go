package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/controller"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/database"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/logger"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/monitoring"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/security"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	student  *repository.StudentRepository
	subject  *repository.SubjectRepository
	point    *repository.KnowledgePointRepository
	question *repository.QuestionRepository
	exam     *repository.ExamRepository
	answer   *repository.AnswerRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	storage   *service.StorageService
	student   *service.StudentService
	subject   *service.SubjectService
	question  *service.QuestionService
	weakness  *service.WeaknessAnalysisService
	generator *service.ExamGeneratorService
	exam      *service.ExamService
	export    *service.ExportService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	student  *controller.StudentController
	subject  *controller.SubjectController
	question *controller.QuestionController
	exam     *controller.ExamController
	analysis *controller.AnalysisController
	health   *controller.HealthController
}

// RegisterConfigCallback 注册配置热更新回调
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件变化时由监听器调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		student:  repository.NewStudentRepository(db),
		subject:  repository.NewSubjectRepository(db),
		point:    repository.NewKnowledgePointRepository(db),
		question: repository.NewQuestionRepository(db),
		exam:     repository.NewExamRepository(db),
		answer:   repository.NewAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.student = service.NewStudentService(repos.student, repos.answer)
	s.subject = service.NewSubjectService(repos.subject, repos.point, rdb)
	s.question = service.NewQuestionService(repos.question, repos.point, s.subject)

	s.weakness = service.NewWeaknessAnalysisService(repos.answer, repos.point, repos.subject)
	// 生产环境使用时钟熵源，保证同一学生两次组卷选题不同
	s.generator = service.NewExamGeneratorService(s.weakness, repos.question, repos.point, nil)
	s.exam = service.NewExamService(repos.exam, repos.answer, repos.student)
	s.export = service.NewExportService(s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		student:  controller.NewStudentController(s.student),
		subject:  controller.NewSubjectController(s.subject),
		question: controller.NewQuestionController(s.question),
		exam:     controller.NewExamController(s.exam, s.generator, s.export, s.student, s.subject),
		analysis: controller.NewAnalysisController(s.weakness, s.student),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只承担学科目录缓存，连不上时降级为直查数据库
		logger.Log.Warn("Redis unavailable, subject cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("career-planner", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	// 本地存储时直接由进程提供导出文件下载
	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("Server exiting")
	logger.Log.Sync()
}
