// @title 学生职业规划后端 API
// @version 1.0
// @description 学生考试表现追踪与智能组卷服务。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/app"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/configwatcher"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 配置热更新：目前只动态调整日志级别
	application.RegisterConfigCallback(func(updated *config.Config) {
		logger.SetLevel(updated.Logging.Level)
	})
	go configwatcher.WatchConfig(*configDir+"/config.yaml", func(raw interface{}) {
		if updated, ok := raw.(*config.Config); ok {
			application.ApplyConfig(updated)
		}
	})

	application.Run()
}
