package database

import (
	"fmt"
	"log"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	if cfg.MaxIdleConns > 0 || cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Subject{},
		&model.KnowledgePoint{},
		&model.Question{},
		&model.QuestionKnowledge{},
		&model.Exam{},
		&model.ExamQuestion{},
		&model.ExamScore{},
		&model.StudentAnswer{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 九门学科的基础目录，库为空时写入
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count == 0 {
		defaultSubjects := []model.Subject{
			{Name: "语文", Category: "综合", IsCore: true},
			{Name: "数学", Category: "综合", IsCore: true},
			{Name: "英语", Category: "综合", IsCore: true},
			{Name: "物理", Category: "理科", IsCore: false},
			{Name: "化学", Category: "理科", IsCore: false},
			{Name: "生物", Category: "理科", IsCore: false},
			{Name: "政治", Category: "文科", IsCore: false},
			{Name: "历史", Category: "文科", IsCore: false},
			{Name: "地理", Category: "文科", IsCore: false},
		}
		for _, subject := range defaultSubjects {
			db.Create(&subject)
		}
	}

	return db, nil
}
