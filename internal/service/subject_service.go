package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	subjectCacheKey      = "subjects:all"
	subjectPointsKeyFmt  = "subject:%d:kps"
	subjectCacheDuration = 10 * time.Minute
)

// SubjectService 学科与知识点目录。目录近乎静态，读多写少，
// 列表走 Redis 旁路缓存；掌握度等分析结果从不缓存。
type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
	PointRepo   *repository.KnowledgePointRepository
	Redis       *redis.Client
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, pointRepo *repository.KnowledgePointRepository, rdb *redis.Client) *SubjectService {
	return &SubjectService{
		SubjectRepo: subjectRepo,
		PointRepo:   pointRepo,
		Redis:       rdb,
	}
}

// ListSubjects 缓存未命中或 Redis 不可用时回源数据库
func (s *SubjectService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, subjectCacheKey).Result()
		if err == nil {
			var subjects []model.Subject
			if err := json.Unmarshal([]byte(val), &subjects); err == nil {
				return subjects, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("学科缓存读取失败，回源数据库", zap.Error(err))
		}
	}

	subjects, err := s.SubjectRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(subjects); err == nil {
			s.Redis.Set(ctx, subjectCacheKey, payload, subjectCacheDuration)
		}
	}
	return subjects, nil
}

func (s *SubjectService) GetSubject(id uint) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}
	return subject, nil
}

// ListKnowledgePoints 某学科的知识点目录，同样走旁路缓存
func (s *SubjectService) ListKnowledgePoints(ctx context.Context, subjectID uint) ([]model.KnowledgePoint, error) {
	if _, err := s.GetSubject(subjectID); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(subjectPointsKeyFmt, subjectID)
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var points []model.KnowledgePoint
			if err := json.Unmarshal([]byte(val), &points); err == nil {
				return points, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("知识点缓存读取失败，回源数据库", zap.Error(err))
		}
	}

	points, err := s.PointRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(points); err == nil {
			s.Redis.Set(ctx, cacheKey, payload, subjectCacheDuration)
		}
	}
	return points, nil
}

// CreateKnowledgePoint 写入后失效对应学科的目录缓存
func (s *SubjectService) CreateKnowledgePoint(ctx context.Context, point *model.KnowledgePoint) error {
	if _, err := s.GetSubject(point.SubjectID); err != nil {
		return err
	}

	if err := s.PointRepo.Create(point); err != nil {
		return err
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, fmt.Sprintf(subjectPointsKeyFmt, point.SubjectID))
	}
	return nil
}
