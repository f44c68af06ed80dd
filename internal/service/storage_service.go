package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 保存导出产物（试卷文本等），返回可下载的 URL。
// 导出对象一次写入后不再修改，所以接口只需要 Upload。
type StorageProvider interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// localStorage 把对象写进本地目录，下载由进程的 /uploads 静态路由提供
type localStorage struct {
	root string
}

func (p *localStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.root, objectName)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return "/uploads/" + objectName, nil
}

// minioStorage MinIO 对象存储
type minioStorage struct {
	client *minio.Client
	bucket string
}

func newMinioStorage(cfg *config.StorageConfig) (*minioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &minioStorage{client: client, bucket: cfg.MinioBucket}, nil
}

func (p *minioStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.client.PutObject(ctx, p.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + p.bucket + "/" + objectName, nil
}

// ossStorage 阿里云 OSS
type ossStorage struct {
	client   *oss.Client
	bucket   string
	endpoint string
}

func newOSSStorage(cfg *config.StorageConfig) (*ossStorage, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &ossStorage{client: client, bucket: cfg.OSSBucket, endpoint: cfg.OSSEndpoint}, nil
}

func (p *ossStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	bucket, err := p.client.Bucket(p.bucket)
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(objectName, reader); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", p.bucket, p.endpoint, objectName), nil
}

// StorageService 按配置选择存储提供方，远端初始化失败时退回本地存储
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := newMinioStorage(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("MinIO初始化失败，退回本地存储", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageOSS:
		p, err := newOSSStorage(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("OSS初始化失败，退回本地存储", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &localStorage{root: cfg.Storage.LocalPath}
	}

	return &StorageService{Provider: provider}
}

func (s *StorageService) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Provider.Upload(ctx, objectName, reader, size, contentType)
}
