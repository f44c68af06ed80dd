package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/service"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"
)

func TestStorageServiceLocalUpload(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = root

	svc := service.NewStorageService(cfg)

	content := "《数学》智能组卷\n"
	url, err := svc.Upload(context.Background(), "papers/demo.txt",
		strings.NewReader(content), int64(len(content)), util.MimeTextPlain)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if url != "/uploads/papers/demo.txt" {
		t.Errorf("url = %q, want /uploads/papers/demo.txt", url)
	}

	// 对象应写入本地目录，子目录自动创建
	data, err := os.ReadFile(filepath.Join(root, "papers", "demo.txt"))
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if string(data) != content {
		t.Errorf("落盘内容 = %q, want %q", data, content)
	}
}

// 未配置存储类型时退回本地存储，不报错
func TestStorageServiceDefaultsToLocal(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.LocalPath = root

	svc := service.NewStorageService(cfg)

	url, err := svc.Upload(context.Background(), "papers/fallback.txt",
		strings.NewReader("x"), 1, util.MimeTextPlain)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("默认应走本地存储, url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(root, "papers", "fallback.txt")); err != nil {
		t.Errorf("文件未落盘: %v", err)
	}
}
