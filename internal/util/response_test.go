package util_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// writeAndDecode 在测试上下文中执行响应写入并解码统一响应体
func writeAndDecode(t *testing.T, write func(*gin.Context)) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	write(c)

	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法JSON: %v\n%s", err, w.Body.String())
	}
	return w, resp
}

func TestSuccessEnvelope(t *testing.T) {
	w, resp := writeAndDecode(t, func(c *gin.Context) {
		util.Success(c, gin.H{"count": 3})
	})

	if w.Code != http.StatusOK {
		t.Errorf("HTTP状态 = %d, want 200", w.Code)
	}
	if resp.Code != http.StatusOK || resp.Message != "success" {
		t.Errorf("envelope = {%d %q}, want {200 success}", resp.Code, resp.Message)
	}
	if resp.Data == nil {
		t.Error("data 不应为空")
	}
}

func TestCreatedEnvelope(t *testing.T) {
	w, resp := writeAndDecode(t, func(c *gin.Context) {
		util.Created(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusCreated || resp.Code != http.StatusCreated {
		t.Errorf("状态码 = %d/%d, want 201/201", w.Code, resp.Code)
	}
	if resp.Message != "created" {
		t.Errorf("message = %q, want created", resp.Message)
	}
}

// 错误响应：code 与 HTTP 状态一致，data 省略
func TestErrorEnvelopes(t *testing.T) {
	cases := []struct {
		name    string
		write   func(*gin.Context)
		code    int
		message string
	}{
		{"error", func(c *gin.Context) { util.Error(c, 409, "该学号已存在") }, 409, "该学号已存在"},
		{"bad request", func(c *gin.Context) { util.BadRequest(c, "参数错误") }, 400, "参数错误"},
		{"not found", func(c *gin.Context) { util.NotFound(c, "学生不存在") }, 404, "学生不存在"},
		{"unauthorized", func(c *gin.Context) { util.Unauthorized(c) }, 401, "Unauthorized"},
		{"forbidden", func(c *gin.Context) { util.Forbidden(c) }, 403, "Forbidden"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := writeAndDecode(t, tc.write)
			if w.Code != tc.code || resp.Code != tc.code {
				t.Errorf("状态码 = %d/%d, want %d", w.Code, resp.Code, tc.code)
			}
			if resp.Message != tc.message {
				t.Errorf("message = %q, want %q", resp.Message, tc.message)
			}
			if resp.Data != nil {
				t.Errorf("错误响应不应携带 data: %v", resp.Data)
			}
		})
	}
}
