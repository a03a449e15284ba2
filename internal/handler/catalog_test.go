package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func catalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogHandler()
	r.GET("/api/catalogs", h.List)
	r.GET("/api/catalogs/:id", h.Get)
	return r
}

func TestCatalogList(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/catalogs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200, 实际 %d", w.Code)
	}

	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("期望 2 个目录, 实际 %d", len(out))
	}
	if out[0]["id"] != "civil" || out[1]["id"] != "mep" {
		t.Fatalf("目录顺序不符: %v", out)
	}
}

func TestCatalogGet(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/catalogs/civil", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200, 实际 %d", w.Code)
	}

	var detail struct {
		ID    string `json:"id"`
		Tasks []struct {
			Code              string `json:"code"`
			DefaultFeeDisplay string `json:"default_fee_display"`
			FeeTypeLabel      string `json:"fee_type_label"`
		} `json:"tasks"`
		Counties       []string            `json:"counties"`
		PermitDefaults map[string][]string `json:"permit_defaults"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}

	if detail.ID != "civil" {
		t.Fatalf("目录 ID 不符: %s", detail.ID)
	}
	if len(detail.Tasks) != 6 {
		t.Fatalf("期望 6 项任务, 实际 %d", len(detail.Tasks))
	}
	if detail.Tasks[0].Code != "110" {
		t.Fatalf("任务应按编号升序, 首项为 %s", detail.Tasks[0].Code)
	}
	if detail.Tasks[0].DefaultFeeDisplay != "$ 40,000" {
		t.Fatalf("费用展示格式不符: %s", detail.Tasks[0].DefaultFeeDisplay)
	}
	if detail.Tasks[0].FeeTypeLabel != "Hourly, Not-to-Exceed" {
		t.Fatalf("计价方式文案不符: %s", detail.Tasks[0].FeeTypeLabel)
	}
	if len(detail.Counties) == 0 || len(detail.PermitDefaults) == 0 {
		t.Fatal("民用目录应携带县与审批机构映射")
	}
}

func TestCatalogGetNotFound(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/catalogs/structural", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("期望状态码 404, 实际 %d", w.Code)
	}
}
