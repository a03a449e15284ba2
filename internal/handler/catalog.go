package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proposalforge/backend/internal/catalog"
)

type CatalogHandler struct{}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// catalogSummary 目录列表项
type catalogSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SignaturePage bool   `json:"signature_page"`
}

// taskView 任务在表单中的展示信息
type taskView struct {
	Code              string             `json:"code"`
	Name              string             `json:"name"`
	DefaultFee        string             `json:"default_fee"`
	DefaultFeeDisplay string             `json:"default_fee_display"`
	FeeType           string             `json:"fee_type"`
	FeeTypeLabel      string             `json:"fee_type_label"`
	HourSlots         []catalog.HourSlot `json:"hour_slots,omitempty"`
	Permits           bool               `json:"permits"`
}

// catalogDetail 单个目录的完整表单配置
type catalogDetail struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	SignaturePage  bool                `json:"signature_page"`
	Tasks          []taskView          `json:"tasks"`
	Assumptions    []catalog.Assumption `json:"assumptions"`
	Counties       []string            `json:"counties"`
	PermitDefaults map[string][]string `json:"permit_defaults,omitempty"`
}

// List 列出可用的提案目录
func (h *CatalogHandler) List(c *gin.Context) {
	var out []catalogSummary
	for _, cat := range catalog.List() {
		out = append(out, catalogSummary{
			ID:            cat.ID,
			Name:          cat.Name,
			SignaturePage: cat.SignaturePage,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Get 获取单个目录的表单配置
func (h *CatalogHandler) Get(c *gin.Context) {
	cat, err := catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	detail := catalogDetail{
		ID:             cat.ID,
		Name:           cat.Name,
		SignaturePage:  cat.SignaturePage,
		Assumptions:    cat.Assumptions,
		Counties:       cat.Counties,
		PermitDefaults: cat.PermitDefaults,
	}
	for _, t := range cat.SortedTasks() {
		detail.Tasks = append(detail.Tasks, taskView{
			Code:              t.Code,
			Name:              t.Name,
			DefaultFee:        t.DefaultFee.String(),
			DefaultFeeDisplay: t.DefaultFee.Format(),
			FeeType:           string(t.FeeType),
			FeeTypeLabel:      t.FeeType.Label(),
			HourSlots:         t.HourSlots,
			Permits:           t.Permits,
		})
	}

	c.JSON(http.StatusOK, detail)
}
