package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	proposaldto "github.com/proposalforge/backend/internal/dto/proposal"
	"github.com/proposalforge/backend/internal/service"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type ProposalHandler struct {
	service *service.ProposalService
}

// NewProposalHandler 创建提案处理器
func NewProposalHandler(service *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// Validate 表单预校验，返回缺失必填项与错误列表
func (h *ProposalHandler) Validate(c *gin.Context) {
	var req proposaldto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.Validate(&req))
}

// Generate 生成提案文档并以附件下载返回。
// 装配失败返回通用错误与可展开的技术细节，表单状态由前端保留以便重试。
func (h *ProposalHandler) Generate(c *gin.Context) {
	var req proposaldto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Validate(&req)
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "表单校验未通过",
			"validation": result,
		})
		return
	}

	genID := uuid.NewString()
	doc, err := h.generate(genID, &req)
	if err != nil {
		klog.Errorf("[proposal.Generate] 生成失败: id=%s err=%v", genID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         "提案文档生成失败，请重试",
			"detail":        err.Error(),
			"generation_id": genID,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Header("X-Generation-ID", doc.GenerationID)
	c.Data(http.StatusOK, docxContentType, doc.Data)
}

// generate 把装配过程中的 panic 收敛为 error，避免打断请求循环
func (h *ProposalHandler) generate(genID string, req *proposaldto.GenerateRequest) (doc *service.GeneratedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("装配过程异常: %v", r)
		}
	}()
	return h.service.Generate(genID, req)
}
