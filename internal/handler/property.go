package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	proposaldto "github.com/proposalforge/backend/internal/dto/proposal"
	"github.com/proposalforge/backend/internal/gis"
)

type PropertyHandler struct {
	client *gis.Client
}

// NewPropertyHandler 创建宗地查询处理器
func NewPropertyHandler(client *gis.Client) *PropertyHandler {
	return &PropertyHandler{client: client}
}

// Lookup 按县和宗地号查询物业记录。
// 查询失败降级为手工录入：始终返回 200，失败以 success=false 表达。
func (h *PropertyHandler) Lookup(c *gin.Context) {
	var req proposaldto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.client.Lookup(c.Request.Context(), req.County, req.ParcelID)
	if err != nil {
		klog.V(6).Infof("[property.Lookup] 查询失败: county=%s parcel=%s err=%v", req.County, req.ParcelID, err)
		c.JSON(http.StatusOK, proposaldto.LookupResponse{Success: false, Reason: err.Error()})
		return
	}

	c.JSON(http.StatusOK, proposaldto.LookupResponse{Success: true, Record: record})
}
