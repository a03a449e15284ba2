// Package proposal 定义提案表单提交与校验的请求/响应结构。
package proposal

import "github.com/proposalforge/backend/internal/gis"

// ClientDTO 客户信息表单字段
type ClientDTO struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// ProjectDTO 项目信息表单字段。Date 为 YYYY-MM-DD。
type ProjectDTO struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CityStateZip string `json:"city_state_zip"`
	City         string `json:"city"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	County       string `json:"county"`
	ParcelID     string `json:"parcel_id"`
}

// TaskDTO 一项选中任务。Fee 为表单费用字符串（可带 $ 和逗号），
// 空串表示采用目录默认费用；Hours 覆盖施工阶段任务的工时槽位。
type TaskDTO struct {
	Code  string         `json:"code" binding:"required"`
	Fee   string         `json:"fee"`
	Hours map[string]int `json:"hours,omitempty"`
}

// GenerateRequest 生成提案的完整表单提交
type GenerateRequest struct {
	Catalog            string     `json:"catalog"`
	Client             ClientDTO  `json:"client"`
	Project            ProjectDTO `json:"project"`
	Tasks              []TaskDTO  `json:"tasks"`
	Assumptions        []string   `json:"assumptions"`
	ConceptualPlanDate string     `json:"conceptual_plan_date"`
	// Permits 为 nil 时按县取默认审批机构，非 nil 时为用户覆盖值
	Permits *[]string `json:"permits,omitempty"`
}

// ValidationResult 校验结果。Missing 为缺失必填项的展示名，
// Errors 为其余校验错误。两者都为空时 Valid 为 true。
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// LookupRequest 宗地查询请求
type LookupRequest struct {
	County   string `json:"county" binding:"required"`
	ParcelID string `json:"parcel_id" binding:"required"`
}

// LookupResponse 宗地查询结果。查询失败时 Success 为 false，
// Reason 给出单一原因，不影响已录入的表单字段。
type LookupResponse struct {
	Success bool                `json:"success"`
	Record  *gis.PropertyRecord `json:"record,omitempty"`
	Reason  string              `json:"reason,omitempty"`
}
