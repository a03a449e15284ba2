package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proposalforge/backend/internal/catalog"
	proposaldto "github.com/proposalforge/backend/internal/dto/proposal"
)

// validRequest 可通过校验的最小民用目录提交
func validRequest() *proposaldto.GenerateRequest {
	return &proposaldto.GenerateRequest{
		Catalog: catalog.CatalogCivil,
		Client: proposaldto.ClientDTO{
			Name:     "Storage Partners of Florida, LLC",
			Contact:  "Ms. Michelle Bach",
			Address1: "100 Main Street, Suite 200",
			Address2: "Tampa, FL 33602",
		},
		Project: proposaldto.ProjectDTO{
			Name:        "Self Storage – 7400 22nd Avenue North",
			Description: "Development of a three-story self storage facility.",
			Date:        "2024-10-15",
			County:      "Pinellas",
		},
		Tasks: []proposaldto.TaskDTO{{Code: "110"}},
	}
}

// 测试 Validate - 空提交列出全部缺失必填项
func TestValidateMissingFields(t *testing.T) {
	s := NewProposalService()
	result := s.Validate(&proposaldto.GenerateRequest{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Client Name",
		"Contact Person",
		"Address Line 1",
		"Address Line 2",
		"Project Name",
		"Project Description",
		"Proposal Date",
	}, result.Missing, "缺失项按表单顺序列出")
	assert.Contains(t, result.Errors, "请至少选择一项任务")
}

// 测试 Validate - 各类错误逐条累积
func TestValidateErrors(t *testing.T) {
	s := NewProposalService()

	req := validRequest()
	req.Tasks = []proposaldto.TaskDTO{
		{Code: "999"},
		{Code: "110", Fee: "abc"},
		{Code: "120", Hours: map[string]int{"site_visits": 3}},
	}
	req.Assumptions = []string{"survey", "nonexistent"}
	req.Project.Date = "10/15/2024"

	result := s.Validate(req)
	assert.False(t, result.Valid)
	assert.Empty(t, result.Missing)
	assert.Contains(t, result.Errors, "未知的任务编号: 999")
	assert.Contains(t, result.Errors, "任务 110 的费用无法解析: abc")
	assert.Contains(t, result.Errors, `任务 120 没有工时槽位 "site_visits"`)
	assert.Contains(t, result.Errors, "未知的假设项: nonexistent")
	assert.Contains(t, result.Errors, "提案日期格式应为 YYYY-MM-DD: 10/15/2024")
}

// 测试 Validate - 未知目录直接短路
func TestValidateUnknownCatalog(t *testing.T) {
	s := NewProposalService()
	req := validRequest()
	req.Catalog = "structural"

	result := s.Validate(req)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "structural")
}

// 测试 Validate - 合法提交通过
func TestValidateOK(t *testing.T) {
	s := NewProposalService()
	result := s.Validate(validRequest())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Errors)
}

// 测试 Build - 任务按编号升序，与勾选顺序无关
func TestBuildTaskOrder(t *testing.T) {
	s := NewProposalService()
	req := validRequest()
	req.Tasks = []proposaldto.TaskDTO{{Code: "210"}, {Code: "110"}, {Code: "150"}}

	data, cat, err := s.Build(req)
	assert.NoError(t, err)
	assert.Equal(t, catalog.CatalogCivil, cat.ID)
	assert.Equal(t, []string{"110", "150", "210"}, data.TaskCodes())
}

// 测试 Build - 费用覆盖与默认值、合计
func TestBuildFees(t *testing.T) {
	s := NewProposalService()
	req := validRequest()
	req.Tasks = []proposaldto.TaskDTO{
		{Code: "110"},                   // 默认 40,000
		{Code: "140", Fee: "$ 62,500"},  // 覆盖
		{Code: "210", Fee: "0"},         // 覆盖为零
	}

	data, _, err := s.Build(req)
	assert.NoError(t, err)
	assert.Equal(t, "40000", data.Tasks[0].Fee.String())
	assert.Equal(t, "62500", data.Tasks[1].Fee.String())
	assert.True(t, data.Tasks[2].Fee.IsZero())
	assert.Equal(t, "$ 102,500", data.TotalFee().Format())
}

// 测试 Build - 假设按清单固定顺序输出，带日期的假设仅在提供日期时出现
func TestBuildAssumptions(t *testing.T) {
	s := NewProposalService()
	req := validRequest()
	req.Assumptions = []string{"one_phase", "survey", "zoning"}

	data, cat, err := s.Build(req)
	assert.NoError(t, err)
	assert.Len(t, data.Assumptions, 3)

	survey, _ := cat.Assumption("survey")
	zoning, _ := cat.Assumption("zoning")
	onePhase, _ := cat.Assumption("one_phase")
	assert.Equal(t, []string{survey.Text, zoning.Text, onePhase.Text}, data.Assumptions,
		"输出顺序与勾选顺序无关")

	// 未提供日期时跳过 conceptual_plan
	req.Assumptions = append(req.Assumptions, "conceptual_plan")
	data, _, err = s.Build(req)
	assert.NoError(t, err)
	assert.Len(t, data.Assumptions, 3)

	req.ConceptualPlanDate = "June 3, 2024"
	data, _, err = s.Build(req)
	assert.NoError(t, err)
	assert.Len(t, data.Assumptions, 4)
	assert.Contains(t, data.Assumptions[2], "dated June 3, 2024")
}

// 测试 Build - 审批机构名单：覆盖优先，否则按县取默认
func TestBuildPermits(t *testing.T) {
	s := NewProposalService()

	req := validRequest()
	data, cat, err := s.Build(req)
	assert.NoError(t, err)
	assert.Equal(t, cat.DefaultPermits("Pinellas"), data.Permits)

	override := []string{"Custom Agency Approval"}
	req.Permits = &override
	data, _, err = s.Build(req)
	assert.NoError(t, err)
	assert.Equal(t, override, data.Permits)

	// 显式空覆盖不回落到县默认
	empty := []string{}
	req.Permits = &empty
	data, _, err = s.Build(req)
	assert.NoError(t, err)
	assert.Empty(t, data.Permits)
}

// 测试 Build - 工时槽位取覆盖值，未覆盖用默认
func TestBuildHours(t *testing.T) {
	s := NewProposalService()
	req := validRequest()
	req.Catalog = catalog.CatalogMEP
	req.Tasks = []proposaldto.TaskDTO{
		{Code: "340", Hours: map[string]int{"site_visits": 8}},
	}

	data, _, err := s.Build(req)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{
		"site_visits":          8,
		"shop_drawing_reviews": 20,
		"rfi_responses":        15,
	}, data.Tasks[0].Hours)
}

// 测试 Build - 字段裁剪空白
func TestBuildTrimsWhitespace(t *testing.T) {
	s := NewProposalService()
	req := validRequest()
	req.Client.Name = "  Storage Partners of Florida, LLC  "
	req.Project.County = " Pinellas "

	data, _, err := s.Build(req)
	assert.NoError(t, err)
	assert.Equal(t, "Storage Partners of Florida, LLC", data.Client.Name)
	assert.Equal(t, "Pinellas", data.Project.County)
	assert.NotEmpty(t, data.Permits, "裁剪后的县名仍命中默认审批机构")
}

// 测试 Generate - 返回文档字节流与生成标识
func TestGenerate(t *testing.T) {
	s := NewProposalService()
	doc, err := s.Generate("test-gen-id", validRequest())
	assert.NoError(t, err)
	assert.Equal(t, "test-gen-id", doc.GenerationID)
	assert.Equal(t, "Proposal_Self_Storage_–_7400_22nd_Avenu_20241015.docx", doc.Filename)
	assert.True(t, len(doc.Data) > 0)
	assert.Equal(t, "PK", string(doc.Data[:2]), "产物应为 zip 容器")
}
