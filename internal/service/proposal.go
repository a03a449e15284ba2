package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/proposalforge/backend/internal/catalog"
	proposaldto "github.com/proposalforge/backend/internal/dto/proposal"
	"github.com/proposalforge/backend/internal/model"
	"github.com/proposalforge/backend/internal/utils"
)

// ProposalService 校验表单提交、构建不可变数据模型并装配提案文档
type ProposalService struct{}

// NewProposalService 创建提案服务
func NewProposalService() *ProposalService {
	return &ProposalService{}
}

// GeneratedDocument 一次成功生成的产物
type GeneratedDocument struct {
	GenerationID string
	Filename     string
	Data         []byte
}

// requiredFields 必填项及其表单展示名，顺序即提示顺序
var requiredFields = []struct {
	label string
	get   func(req *proposaldto.GenerateRequest) string
}{
	{"Client Name", func(r *proposaldto.GenerateRequest) string { return r.Client.Name }},
	{"Contact Person", func(r *proposaldto.GenerateRequest) string { return r.Client.Contact }},
	{"Address Line 1", func(r *proposaldto.GenerateRequest) string { return r.Client.Address1 }},
	{"Address Line 2", func(r *proposaldto.GenerateRequest) string { return r.Client.Address2 }},
	{"Project Name", func(r *proposaldto.GenerateRequest) string { return r.Project.Name }},
	{"Project Description", func(r *proposaldto.GenerateRequest) string { return r.Project.Description }},
	{"Proposal Date", func(r *proposaldto.GenerateRequest) string { return r.Project.Date }},
}

// Validate 浅层校验：必填项存在、至少选中一项任务、费用可解析、
// 任务编号与假设 ID 在目录内。不做跨字段一致性检查。
func (s *ProposalService) Validate(req *proposaldto.GenerateRequest) proposaldto.ValidationResult {
	result := proposaldto.ValidationResult{}

	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(req)) == "" {
			result.Missing = append(result.Missing, f.label)
		}
	}

	cat, err := catalog.Get(s.catalogID(req))
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if len(req.Tasks) == 0 {
		result.Errors = append(result.Errors, "请至少选择一项任务")
	}
	for _, t := range req.Tasks {
		spec, ok := cat.Task(t.Code)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("未知的任务编号: %s", t.Code))
			continue
		}
		if t.Fee != "" {
			if _, err := model.ParseFee(t.Fee); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("任务 %s 的费用无法解析: %s", t.Code, t.Fee))
			}
		}
		for key := range t.Hours {
			if !hasHourSlot(spec, key) {
				result.Errors = append(result.Errors, fmt.Sprintf("任务 %s 没有工时槽位 %q", t.Code, key))
			}
		}
	}

	for _, id := range req.Assumptions {
		if _, ok := cat.Assumption(id); !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("未知的假设项: %s", id))
		}
	}

	if req.Project.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Project.Date); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("提案日期格式应为 YYYY-MM-DD: %s", req.Project.Date))
		}
	}

	result.Valid = len(result.Missing) == 0 && len(result.Errors) == 0
	return result
}

// Build 把校验通过的表单提交解析为不可变数据模型。
// 任务按编号升序，假设按清单固定顺序，费用已应用覆盖值。
func (s *ProposalService) Build(req *proposaldto.GenerateRequest) (*model.ProposalData, *catalog.Catalog, error) {
	cat, err := catalog.Get(s.catalogID(req))
	if err != nil {
		return nil, nil, err
	}

	date, err := time.Parse("2006-01-02", req.Project.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("提案日期无效: %w", err)
	}

	tasks := make([]model.SelectedTask, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		spec, ok := cat.Task(t.Code)
		if !ok {
			return nil, nil, fmt.Errorf("未知的任务编号: %s", t.Code)
		}

		fee := spec.DefaultFee
		if t.Fee != "" {
			fee, err = model.ParseFee(t.Fee)
			if err != nil {
				return nil, nil, fmt.Errorf("任务 %s: %w", t.Code, err)
			}
		}

		tasks = append(tasks, model.SelectedTask{
			Code:    spec.Code,
			Name:    spec.Name,
			Fee:     fee,
			FeeType: spec.FeeType,
			Hours:   resolveHours(spec, t.Hours),
		})
	}
	// 输出顺序与勾选顺序无关，始终按任务编号升序
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Code < tasks[j].Code })

	data := &model.ProposalData{
		CatalogID: cat.ID,
		Client: model.ClientInfo{
			Name:     strings.TrimSpace(req.Client.Name),
			Contact:  strings.TrimSpace(req.Client.Contact),
			Address1: strings.TrimSpace(req.Client.Address1),
			Address2: strings.TrimSpace(req.Client.Address2),
			Phone:    strings.TrimSpace(req.Client.Phone),
			Email:    strings.TrimSpace(req.Client.Email),
		},
		Project: model.ProjectInfo{
			Name:         strings.TrimSpace(req.Project.Name),
			Address:      strings.TrimSpace(req.Project.Address),
			CityStateZip: strings.TrimSpace(req.Project.CityStateZip),
			City:         strings.TrimSpace(req.Project.City),
			Description:  strings.TrimSpace(req.Project.Description),
			Date:         date,
			County:       strings.TrimSpace(req.Project.County),
			ParcelID:     strings.TrimSpace(req.Project.ParcelID),
		},
		Tasks:       tasks,
		Assumptions: resolveAssumptions(cat, req),
		Permits:     resolvePermits(cat, req),
	}
	return data, cat, nil
}

// Generate 校验、构建数据模型并装配文档字节流。
// genID 由调用方生成，失败响应与日志用同一标识关联。
func (s *ProposalService) Generate(genID string, req *proposaldto.GenerateRequest) (*GeneratedDocument, error) {
	data, cat, err := s.Build(req)
	if err != nil {
		return nil, err
	}

	klog.V(6).Infof("[proposal.Generate] 开始装配: id=%s catalog=%s tasks=%s",
		genID, cat.ID, utils.ToJSON(data.TaskCodes()))

	docBytes, err := assemble(*data, cat)
	if err != nil {
		return nil, fmt.Errorf("装配提案文档失败: %w", err)
	}

	filename := Filename(data.Project.Name, data.Project.Date)
	klog.V(6).Infof("[proposal.Generate] 装配完成: id=%s file=%s size=%d", genID, filename, len(docBytes))

	return &GeneratedDocument{
		GenerationID: genID,
		Filename:     filename,
		Data:         docBytes,
	}, nil
}

func (s *ProposalService) catalogID(req *proposaldto.GenerateRequest) string {
	if req.Catalog == "" {
		return catalog.CatalogCivil
	}
	return req.Catalog
}

func hasHourSlot(spec catalog.Task, key string) bool {
	for _, slot := range spec.HourSlots {
		if slot.Key == key {
			return true
		}
	}
	return false
}

// resolveHours 工时槽位取覆盖值，未覆盖用槽位默认值
func resolveHours(spec catalog.Task, overrides map[string]int) map[string]int {
	if len(spec.HourSlots) == 0 {
		return nil
	}
	hours := make(map[string]int, len(spec.HourSlots))
	for _, slot := range spec.HourSlots {
		hours[slot.Key] = slot.Default
		if v, ok := overrides[slot.Key]; ok && v >= 0 {
			hours[slot.Key] = v
		}
	}
	return hours
}

// resolveAssumptions 按清单固定顺序输出选中的假设整句，
// 与勾选顺序无关；带日期的假设只在提供日期时出现。
func resolveAssumptions(cat *catalog.Catalog, req *proposaldto.GenerateRequest) []string {
	selected := make(map[string]bool, len(req.Assumptions))
	for _, id := range req.Assumptions {
		selected[id] = true
	}

	var out []string
	for _, a := range cat.Assumptions {
		if !selected[a.ID] {
			continue
		}
		text := a.Text
		if a.NeedsDate {
			if req.ConceptualPlanDate == "" {
				continue
			}
			text = strings.ReplaceAll(text, "{{date}}", req.ConceptualPlanDate)
		}
		out = append(out, text)
	}
	return out
}

// resolvePermits 民用目录下返回生效的审批机构名单：
// 用户覆盖值优先，否则按县取默认
func resolvePermits(cat *catalog.Catalog, req *proposaldto.GenerateRequest) []string {
	if cat.PermitDefaults == nil {
		return nil
	}
	if req.Permits != nil {
		return *req.Permits
	}
	return cat.DefaultPermits(strings.TrimSpace(req.Project.County))
}
