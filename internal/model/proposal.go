package model

import "time"

// FeeType 费用计价方式
type FeeType string

const (
	FeeHourlyNTE FeeType = "hourly_nte" // Hourly, Not-to-Exceed
	FeeHourly    FeeType = "hourly"
	FeeLumpSum   FeeType = "lump_sum"
)

// Label 费用表 Type 列使用的展示文案
func (t FeeType) Label() string {
	switch t {
	case FeeHourlyNTE:
		return "Hourly, Not-to-Exceed"
	case FeeHourly:
		return "Hourly"
	case FeeLumpSum:
		return "Lump Sum"
	}
	return string(t)
}

// Valid 是否为已知计价方式
func (t FeeType) Valid() bool {
	switch t {
	case FeeHourlyNTE, FeeHourly, FeeLumpSum:
		return true
	}
	return false
}

// ClientInfo 客户信息，全部为自由文本
type ClientInfo struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// ProjectInfo 项目信息
type ProjectInfo struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	CityStateZip string    `json:"city_state_zip"`
	City         string    `json:"city"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	County       string    `json:"county"`
	ParcelID     string    `json:"parcel_id"`
}

// SelectedTask 选中的一项计费任务。Fee 已应用覆盖值，
// Hours 为施工阶段任务的命名工时分配（按槽位 key）。
type SelectedTask struct {
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	Fee     Fee            `json:"fee"`
	FeeType FeeType        `json:"fee_type"`
	Hours   map[string]int `json:"hours,omitempty"`
}

// ProposalData 提交时一次性构建的不可变数据模型，按值传入装配器。
// Tasks 已按任务编号升序排列；Assumptions 为按清单固定顺序
// 解析好的整句文本；Permits 为民用目录下生效的审批机构名单。
type ProposalData struct {
	CatalogID   string
	Client      ClientInfo
	Project     ProjectInfo
	Tasks       []SelectedTask
	Assumptions []string
	Permits     []string
}

// TotalFee 选中任务费用之和
func (p ProposalData) TotalFee() Fee {
	var total Fee
	for _, t := range p.Tasks {
		total = total.Add(t.Fee)
	}
	return total
}

// TaskCodes 升序任务编号列表
func (p ProposalData) TaskCodes() []string {
	codes := make([]string, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		codes = append(codes, t.Code)
	}
	return codes
}
