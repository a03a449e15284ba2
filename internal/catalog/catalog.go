package catalog

import (
	"fmt"
	"sort"

	"github.com/proposalforge/backend/internal/model"
)

// LineKind 任务描述行的渲染类型
type LineKind string

const (
	LineBody    LineKind = "body"    // 两端对齐正文段落
	LineHeading LineKind = "heading" // 斜体小节标题
	LineNote    LineKind = "note"    // 粗斜体 Note 行
	LineBold    LineKind = "bold"    // 粗体行
)

// Line 带显式渲染标记的描述行
type Line struct {
	Text string   `json:"text"`
	Kind LineKind `json:"kind"`
}

// HourSlot 施工阶段任务的命名工时槽位
type HourSlot struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Default int    `json:"default"`
}

// Task 一项计费任务及其样板描述
type Task struct {
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	DefaultFee model.Fee     `json:"default_fee"`
	FeeType    model.FeeType `json:"fee_type"`
	Lines      []Line        `json:"-"`
	HourSlots  []HourSlot    `json:"hour_slots,omitempty"`
	// Permits 为 true 时，装配器在首段之后插入选中的审批机构清单
	Permits bool `json:"permits"`
}

// Assumption 项目理解清单中的一条假设
type Assumption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	NeedsDate bool   `json:"needs_date,omitempty"`
}

// WordmarkRun 页眉字标中的一段着色文本
type WordmarkRun struct {
	Text  string
	Color string
}

// FooterCell 页脚色条中的一个单元格
type FooterCell struct {
	WidthInches float64
	Fill        string // 空串表示无填充的分隔格
	Text        string
}

// Margins 页边距（英寸）
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Catalog 一个提案变体的全部配置：信头样式、任务库、
// 假设清单、县与审批机构映射、正文样板。装配器只消费
// Catalog 数据，不包含任何变体分支。
type Catalog struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	ShortName   string `json:"short_name"`

	Wordmark       []WordmarkRun `json:"-"`
	WordmarkSizePt int           `json:"-"`
	WordmarkFont   string        `json:"-"`
	FooterCells    []FooterCell  `json:"-"`
	Margins        Margins       `json:"-"`
	Font           string        `json:"-"`
	BodyFontPt     int           `json:"-"`
	SignaturePage  bool          `json:"signature_page"`

	// 任务标题中需要剥离的名称前缀（如民用目录的 "Civil "）
	StripPrefix string `json:"-"`

	// 正文样板。占位符：{{firm}} {{company}} {{client}} {{project}} {{codes}}
	OpeningTemplate      string `json:"-"`
	UnderstandingIntro   string `json:"-"`
	UnderstandingClosing string `json:"-"`
	ServicesIntro        string `json:"-"`
	LaborFeeTemplate     string `json:"-"`
	AcceptanceTemplate   string `json:"-"`

	Tasks          map[string]Task     `json:"-"`
	Assumptions    []Assumption        `json:"assumptions"`
	Counties       []string            `json:"counties"`
	PermitDefaults map[string][]string `json:"permit_defaults,omitempty"`
}

// Task 按编号查任务
func (c *Catalog) Task(code string) (Task, bool) {
	t, ok := c.Tasks[code]
	return t, ok
}

// SortedTasks 任务按编号升序
func (c *Catalog) SortedTasks() []Task {
	tasks := make([]Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Code < tasks[j].Code })
	return tasks
}

// Assumption 按 ID 查假设
func (c *Catalog) Assumption(id string) (Assumption, bool) {
	for _, a := range c.Assumptions {
		if a.ID == id {
			return a, true
		}
	}
	return Assumption{}, false
}

// DefaultPermits 县对应的默认审批机构名单
func (c *Catalog) DefaultPermits(county string) []string {
	if c.PermitDefaults == nil {
		return nil
	}
	return c.PermitDefaults[county]
}

var catalogs = map[string]*Catalog{
	CatalogCivil: civilCatalog,
	CatalogMEP:   mepCatalog,
}

const (
	CatalogCivil = "civil"
	CatalogMEP   = "mep"
)

// Get 按 ID 取目录
func Get(id string) (*Catalog, error) {
	c, ok := catalogs[id]
	if !ok {
		return nil, fmt.Errorf("未知的提案目录: %q", id)
	}
	return c, nil
}

// List 全部目录，按 ID 升序
func List() []*Catalog {
	out := make([]*Catalog, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
