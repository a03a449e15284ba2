// Package docx 是一个最小化的 WordprocessingML 写入器：
// 只覆盖提案信头模板需要的特性（段落、着色表格、页眉页脚、
// PAGE 域、项目符号列表），整个文档在内存中构建成 zip 字节流。
package docx

// 页面与表格尺寸均使用 twip（1 英寸 = 1440 twip）
const twipsPerInch = 1440

// Inches 英寸转 twip
func Inches(v float64) int {
	return int(v*twipsPerInch + 0.5)
}

// Align 段落对齐方式，取值为 WordprocessingML 的 w:jc 值
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "both"
)

// RunProps 文本串的字符属性。Font/SizeHalfPt 为零值时
// 继承文档默认值。
type RunProps struct {
	Font       string
	SizeHalfPt int // 半磅，11pt = 22
	Bold       bool
	Italic     bool
	Underline  bool
	Color      string // RRGGBB，空串为自动
}

// Run 一段同属性文本。Field 非空时在文本之后输出对应的域代码
// （如 "PAGE"）；PageBreak 为 true 时仅输出分页符。
// 文本中的制表符输出为 w:tab。
type Run struct {
	Text      string
	Props     RunProps
	Field     string
	PageBreak bool
}

// Paragraph 段落。Compact 对应模板正文的 space_after=0 且
// 单倍行距；Bullet 挂到文档唯一的项目符号编号上。
type Paragraph struct {
	Align   Align
	Compact bool
	Bullet  bool
	Runs    []*Run
}

// AddRun 追加一段文本
func (p *Paragraph) AddRun(text string, props RunProps) *Run {
	r := &Run{Text: text, Props: props}
	p.Runs = append(p.Runs, r)
	return r
}

// CellMargins 单元格内边距（twip）
type CellMargins struct {
	Top    int
	Bottom int
	Start  int
	End    int
}

// Cell 表格单元格
type Cell struct {
	Width      int    // twip
	Fill       string // RRGGBB 背景填充，空串为无
	VAlign     string // "center" 等，空串为默认
	Margins    *CellMargins
	Paragraphs []*Paragraph
}

// AddParagraph 在单元格内追加段落
func (c *Cell) AddParagraph() *Paragraph {
	p := &Paragraph{}
	c.Paragraphs = append(c.Paragraphs, p)
	return p
}

// Row 表格行。HeightExact 非零时行高固定（twip）。
type Row struct {
	HeightExact int
	Cells       []*Cell
}

// AddCell 追加单元格
func (r *Row) AddCell(width int) *Cell {
	c := &Cell{Width: width}
	r.Cells = append(r.Cells, c)
	return c
}

// Table 表格。Borderless 输出 nil 边框（信头表）；
// Style 引用 styles.xml 中定义的表格样式（费用表的浅色网格）。
type Table struct {
	ColWidths  []int
	Borderless bool
	Style      string
	Rows       []*Row
}

// AddRow 追加一行
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.Rows = append(t.Rows, r)
	return r
}

// Block 文档体内的块级元素：*Paragraph 或 *Table
type Block interface{ isBlock() }

func (*Paragraph) isBlock() {}
func (*Table) isBlock()     {}

// PageMargins 页边距（twip）
type PageMargins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Document 单节文档。Header/Footer 应用到每一页。
type Document struct {
	Margins     PageMargins
	DefaultFont string
	DefaultSize int // 半磅
	Header      []Block
	Footer      []Block
	Body        []Block
}

// New 创建空文档，默认 1 英寸页边距、Arial 11pt
func New() *Document {
	return &Document{
		Margins: PageMargins{
			Top:    Inches(1.0),
			Bottom: Inches(1.0),
			Left:   Inches(1.0),
			Right:  Inches(1.0),
		},
		DefaultFont: "Arial",
		DefaultSize: 22,
	}
}

// AddParagraph 在文档体追加段落
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.Body = append(d.Body, p)
	return p
}

// AddTable 在文档体追加表格
func (d *Document) AddTable() *Table {
	t := &Table{}
	d.Body = append(d.Body, t)
	return t
}

// AddHeaderTable 在页眉追加表格
func (d *Document) AddHeaderTable() *Table {
	t := &Table{}
	d.Header = append(d.Header, t)
	return t
}

// AddFooterTable 在页脚追加表格
func (d *Document) AddFooterTable() *Table {
	t := &Table{}
	d.Footer = append(d.Footer, t)
	return t
}
