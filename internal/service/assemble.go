package service

import (
	"strconv"
	"strings"

	"github.com/proposalforge/backend/internal/catalog"
	"github.com/proposalforge/backend/internal/docx"
	"github.com/proposalforge/backend/internal/model"
)

// assembler 持有一次装配的上下文：目录（信头样式、样板文本）
// 与不可变数据模型。装配是纯内存构建，直线执行，不保留中间态。
type assembler struct {
	cat  *catalog.Catalog
	data model.ProposalData
	doc  *docx.Document
}

// assemble 按固定大纲装配提案文档并返回 .docx 字节流
func assemble(data model.ProposalData, cat *catalog.Catalog) ([]byte, error) {
	doc := docx.New()
	doc.DefaultFont = cat.Font
	doc.DefaultSize = cat.BodyFontPt * 2
	doc.Margins = docx.PageMargins{
		Top:    docx.Inches(cat.Margins.Top),
		Bottom: docx.Inches(cat.Margins.Bottom),
		Left:   docx.Inches(cat.Margins.Left),
		Right:  docx.Inches(cat.Margins.Right),
	}

	a := &assembler{cat: cat, data: data, doc: doc}
	a.buildHeader()
	a.buildFooter()
	a.addOpening()
	a.addProjectUnderstanding()
	a.addScopeOfServices()
	a.addFeeTable()
	if cat.SignaturePage {
		a.addSignaturePage()
	}

	return doc.Bytes()
}

// expand 替换样板占位符
func (a *assembler) expand(tpl string) string {
	r := strings.NewReplacer(
		"{{firm}}", a.cat.ShortName,
		"{{company}}", a.cat.CompanyName,
		"{{client}}", a.data.Client.Name,
		"{{project}}", a.data.Project.Name,
		"{{codes}}", strings.Join(a.data.TaskCodes(), ", "),
	)
	return r.Replace(tpl)
}

// body 正文字符属性，零值继承目录默认字体字号
func body() docx.RunProps {
	return docx.RunProps{}
}

// para 追加一条紧凑段落（space_after=0，单倍行距）
func (a *assembler) para(align docx.Align, text string, props docx.RunProps) *docx.Paragraph {
	p := a.doc.AddParagraph()
	p.Align = align
	p.Compact = true
	p.AddRun(text, props)
	return p
}

// blank 追加空行
func (a *assembler) blank() {
	a.doc.AddParagraph()
}

// buildHeader 页眉：无边框两列表格，左侧字标、右侧页码域
func (a *assembler) buildHeader() {
	t := a.doc.AddHeaderTable()
	t.Borderless = true
	t.ColWidths = []int{docx.Inches(5.0), docx.Inches(1.5)}

	row := t.AddRow()

	logo := row.AddCell(t.ColWidths[0])
	logo.VAlign = "center"
	lp := logo.AddParagraph()
	lp.Align = docx.AlignLeft
	for _, wr := range a.cat.Wordmark {
		lp.AddRun(wr.Text, docx.RunProps{
			Font:       a.cat.WordmarkFont,
			SizeHalfPt: a.cat.WordmarkSizePt * 2,
			Color:      wr.Color,
		})
	}

	page := row.AddCell(t.ColWidths[1])
	page.VAlign = "center"
	pp := page.AddParagraph()
	pp.Align = docx.AlignRight
	run := pp.AddRun("Page ", docx.RunProps{SizeHalfPt: 22, Italic: true, Color: "000000"})
	run.Field = "PAGE"
}

// buildFooter 页脚：无边框五格色条，固定行高
func (a *assembler) buildFooter() {
	t := a.doc.AddFooterTable()
	t.Borderless = true
	for _, cell := range a.cat.FooterCells {
		t.ColWidths = append(t.ColWidths, docx.Inches(cell.WidthInches))
	}

	row := t.AddRow()
	row.HeightExact = docx.Inches(0.22)
	for _, cellDef := range a.cat.FooterCells {
		c := row.AddCell(docx.Inches(cellDef.WidthInches))
		c.VAlign = "center"
		c.Margins = &docx.CellMargins{Top: 20, Bottom: 20, Start: 40, End: 40}
		if cellDef.Fill != "" {
			c.Fill = cellDef.Fill
		}
		if cellDef.Text == "" {
			continue
		}
		p := c.AddParagraph()
		p.Align = docx.AlignCenter
		p.Compact = true
		p.AddRun(cellDef.Text, docx.RunProps{SizeHalfPt: 16, Color: "FFFFFF"})
	}
}

// addOpening 日期、收件人块、Re 行、称呼与开场段
func (a *assembler) addOpening() {
	client := a.data.Client

	a.para(docx.AlignLeft, a.data.Project.Date.Format("January 2, 2006"), body())
	a.blank()

	a.para("", client.Contact, body())
	a.para("", client.Name, body())
	a.para("", client.Address1, body())
	a.para("", client.Address2, body())
	a.blank()

	a.para("", "Re:\tProfessional Services Agreement", body())
	a.para("", "\t"+a.data.Project.Name, body())
	a.blank()

	a.para("", salutation(client.Contact), docx.RunProps{Bold: true})
	a.blank()

	a.para(docx.AlignJustify, a.expand(a.cat.OpeningTemplate), docx.RunProps{Bold: true})
	a.blank()
}

// salutation 取联系人首尾词组成称呼，单词姓名不重复
func salutation(contact string) string {
	fields := strings.Fields(contact)
	if len(fields) == 0 {
		return "Dear Sir or Madam:"
	}
	first := fields[0]
	last := fields[len(fields)-1]
	if first == last {
		return "Dear " + first + ":"
	}
	return "Dear " + first + " " + last + ":"
}

// addProjectUnderstanding 项目描述 + 选中假设的项目符号列表
func (a *assembler) addProjectUnderstanding() {
	a.para(docx.AlignCenter, "PROJECT UNDERSTANDING", body())
	a.blank()

	a.para(docx.AlignJustify, a.data.Project.Description, body())
	a.blank()

	a.para(docx.AlignJustify, a.expand(a.cat.UnderstandingIntro), body())
	a.blank()

	for _, assumption := range a.data.Assumptions {
		p := a.para(docx.AlignLeft, assumption, body())
		p.Bullet = true
	}
	a.blank()

	a.para(docx.AlignJustify, a.expand(a.cat.UnderstandingClosing), body())
	a.blank()
}

// addScopeOfServices 每项选中任务：粗体下划线标题 + 样板描述行。
// 任务已按编号升序；小节标题行不带后置空行，正文行带。
func (a *assembler) addScopeOfServices() {
	a.para(docx.AlignCenter, "Scope of Services", body())
	a.blank()

	a.para(docx.AlignJustify, a.expand(a.cat.ServicesIntro), body())
	a.blank()

	for _, task := range a.data.Tasks {
		spec, _ := a.cat.Task(task.Code)

		heading := "Task " + task.Code + " – " + strings.TrimPrefix(task.Name, a.cat.StripPrefix)
		a.para(docx.AlignJustify, heading, docx.RunProps{Bold: true, Underline: true})
		a.blank()

		for i, line := range spec.Lines {
			a.addTaskLine(task, line)
			if i == 0 && spec.Permits {
				for _, permit := range a.data.Permits {
					a.addTaskLine(task, catalog.Line{Text: permit, Kind: catalog.LineBody})
				}
			}
		}
	}
}

// addTaskLine 按行类型渲染一条任务描述
func (a *assembler) addTaskLine(task model.SelectedTask, line catalog.Line) {
	text := a.expand(line.Text)
	for key, value := range task.Hours {
		text = strings.ReplaceAll(text, "{{"+key+"}}", strconv.Itoa(value))
	}

	switch line.Kind {
	case catalog.LineHeading:
		a.para(docx.AlignJustify, text, docx.RunProps{Italic: true})
	case catalog.LineNote:
		a.para(docx.AlignJustify, text, docx.RunProps{Bold: true, Italic: true})
		a.blank()
	case catalog.LineBold:
		a.para(docx.AlignJustify, text, docx.RunProps{Bold: true})
		a.blank()
	default:
		a.para(docx.AlignJustify, text, body())
		a.blank()
	}
}

// addFeeTable 费用表：表头 + 升序任务行 + 合计行，随后为计费说明段
func (a *assembler) addFeeTable() {
	t := a.doc.AddTable()
	t.Style = "LightGridAccent1"
	t.ColWidths = []int{docx.Inches(0.9), docx.Inches(3.35), docx.Inches(1.25), docx.Inches(1.0)}

	// 模板沿用历史版式：表头前两格同文案，合计金额同时出现在后两格
	a.feeRow(t, [4]string{"Task Number & Name", "Task Number & Name", "Fee", "Type"}, true)
	for _, task := range a.data.Tasks {
		a.feeRow(t, [4]string{task.Code, task.Name, task.Fee.Format(), task.FeeType.Label()}, false)
	}
	total := a.data.TotalFee().Format()
	a.feeRow(t, [4]string{"Total", "Total", total, total}, true)

	a.blank()
	a.para(docx.AlignJustify, a.expand(a.cat.LaborFeeTemplate), body())
}

func (a *assembler) feeRow(t *docx.Table, cells [4]string, bold bool) {
	row := t.AddRow()
	for i, text := range cells {
		c := row.AddCell(t.ColWidths[i])
		p := c.AddParagraph()
		p.Compact = true
		p.AddRun(text, docx.RunProps{Bold: bold})
	}
}

// addSignaturePage 第二页客户签署块（MEP 目录）
func (a *assembler) addSignaturePage() {
	pb := a.doc.AddParagraph()
	pb.Runs = append(pb.Runs, &docx.Run{PageBreak: true})

	a.para(docx.AlignJustify, a.expand(a.cat.AcceptanceTemplate), body())
	a.blank()

	a.para("", "ACCEPTED AND AGREED:", docx.RunProps{Bold: true})
	a.blank()

	a.signatureBlock("CLIENT: " + a.data.Client.Name)
	a.blank()
	a.blank()
	a.signatureBlock(a.cat.CompanyName)
}

func (a *assembler) signatureBlock(party string) {
	rule := strings.Repeat("_", 40)
	a.para("", party, docx.RunProps{Bold: true})
	a.blank()
	a.para("", "By:\t"+rule, body())
	a.para("", "Printed Name:\t"+rule, body())
	a.para("", "Title:\t"+rule, body())
	a.para("", "Date:\t"+rule, body())
}
