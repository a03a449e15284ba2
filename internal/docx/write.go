package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// esc XML 文本转义
func esc(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// writeRunProps 输出 w:rPr。零值属性继承文档默认。
func (d *Document) writeRunProps(sb *strings.Builder, props RunProps) {
	font := props.Font
	if font == "" {
		font = d.DefaultFont
	}
	size := props.SizeHalfPt
	if size == 0 {
		size = d.DefaultSize
	}

	sb.WriteString("<w:rPr>")
	fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, esc(font), esc(font), esc(font))
	if props.Bold {
		sb.WriteString("<w:b/>")
	}
	if props.Italic {
		sb.WriteString("<w:i/>")
	}
	if props.Color != "" {
		fmt.Fprintf(sb, `<w:color w:val="%s"/>`, props.Color)
	}
	fmt.Fprintf(sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size)
	if props.Underline {
		sb.WriteString(`<w:u w:val="single"/>`)
	}
	sb.WriteString("</w:rPr>")
}

// writeText 输出文本，制表符转为 w:tab
func writeText(sb *strings.Builder, text string) {
	parts := strings.Split(text, "\t")
	for i, part := range parts {
		if i > 0 {
			sb.WriteString("<w:tab/>")
		}
		if part == "" {
			continue
		}
		// 首尾空格必须声明 preserve，否则 Word 会吞掉
		if strings.TrimSpace(part) != part {
			fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, esc(part))
		} else {
			fmt.Fprintf(sb, "<w:t>%s</w:t>", esc(part))
		}
	}
}

func (d *Document) writeRun(sb *strings.Builder, r *Run) {
	sb.WriteString("<w:r>")
	d.writeRunProps(sb, r.Props)
	if r.PageBreak {
		sb.WriteString(`<w:br w:type="page"/>`)
	}
	if r.Text != "" {
		writeText(sb, r.Text)
	}
	if r.Field != "" {
		sb.WriteString(`<w:fldChar w:fldCharType="begin"/>`)
		fmt.Fprintf(sb, `<w:instrText xml:space="preserve"> %s </w:instrText>`, esc(r.Field))
		sb.WriteString(`<w:fldChar w:fldCharType="end"/>`)
	}
	sb.WriteString("</w:r>")
}

func (d *Document) writeParagraph(sb *strings.Builder, p *Paragraph) {
	sb.WriteString("<w:p>")

	hasProps := p.Bullet || p.Compact || p.Align != ""
	if hasProps {
		sb.WriteString("<w:pPr>")
		if p.Bullet {
			sb.WriteString(`<w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
		}
		if p.Compact {
			sb.WriteString(`<w:spacing w:after="0" w:line="240" w:lineRule="auto"/>`)
		}
		if p.Align != "" {
			fmt.Fprintf(sb, `<w:jc w:val="%s"/>`, p.Align)
		}
		sb.WriteString("</w:pPr>")
	}

	for _, r := range p.Runs {
		d.writeRun(sb, r)
	}
	sb.WriteString("</w:p>")
}

func (d *Document) writeCell(sb *strings.Builder, c *Cell) {
	sb.WriteString("<w:tc><w:tcPr>")
	fmt.Fprintf(sb, `<w:tcW w:w="%d" w:type="dxa"/>`, c.Width)
	if c.Fill != "" {
		fmt.Fprintf(sb, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, c.Fill)
	}
	if m := c.Margins; m != nil {
		sb.WriteString("<w:tcMar>")
		fmt.Fprintf(sb, `<w:top w:w="%d" w:type="dxa"/>`, m.Top)
		fmt.Fprintf(sb, `<w:start w:w="%d" w:type="dxa"/>`, m.Start)
		fmt.Fprintf(sb, `<w:bottom w:w="%d" w:type="dxa"/>`, m.Bottom)
		fmt.Fprintf(sb, `<w:end w:w="%d" w:type="dxa"/>`, m.End)
		sb.WriteString("</w:tcMar>")
	}
	if c.VAlign != "" {
		fmt.Fprintf(sb, `<w:vAlign w:val="%s"/>`, c.VAlign)
	}
	sb.WriteString("</w:tcPr>")

	// 单元格必须至少含一个段落
	if len(c.Paragraphs) == 0 {
		sb.WriteString("<w:p/>")
	}
	for _, p := range c.Paragraphs {
		d.writeParagraph(sb, p)
	}
	sb.WriteString("</w:tc>")
}

func (d *Document) writeTable(sb *strings.Builder, t *Table) {
	sb.WriteString("<w:tbl><w:tblPr>")
	if t.Style != "" {
		fmt.Fprintf(sb, `<w:tblStyle w:val="%s"/>`, t.Style)
	}
	total := 0
	for _, w := range t.ColWidths {
		total += w
	}
	fmt.Fprintf(sb, `<w:tblW w:w="%d" w:type="dxa"/>`, total)
	if t.Borderless {
		sb.WriteString("<w:tblBorders>")
		for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
			fmt.Fprintf(sb, `<w:%s w:val="nil"/>`, side)
		}
		sb.WriteString("</w:tblBorders>")
	}
	sb.WriteString(`<w:tblLayout w:type="fixed"/></w:tblPr>`)

	sb.WriteString("<w:tblGrid>")
	for _, w := range t.ColWidths {
		fmt.Fprintf(sb, `<w:gridCol w:w="%d"/>`, w)
	}
	sb.WriteString("</w:tblGrid>")

	for _, row := range t.Rows {
		sb.WriteString("<w:tr>")
		if row.HeightExact > 0 {
			fmt.Fprintf(sb, `<w:trPr><w:trHeight w:val="%d" w:hRule="exact"/></w:trPr>`, row.HeightExact)
		}
		for _, c := range row.Cells {
			d.writeCell(sb, c)
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
}

func (d *Document) writeBlocks(sb *strings.Builder, blocks []Block) {
	for _, b := range blocks {
		switch v := b.(type) {
		case *Paragraph:
			d.writeParagraph(sb, v)
		case *Table:
			d.writeTable(sb, v)
		}
	}
}

const wpmlNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

// documentXML 生成 word/document.xml
func (d *Document) documentXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, "<w:document %s><w:body>", wpmlNamespaces)
	d.writeBlocks(&sb, d.Body)

	sb.WriteString("<w:sectPr>")
	if len(d.Header) > 0 {
		sb.WriteString(`<w:headerReference w:type="default" r:id="rId3"/>`)
	}
	if len(d.Footer) > 0 {
		sb.WriteString(`<w:footerReference w:type="default" r:id="rId4"/>`)
	}
	sb.WriteString(`<w:pgSz w:w="12240" w:h="15840"/>`)
	fmt.Fprintf(&sb, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		d.Margins.Top, d.Margins.Right, d.Margins.Bottom, d.Margins.Left)
	sb.WriteString("</w:sectPr></w:body></w:document>")
	return sb.String()
}

// headerXML 生成 word/header1.xml
func (d *Document) headerXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, "<w:hdr %s>", wpmlNamespaces)
	d.writeBlocks(&sb, d.Header)
	sb.WriteString("</w:hdr>")
	return sb.String()
}

// footerXML 生成 word/footer1.xml
func (d *Document) footerXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, "<w:ftr %s>", wpmlNamespaces)
	d.writeBlocks(&sb, d.Footer)
	sb.WriteString("</w:ftr>")
	return sb.String()
}
