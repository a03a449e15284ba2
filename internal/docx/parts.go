package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>` +
	`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>` +
	`</Types>`

const rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>` +
	`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>` +
	`</Relationships>`

// numberingXML 单一项目符号编号（numId=1），对应模板的 List Bullet
const numberingXML = xml.Header + `<w:numbering ` + wpmlNamespaces + `>` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0">` +
	`<w:start w:val="1"/>` +
	`<w:numFmt w:val="bullet"/>` +
	`<w:lvlText w:val="&#61623;"/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`<w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol" w:hint="default"/></w:rPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

// stylesXML 文档默认字体字号 + 列表段落样式 + 费用表的浅色网格表格样式
func (d *Document) stylesXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, "<w:styles %s>", wpmlNamespaces)

	fmt.Fprintf(&sb, `<w:docDefaults><w:rPrDefault><w:rPr>`+
		`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`+
		`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`+
		`</w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults>`,
		esc(d.DefaultFont), esc(d.DefaultFont), esc(d.DefaultFont), d.DefaultSize, d.DefaultSize)

	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)
	sb.WriteString(`<w:style w:type="paragraph" w:styleId="ListParagraph">` +
		`<w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:ind w:left="720"/><w:contextualSpacing/></w:pPr>` +
		`</w:style>`)

	// 近似 Word 内置 Light Grid Accent 1 的浅色网格
	sb.WriteString(`<w:style w:type="table" w:styleId="LightGridAccent1">` +
		`<w:name w:val="Light Grid Accent 1"/>` +
		`<w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="6" w:space="0" w:color="4F81BD"/>` +
		`<w:left w:val="single" w:sz="6" w:space="0" w:color="4F81BD"/>` +
		`<w:bottom w:val="single" w:sz="6" w:space="0" w:color="4F81BD"/>` +
		`<w:right w:val="single" w:sz="6" w:space="0" w:color="4F81BD"/>` +
		`<w:insideH w:val="single" w:sz="6" w:space="0" w:color="4F81BD"/>` +
		`<w:insideV w:val="single" w:sz="6" w:space="0" w:color="4F81BD"/>` +
		`</w:tblBorders></w:tblPr>` +
		`</w:style>`)

	sb.WriteString("</w:styles>")
	return sb.String()
}

// Bytes 将文档打包为 .docx 字节流，全程在内存中完成
func (d *Document) Bytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", d.documentXML()},
		{"word/styles.xml", d.stylesXML()},
		{"word/numbering.xml", numberingXML},
		{"word/header1.xml", d.headerXML()},
		{"word/footer1.xml", d.footerXML()},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("创建文档部件 %s 失败: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("写入文档部件 %s 失败: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("关闭文档容器失败: %w", err)
	}
	return buf.Bytes(), nil
}
