package catalog

import "strings"

// 历史版本用字符串形状推断行类型，这里保留同一套规则，
// 但只在构建目录时执行一次，运行期渲染是纯查表。
// 前 11 个民用关键字不可增删改序，既有提案文档依赖其精确
// 匹配结果；MEP 目录的关键字只允许追加在末尾。
var subSectionKeywords = []string{
	"cover sheet", "utility plan", "site layout", "site plan",
	"grading plan", "drainage plan", "paving", "erosion control",
	"detail", "existing conditions", "demolition",
	"mechanical schedule", "electrical schedule", "plumbing schedule",
	"riser diagram", "panel schedule",
}

const (
	notePrefix = "NOTE:"
	boldPrefix = "BOLD:"
)

// ClassifyLine 将一条纯文本描述行打上显式渲染标记
func ClassifyLine(text string) Line {
	if rest, ok := strings.CutPrefix(text, notePrefix); ok {
		return Line{Text: "Note:" + rest, Kind: LineNote}
	}
	if rest, ok := strings.CutPrefix(text, boldPrefix); ok {
		return Line{Text: strings.TrimSpace(rest), Kind: LineBold}
	}
	if isSubSection(text) {
		return Line{Text: text, Kind: LineHeading}
	}
	return Line{Text: text, Kind: LineBody}
}

// isSubSection 短行 + 命中关键字 + 不以句点结尾
func isSubSection(text string) bool {
	if len(text) >= 100 || strings.HasSuffix(text, ".") {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range subSectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// tagLines 批量打标，目录构建时使用
func tagLines(texts ...string) []Line {
	lines := make([]Line, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, ClassifyLine(t))
	}
	return lines
}
