package service

import (
	"strings"
	"time"
)

// Filename 下载文件名：项目名空格转下划线、剥离不安全字符、
// 截断到前 30 个字符，再拼接 YYYYMMDD 提案日期。
func Filename(projectName string, date time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(projectName), " ", "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, name)

	runes := []rune(name)
	if len(runes) > 30 {
		runes = runes[:30]
	}

	return "Proposal_" + string(runes) + "_" + date.Format("20060102") + ".docx"
}
