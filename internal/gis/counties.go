package gis

import (
	"strings"

	"github.com/proposalforge/backend/config"
)

// countyQuery 一个县的查询定义：服务地址、宗地号字段、
// 宗地号归一化规则、属性字段映射。没有通用 schema，
// 每个县的字段名都要显式列出。
type countyQuery struct {
	url       string
	field     string
	normalize func(string) string
	mapAttrs  func(map[string]any) *PropertyRecord
}

func countyQueries(cfg *config.Config) map[string]countyQuery {
	return map[string]countyQuery{
		"pinellas": {
			url:   cfg.GIS.PinellasURL,
			field: "PARCELNO",
			// Pinellas 的 FOLIO 形如 12-34-56-78900-000-0000，查询时去掉分隔符
			normalize: func(s string) string {
				s = strings.TrimSpace(s)
				s = strings.ReplaceAll(s, "-", "")
				s = strings.ReplaceAll(s, "/", "")
				return strings.ReplaceAll(s, " ", "")
			},
			mapAttrs: func(attrs map[string]any) *PropertyRecord {
				return &PropertyRecord{
					Address: attrString(attrs, "SITE_ADDR"),
					City:    attrString(attrs, "SITE_CITY"),
					Zip:     attrString(attrs, "SITE_ZIP"),
					Owner:   attrString(attrs, "OWNER1"),
					LandUse: attrString(attrs, "LANDUSE_DESC"),
					Zoning:  attrString(attrs, "ZONING"),
				}
			},
		},
		"hillsborough": {
			url:   cfg.GIS.HillsboroughURL,
			field: "PIN",
			normalize: func(s string) string {
				return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
			},
			mapAttrs: func(attrs map[string]any) *PropertyRecord {
				return &PropertyRecord{
					Address: attrString(attrs, "SITE_ADDRESS"),
					City:    attrString(attrs, "SITE_CITY"),
					Zip:     attrString(attrs, "SITE_ZIP"),
					Owner:   attrString(attrs, "OWNER_NAME"),
					LandUse: attrString(attrs, "DOR_DESC"),
					Zoning:  attrString(attrs, "ZONE_DESC"),
				}
			},
		},
	}
}
