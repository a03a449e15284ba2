package catalog

// 表单县选择器的候选项
var floridaCounties = []string{
	"Pinellas", "Hillsborough", "Pasco", "Manatee", "Sarasota", "Polk",
}

// civilPermitDefaults 县 → 默认审批机构（AHJ）名单。
// 用户可在表单中覆盖，未覆盖时按县取默认值。
var civilPermitDefaults = map[string][]string{
	"Pinellas": {
		"Pinellas County Site Development Permit",
		"Southwest Florida Water Management District Environmental Resource Permit",
		"City of St. Petersburg Water Resources Construction Plan Approval",
	},
	"Hillsborough": {
		"Hillsborough County Site Development Permit",
		"Southwest Florida Water Management District Environmental Resource Permit – Minor Modification",
		"City of Tampa Water Department Commitment / Construction Plan Approval",
		"Hillsborough County Environmental Protection Commission",
	},
	"Pasco": {
		"Pasco County Site Development Permit",
		"Southwest Florida Water Management District Environmental Resource Permit",
	},
	"Manatee": {
		"Manatee County Site Development Permit",
		"Southwest Florida Water Management District Environmental Resource Permit",
	},
	"Sarasota": {
		"Sarasota County Site Development Permit",
		"Southwest Florida Water Management District Environmental Resource Permit",
	},
	"Polk": {
		"Polk County Site Development Permit",
		"Southwest Florida Water Management District Environmental Resource Permit",
	},
}
