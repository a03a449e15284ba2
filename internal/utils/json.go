package utils

import (
	"encoding/json"

	"k8s.io/klog/v2"
)

// ToJSON 序列化为 JSON 字符串，仅用于日志输出
func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("JSON序列化失败: %v", err)
		return ""
	}
	return string(jsonData)
}
