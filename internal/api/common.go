// File: internal/api/common.go
package api

import (
	"strings"
	"time"
)

// ErrorResponse 統一的錯誤回應格式
type ErrorResponse struct {
	Message string `json:"message" example:"resource not found"`
}

// MessageResponse 僅帶訊息的成功回應
type MessageResponse struct {
	Message string `json:"message" example:"password changed"`
}

// HealthResponse 健康檢查回應
type HealthResponse struct {
	Status    string            `json:"status" example:"Healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// CategoryCountResponse 分類統計的單列
type CategoryCountResponse struct {
	Category string `json:"category" example:"Leadership"`
	Count    int    `json:"count" example:"3"`
}

// splitTags 把逗號分隔的標籤字串拆成清單，去除空白與空項
func splitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// joinTags 把標籤清單組回逗號分隔字串
func joinTags(tags []string) string {
	cleaned := []string{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, ",")
}
