package main

import (
	"os"
	"strings"
)

// ============================================================================
// 环境和配置工具
// ============================================================================

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseEnvList 解析逗号分隔的环境变量为去空格的切片
func parseEnvList(envVar string) []string {
	if envVar == "" {
		return nil
	}
	parts := strings.Split(envVar, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ============================================================================
// 凭证显示工具
// ============================================================================

// truncateString 截断字符串并在中间添加替换文本
func truncateString(s string, prefixLen, suffixLen int, replacement string) string {
	if len(s) > prefixLen+suffixLen {
		return s[:prefixLen] + replacement + s[len(s)-suffixLen:]
	}
	return s
}

// getKeyDisplayName 获取 API 凭证的显示名称（用于日志，避免泄露完整凭证）
func getKeyDisplayName(apiKey string) string {
	if apiKey == "" {
		return "Key Unknown"
	}
	return truncateString(apiKey, 4, 4, "...")
}
