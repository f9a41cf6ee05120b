package main

import "time"

// ==================== Groq API 相关常量 ====================

const (
	// DefaultGroqAPIURL Groq 模型列表端点（OpenAI 兼容格式）
	DefaultGroqAPIURL = "https://api.groq.com/openai/v1/models"

	// HeaderContentType Content-Type 请求头名称
	HeaderContentType = "Content-Type"

	// ContentTypeJSON JSON 内容类型
	ContentTypeJSON = "application/json"

	// AuthBearerPrefix Authorization 头的 Bearer 前缀
	AuthBearerPrefix = "Bearer "
)

// ==================== 环境变量名常量 ====================

const (
	// EnvGroqAPIKey API 凭证环境变量（必需）
	EnvGroqAPIKey = "GROQ_API_KEY"

	// EnvGroqChatModel 当前配置的聊天模型环境变量（读取+写入）
	EnvGroqChatModel = "GROQ_CHAT_MODEL"

	// EnvGroqAPIURL 模型列表端点覆盖（可选）
	EnvGroqAPIURL = "GROQ_API_URL"

	// EnvGroqPreferredModels 偏好模型列表覆盖，逗号分隔（可选）
	EnvGroqPreferredModels = "GROQ_PREFERRED_MODELS"
)

// ==================== HTTP 客户端配置常量 ====================

const (
	// HTTPMaxIdleConns HTTP客户端最大空闲连接数
	HTTPMaxIdleConns = 10

	// HTTPMaxIdleConnsPerHost 每个主机最大空闲连接数
	HTTPMaxIdleConnsPerHost = 2

	// HTTPIdleConnTimeout 空闲连接超时时间
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPTLSHandshakeTimeout TLS握手超时时间
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPRequestTimeout HTTP请求总超时时间
	HTTPRequestTimeout = 30 * time.Second
)

// ==================== 默认偏好模型列表 ====================

// defaultPreferredModels 内置偏好模型列表，优先级从高到低
// 可通过 GROQ_PREFERRED_MODELS 环境变量覆盖
var defaultPreferredModels = []string{
	"llama-3.3-70b-versatile", // 主推模型
	"llama-3.1-8b-instant",    // 快速回退
	"qwen/qwen3-32b",          // 额外回退
}
