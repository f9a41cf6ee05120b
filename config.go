package main

import (
	"os"
	"time"
)

// ==================== 配置结构定义 ====================

// Config 运行配置
// 启动时从环境变量加载一次，之后在进程生命周期内不变
// 核心流程只依赖该结构，不再隐式读取进程环境（便于独立测试）
type Config struct {
	APIKey             string   // Groq API 凭证
	APIURL             string   // 模型列表端点
	PreferredModels    []string // 偏好模型列表，优先级从高到低
	HTTPClientSettings HTTPClientSettings
}

// HTTPClientSettings HTTP客户端配置
type HTTPClientSettings struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	RequestTimeout      time.Duration
}

// DefaultHTTPClientSettings 默认HTTP客户端配置
func DefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		MaxIdleConns:        HTTPMaxIdleConns,
		MaxIdleConnsPerHost: HTTPMaxIdleConnsPerHost,
		IdleConnTimeout:     HTTPIdleConnTimeout,
		TLSHandshakeTimeout: HTTPTLSHandshakeTimeout,
		RequestTimeout:      HTTPRequestTimeout,
	}
}

// ==================== 配置加载 ====================

// LoadConfigFromEnv 从环境变量加载运行配置
// GROQ_API_KEY 缺失时返回 MISSING_CREDENTIAL 错误，不发起任何网络调用
func LoadConfigFromEnv() (Config, error) {
	apiKey := os.Getenv(EnvGroqAPIKey)
	if apiKey == "" {
		return Config{}, ErrMissingCredential()
	}

	preferred := parseEnvList(os.Getenv(EnvGroqPreferredModels))
	if len(preferred) == 0 {
		preferred = defaultPreferredModels
	} else {
		Info("Preferred model list overridden via %s: %v", EnvGroqPreferredModels, preferred)
	}

	config := Config{
		APIKey:             apiKey,
		APIURL:             getEnvWithDefault(EnvGroqAPIURL, DefaultGroqAPIURL),
		PreferredModels:    preferred,
		HTTPClientSettings: DefaultHTTPClientSettings(),
	}

	return config, nil
}
