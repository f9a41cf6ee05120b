package main

import (
	"fmt"
)

// ==================== 错误码常量 ====================

const (
	// 配置相关错误码
	ErrCodeMissingCredential = "MISSING_CREDENTIAL"

	// 请求相关错误码
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeHTTPError    = "HTTP_ERROR"
	ErrCodeParseError   = "PARSE_ERROR"

	// 选择相关错误码
	ErrCodeNoCompatibleModel = "NO_COMPATIBLE_MODEL"
)

// ==================== AppError - 统一错误类型 ====================

// AppError 应用错误结构
// 提供统一的错误处理机制，包含错误码、消息和底层原因
type AppError struct {
	Code    string // 错误码（用于识别错误类型）
	Message string // 人类可读的错误消息
	Cause   error  // 底层原因（可选）
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 支持 Go 1.13+ 的 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ==================== 错误构造函数 ====================

// NewAppError 创建新的应用错误
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorf 创建新的应用错误（带格式化消息）
func NewAppErrorf(code string, cause error, format string, args ...any) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// ==================== 配置错误 ====================

// ErrMissingCredential 缺少 API 凭证错误
// 在任何网络调用发起之前返回
func ErrMissingCredential() *AppError {
	return NewAppErrorf(
		ErrCodeMissingCredential,
		nil,
		"%s is not set",
		EnvGroqAPIKey,
	)
}

// ==================== 请求错误 ====================

// ErrNetwork 连接级失败错误（不重试，直接上抛）
func ErrNetwork(cause error) *AppError {
	return NewAppError(
		ErrCodeNetworkError,
		"Failed to reach the Groq models endpoint",
		cause,
	)
}

// ErrHTTP 非成功状态码错误，响应体保留用于诊断
func ErrHTTP(statusCode int, body string) *AppError {
	return NewAppErrorf(
		ErrCodeHTTPError,
		nil,
		"Models endpoint returned status %d: %s",
		statusCode, body,
	)
}

// ErrParse 响应体解析失败错误
func ErrParse(cause error) *AppError {
	return NewAppError(
		ErrCodeParseError,
		"Failed to parse models response",
		cause,
	)
}

// ==================== 选择错误 ====================

// ErrNoCompatibleModel 偏好列表与可用列表无交集错误
// 消息同时列出两个列表，便于诊断
func ErrNoCompatibleModel(preferred, available []string) *AppError {
	return NewAppErrorf(
		ErrCodeNoCompatibleModel,
		nil,
		"None of the preferred models %v is available. Models returned by Groq: %v",
		preferred, available,
	)
}
