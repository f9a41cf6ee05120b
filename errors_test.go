package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestAppErrorFormat 测试错误消息格式
func TestAppErrorFormat(t *testing.T) {
	// 无底层原因
	err := NewAppError(ErrCodeMissingCredential, "GROQ_API_KEY is not set", nil)
	expected := "[MISSING_CREDENTIAL] GROQ_API_KEY is not set"
	if err.Error() != expected {
		t.Errorf("期望 '%s'，实际 '%s'", expected, err.Error())
	}

	// 带底层原因
	cause := fmt.Errorf("connection refused")
	err = NewAppError(ErrCodeNetworkError, "Failed to reach the Groq models endpoint", cause)
	if !strings.Contains(err.Error(), "NETWORK_ERROR") ||
		!strings.Contains(err.Error(), "connection refused") {
		t.Errorf("错误消息应包含错误码和底层原因，实际: %s", err.Error())
	}
}

// TestAppErrorUnwrap 测试底层原因可通过 errors.Unwrap 取出
func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := ErrParse(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is 应能匹配底层原因")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("期望底层原因 %v，实际 %v", cause, errors.Unwrap(err))
	}
}

// TestErrNoCompatibleModelMessage 测试错误消息同时包含两个列表
func TestErrNoCompatibleModelMessage(t *testing.T) {
	preferred := []string{"A", "B", "C"}
	available := []string{"X", "Y"}

	err := ErrNoCompatibleModel(preferred, available)

	if err.Code != ErrCodeNoCompatibleModel {
		t.Errorf("期望错误码 %s，实际 %s", ErrCodeNoCompatibleModel, err.Code)
	}
	for _, model := range append(preferred, available...) {
		if !strings.Contains(err.Message, model) {
			t.Errorf("诊断消息应包含 '%s'，实际: %s", model, err.Message)
		}
	}
}

// TestErrHTTPCapturesBody 测试 HTTP 错误保留状态码和响应体
func TestErrHTTPCapturesBody(t *testing.T) {
	err := ErrHTTP(429, `{"error":"rate limited"}`)

	if !strings.Contains(err.Message, "429") {
		t.Errorf("消息应包含状态码，实际: %s", err.Message)
	}
	if !strings.Contains(err.Message, "rate limited") {
		t.Errorf("消息应包含响应体，实际: %s", err.Message)
	}
}
