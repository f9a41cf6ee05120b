package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testConfig 构造指向测试服务器的运行配置
func testConfig(apiURL string, preferred []string) Config {
	return Config{
		APIKey:             "test-key",
		APIURL:             apiURL,
		PreferredModels:    preferred,
		HTTPClientSettings: DefaultHTTPClientSettings(),
	}
}

// TestRunSelectsPreferredModel 测试完整流水线：获取 → 选择
func TestRunSelectsPreferredModel(t *testing.T) {
	body := `{"object":"list","data":[{"id":"C"},{"id":"B"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cfg := testConfig(server.URL, []string{"A", "B", "C"})
	chosen, err := run(cfg, server.Client(), testLogger())
	if err != nil {
		t.Fatalf("期望成功，实际错误: %v", err)
	}

	// 偏好顺序决定结果：B 在偏好列表中先于 C，即使 C 在可用列表中排前面
	if chosen != "B" {
		t.Errorf("期望 'B'，实际 '%s'", chosen)
	}
}

// TestRunNoCompatibleModel 测试无交集时返回 NO_COMPATIBLE_MODEL
func TestRunNoCompatibleModel(t *testing.T) {
	body := `{"object":"list","data":[{"id":"X"},{"id":"Y"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cfg := testConfig(server.URL, []string{"A", "B", "C"})
	_, err := run(cfg, server.Client(), testLogger())
	if err == nil {
		t.Fatal("期望错误，实际成功")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("期望 *AppError，实际 %T", err)
	}
	if appErr.Code != ErrCodeNoCompatibleModel {
		t.Errorf("期望错误码 %s，实际 %s", ErrCodeNoCompatibleModel, appErr.Code)
	}
}

// TestRunPropagatesFetchError 测试获取阶段的错误直接上抛
func TestRunPropagatesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL, []string{"A"})
	_, err := run(cfg, server.Client(), testLogger())
	if err == nil {
		t.Fatal("期望错误，实际成功")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("期望 *AppError，实际 %T", err)
	}
	if appErr.Code != ErrCodeHTTPError {
		t.Errorf("期望错误码 %s，实际 %s", ErrCodeHTTPError, appErr.Code)
	}
}

// TestRunThenApplyEndToEnd 测试选择结果应用到环境的端到端流程
func TestRunThenApplyEndToEnd(t *testing.T) {
	body := `{"object":"list","data":[{"id":"llama-3.3-70b-versatile"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cfg := testConfig(server.URL, defaultPreferredModels)
	chosen, err := run(cfg, server.Client(), testLogger())
	if err != nil {
		t.Fatalf("期望成功，实际错误: %v", err)
	}

	env := newFakeEnvironment()
	ensureEnvModel(env, testLogger(), chosen)

	if got := env.values[EnvGroqChatModel]; got != "llama-3.3-70b-versatile" {
		t.Errorf("期望 'llama-3.3-70b-versatile'，实际 '%s'", got)
	}

	// 选中的模型必须同时属于偏好列表和可用列表
	found := false
	for _, model := range cfg.PreferredModels {
		if model == chosen {
			found = true
		}
	}
	if !found {
		t.Errorf("选中的模型 '%s' 不在偏好列表中", chosen)
	}
}
