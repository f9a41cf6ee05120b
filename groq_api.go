package main

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// ==================== HTTP 客户端构造 ====================

// createTunedHTTPClient 创建带连接和超时配置的 HTTP 客户端
func createTunedHTTPClient(settings HTTPClientSettings) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        settings.MaxIdleConns,
		MaxIdleConnsPerHost: settings.MaxIdleConnsPerHost,
		IdleConnTimeout:     settings.IdleConnTimeout,
		TLSHandshakeTimeout: settings.TLSHandshakeTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   settings.RequestTimeout,
	}
}

// ==================== 请求构造 ====================

// createGroqRequest 创建 Groq API HTTP 请求，设置标准头部
func createGroqRequest(method, url, apiKey string) (*http.Request, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set("Authorization", AuthBearerPrefix+apiKey)

	return req, nil
}

// ==================== 模型列表获取 ====================

// fetchAvailableModels 从 Groq API 获取当前可用的模型标识符列表
// 单次 GET，失败不重试，按错误类别上抛：
//   - NETWORK_ERROR：连接建立失败或传输中断
//   - HTTP_ERROR：非 2xx 状态码，响应体保留在错误消息中
//   - PARSE_ERROR：响应体不是合法 JSON
func fetchAvailableModels(client *http.Client, logger Logger, apiURL, apiKey string) ([]string, error) {
	req, err := createGroqRequest(http.MethodGet, apiURL, apiKey)
	if err != nil {
		return nil, ErrNetwork(err)
	}

	logger.Debug("Fetching models from %s with key %s", apiURL, getKeyDisplayName(apiKey))

	resp, err := client.Do(req)
	if err != nil {
		return nil, ErrNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, ErrHTTP(resp.StatusCode, string(body))
	}

	var modelList ModelList
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&modelList); err != nil {
		return nil, ErrParse(err)
	}

	models := modelList.ModelIDs()
	logger.Info("Fetched models: %v", models)
	return models, nil
}
