package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// run 执行 Fetcher → Selector 流水线并返回选中的模型
// 不触碰进程环境：配置由调用方传入，结果由调用方应用（便于独立测试）
func run(cfg Config, client *http.Client, logger Logger) (string, error) {
	logger.Info("Fetching available Groq models...")
	available, err := fetchAvailableModels(client, logger, cfg.APIURL, cfg.APIKey)
	if err != nil {
		return "", err
	}

	chosen, found := selectCompatibleModel(logger, cfg.PreferredModels, available)
	if !found {
		return "", ErrNoCompatibleModel(cfg.PreferredModels, available)
	}

	return chosen, nil
}

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using system environment variables")
	}

	logger := NewAppLoggerWithConfig(os.Stderr, IsDebug())

	config, err := LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to configure Groq model: %v", err)
		os.Exit(1)
	}

	client := createTunedHTTPClient(config.HTTPClientSettings)

	chosen, err := run(config, client, logger)
	if err != nil {
		logger.Error("Failed to configure Groq model: %v", err)
		os.Exit(1)
	}

	ensureEnvModel(OSEnvironment(), logger, chosen)
	logger.Info("Groq chat model configured successfully")

	// 带子命令时在更新后的环境下执行它，退出码透传
	if args := os.Args[1:]; len(args) > 0 {
		os.Exit(runChildCommand(args[0], args[1:]))
	}
}
