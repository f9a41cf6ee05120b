package main

import (
	"errors"
	"os"
	"os/exec"
)

// ==================== 环境抽象 ====================

// Environment 进程环境变量读写接口
// 核心流程只依赖该接口，真实环境仅在入口处注入（便于独立测试）
type Environment interface {
	Getenv(key string) string
	Setenv(key, value string) error
}

// osEnvironment 基于 os 包的真实环境实现
type osEnvironment struct{}

func (osEnvironment) Getenv(key string) string       { return os.Getenv(key) }
func (osEnvironment) Setenv(key, value string) error { return os.Setenv(key, value) }

// OSEnvironment 返回真实进程环境
func OSEnvironment() Environment {
	return osEnvironment{}
}

// ==================== 模型应用 ====================

// ensureEnvModel 将选中的模型写入 GROQ_CHAT_MODEL
// 幂等的比较-设置：当前值已一致时记录无需变更并直接返回
func ensureEnvModel(env Environment, logger Logger, model string) {
	current := env.Getenv(EnvGroqChatModel)

	if current == model {
		logger.Info("%s already set to %s", EnvGroqChatModel, current)
		return
	}

	// 进程内环境写入不会失败，忽略的返回值只为满足接口
	_ = env.Setenv(EnvGroqChatModel, model)
	logger.Info("%s updated to %s", EnvGroqChatModel, model)
}

// ==================== 子命令执行 ====================

// runChildCommand 在更新后的环境下执行子命令，返回其退出码
// 标准输入输出直接透传；设置只对当前进程及其子进程可见，
// 这是把选择结果交给实际使用者的方式
func runChildCommand(name string, args []string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		Error("Failed to run command %s: %v", name, err)
		return 1
	}
	return 0
}
