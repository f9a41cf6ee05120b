package main

import (
	"io"
	"log"
	"os"
)

// ==================== Logger接口定义 ====================

// Logger 日志接口
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// ==================== AppLogger实现 ====================

// AppLogger 应用日志实现
// 支持调试模式切换，输出带时间戳的分级日志行
type AppLogger struct {
	logger *log.Logger
	debug  bool
}

// NewAppLoggerWithConfig 创建带配置的日志实例
// 支持依赖注入，完全避免全局状态
func NewAppLoggerWithConfig(output io.Writer, debugMode bool) *AppLogger {
	return &AppLogger{
		logger: log.New(output, "", log.LstdFlags),
		debug:  debugMode,
	}
}

// Debug 输出调试日志（仅在debug模式下）
func (l *AppLogger) Debug(format string, args ...any) {
	if l != nil && l.debug {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

// Info 输出信息日志
func (l *AppLogger) Info(format string, args ...any) {
	if l != nil {
		l.logger.Printf("[INFO] "+format, args...)
	}
}

// Warn 输出警告日志
func (l *AppLogger) Warn(format string, args ...any) {
	if l != nil {
		l.logger.Printf("[WARN] "+format, args...)
	}
}

// Error 输出错误日志
func (l *AppLogger) Error(format string, args ...any) {
	if l != nil {
		l.logger.Printf("[ERROR] "+format, args...)
	}
}

// ==================== 私有辅助函数 ====================

// IsDebug 返回应用是否运行在调试模式
// 由 DEBUG 环境变量控制
func IsDebug() bool {
	switch os.Getenv("DEBUG") {
	case "1", "true", "TRUE", "True":
		return true
	}
	return false
}

// ==================== 全局日志实例 ====================
// 用于辅助模块的便捷日志输出
// 核心流程（fetch/select/apply）通过依赖注入接收 Logger

// defaultLogger 是全局日志实例，输出到标准错误
var defaultLogger = NewAppLoggerWithConfig(os.Stderr, IsDebug())

// ==================== 全局日志函数 ====================

// Debug 全局调试日志函数
func Debug(format string, args ...any) {
	defaultLogger.Debug(format, args...)
}

// Info 全局信息日志函数
func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

// Warn 全局警告日志函数
func Warn(format string, args ...any) {
	defaultLogger.Warn(format, args...)
}

// Error 全局错误日志函数
func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}
