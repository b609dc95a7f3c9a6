package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*logrus.Logger
	fileLogger *logrus.Logger
}

var defaultLogger *Logger

func init() {
	// 控制台日志配置
	consoleLogger := logrus.New()
	consoleLogger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	consoleLogger.SetOutput(os.Stderr)
	consoleLogger.SetLevel(logrus.InfoLevel)

	// 文件日志在 Setup 之前丢弃输出，避免导入时创建目录
	fileLogger := logrus.New()
	fileLogger.SetFormatter(&logrus.JSONFormatter{
		PrettyPrint:     false,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	fileLogger.SetOutput(io.Discard)
	fileLogger.SetLevel(logrus.InfoLevel)

	defaultLogger = &Logger{
		Logger:     consoleLogger,
		fileLogger: fileLogger,
	}
}

// Setup 根据配置设置日志级别，并启用轮转的文件日志
func Setup(c config.Log) error {
	level, err := logrus.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return err
	}
	defaultLogger.Logger.SetLevel(level)
	defaultLogger.fileLogger.SetLevel(level)

	// 创建日志目录
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return err
	}

	// 使用lumberjack进行日志轮转
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(c.Dir, c.File),
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   true,
	}
	defaultLogger.fileLogger.SetOutput(logFile)
	return nil
}

// SetConsoleOutput 替换控制台输出，CLI 静默模式和测试使用
func SetConsoleOutput(w io.Writer) {
	defaultLogger.Logger.SetOutput(w)
}

func Infof(format string, args ...any) {
	defaultLogger.Logger.Infof(format, args...)
	defaultLogger.fileLogger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	defaultLogger.Logger.Warnf(format, args...)
	defaultLogger.fileLogger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	defaultLogger.Logger.Errorf(format, args...)
	defaultLogger.fileLogger.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	defaultLogger.fileLogger.Errorf(format, args...)
	defaultLogger.Logger.Fatalf(format, args...)
}

func Debugf(format string, args ...any) {
	defaultLogger.Logger.Debugf(format, args...)
	defaultLogger.fileLogger.Debugf(format, args...)
}
