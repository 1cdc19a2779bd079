package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config 定義 log 行為
type Config struct {
	// Level: "debug", "info", "warn", "error"
	Level string `yaml:"level"`
	// File: 檔案路徑，留空表示只輸出到 stdout
	File string `yaml:"file"`
	// MaxSizeMB: 單一 log 檔上限 (MB)，超過就輪替
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxBackups: 保留幾個舊檔
	MaxBackups int `yaml:"max_backups"`
	// MaxAgeDays: 舊檔保留天數
	MaxAgeDays int `yaml:"max_age_days"`
}

// Setup 設定全域 logrus
// 有指定檔案時同時輸出 stdout 與輪替檔案 (lumberjack)
func Setup(cfg Config) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if cfg.File == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    orDefault(cfg.MaxSizeMB, 100),
		MaxBackups: orDefault(cfg.MaxBackups, 5),
		MaxAge:     orDefault(cfg.MaxAgeDays, 14),
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotator))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
