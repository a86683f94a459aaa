package logger

import (
	"os"
	"strings"

	"github.com/SketchShifter/sample_app_backend/internal/config"

	"github.com/sirupsen/logrus"
)

// InitLogger logrus の出力形式とレベルを設定
func InitLogger(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("不明なログレベルです (%s)、info を使用します", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(cfg.ReportCaller)

	logrus.Debug("Logger initialized")
}
