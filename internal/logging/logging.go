package logging

import (
	"fmt"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the application logger.
func Setup(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// NewFeedErrorLog returns the append-only error log the feed writes fetch
// failures to. Entries are one timestamped line each; lumberjack rotates the
// file so it cannot grow without bound.
func NewFeedErrorLog(cfg config.LogConfig) *log.Logger {
	logger := log.New()
	logger.SetLevel(log.ErrorLevel)
	logger.SetFormatter(&lineFormatter{})
	logger.SetOutput(&lumberjack.Logger{
		Filename:   cfg.ErrorFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	})
	return logger
}

// lineFormatter renders "[2006-01-02 15:04:05] message" lines.
type lineFormatter struct{}

func (f *lineFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", entry.Time.Format("2006-01-02 15:04:05"), entry.Message)), nil
}
