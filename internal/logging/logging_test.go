package logging

import (
	"testing"
	"time"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogConfig(level string) config.LogConfig {
	return config.LogConfig{Level: level, ErrorFile: "logs/feed-errors.log"}
}

func TestLineFormatter(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Message: "Shopify fetch failed, returning empty feed: boom",
	}

	out, err := (&lineFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[2025-03-14 09:26:53] Shopify fetch failed, returning empty feed: boom\n", string(out))
}

func TestSetup_Level(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	Setup(testLogConfig("debug"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	// Unknown levels fall back to info.
	Setup(testLogConfig("chatty"))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}
