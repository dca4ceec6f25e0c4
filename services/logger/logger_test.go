package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestNamedLoggerPrefix(t *testing.T) {
	buf := captureOutput(t)

	l := NewDefaultLogger(InfoLevel).Named("chat-service")
	l.Info("đã gom %d message", 3)

	assert.Contains(t, buf.String(), "[INFO] [chat-service] đã gom 3 message")
}

func TestLoggerLevelFiltering(t *testing.T) {
	buf := captureOutput(t)

	l := NewDefaultLogger(ErrorLevel)
	l.Debug("không được ghi")
	l.Info("không được ghi")
	assert.Empty(t, buf.String())

	l.Error("lỗi ghi chat record")
	assert.Contains(t, buf.String(), "[ERROR] lỗi ghi chat record")
}
