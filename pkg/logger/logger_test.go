package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Output: &buf, NoColor: true})
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	l.Info("Test info message", "TEST")
	l.Warn("Test warning message", "TEST")
	l.Debug("Test debug message", "TEST")
	l.System("Test system message", "TEST")
	l.Success("Test success message", "TEST")

	out := buf.String()
	assert.Contains(t, out, "[INFO] [TEST]: Test info message")
	assert.Contains(t, out, "[WARN] [TEST]: Test warning message")
	assert.Contains(t, out, "[DEBUG] [TEST]: Test debug message")
	assert.Contains(t, out, "[SYSTEM] [TEST]: Test system message")
	assert.Contains(t, out, "[SUCCESS] [TEST]: Test success message")

	l.Close()
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogLevelDiscordColor(t *testing.T) {
	tests := []struct {
		level LogLevel
		color int
	}{
		{LevelCritical, 0xFF0000},
		{LevelError, 0xFF0000},
		{LevelWarn, 0xFFFF00},
		{LevelSuccess, 0x00FF00},
		{LevelInfo, 0x0000FF},
		{LevelDebug, 0x800080},
		{LevelSystem, 0x808080},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.DiscordColor(); got != tt.color {
				t.Errorf("LogLevel.DiscordColor() = %v, want %v", got, tt.color)
			}
		})
	}
}

func TestColorsOnConsole(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Output: &buf})

	l.Error("boom", "TEST")

	assert.Contains(t, buf.String(), LevelError.Color()+"ERROR"+colorReset)
}

func TestLogFileCreation(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")

	l := NewLogger(Options{Dir: logsDir, Output: &bytes.Buffer{}})

	l.Info("to combined", "TEST")
	l.Error("to both", "TEST")
	l.Close()

	combined, err := os.ReadFile(filepath.Join(logsDir, "combined.log"))
	require.NoError(t, err)
	errorLog, err := os.ReadFile(filepath.Join(logsDir, "error.log"))
	require.NoError(t, err)

	assert.Contains(t, string(combined), "to combined")
	assert.Contains(t, string(combined), "to both")
	assert.NotContains(t, string(errorLog), "to combined")
	assert.Contains(t, string(errorLog), "[ERROR] [TEST]: to both")
	assert.False(t, strings.Contains(string(combined), "\033["), "file output must not carry colors")
}

func TestWebhookRouting(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	l := NewLogger(Options{
		Output:          &bytes.Buffer{},
		ErrorWebhookURL: srv.URL + "/errors",
		LogsWebhookURL:  srv.URL + "/logs",
	})

	l.Error("failure", "TEST")
	l.Info("note", "TEST")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return hits["/errors"] == 1 && hits["/logs"] == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGlobalLoggerInit(t *testing.T) {
	logger = nil
	once = sync.Once{}

	l := Init(Options{Output: &bytes.Buffer{}})
	if l == nil {
		t.Fatal("Expected Init to return a logger")
	}

	l2 := Init(Options{Dir: "ignored"})
	if l != l2 {
		t.Error("Expected Init to return the same logger on subsequent calls")
	}

	l3 := Get()
	if l != l3 {
		t.Error("Expected Get to return the same logger")
	}

	l.Close()
}
