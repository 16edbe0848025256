package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

func TestConsoleLogger(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{"verbose enabled", true, func(l *ConsoleLogger) { l.Verbose("test message: %s", "value") }, "[VERBOSE] test message: value\n"},
		{"verbose disabled", false, func(l *ConsoleLogger) { l.Verbose("test message: %s", "value") }, ""},
		{"info", false, func(l *ConsoleLogger) { l.Info("info message: %s", "value") }, "info message: value\n"},
		{"error", false, func(l *ConsoleLogger) { l.Error("error message: %s", "value") }, "[ERROR] error message: value\n"},
		{"no args keeps percent", false, func(l *ConsoleLogger) { l.Info("100% done") }, "100% done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, tt.verbose))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.Info("line %d", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 50)
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		records = append(records, rec)
	}
	return records
}

func TestZapLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLoggerTo(&buf, false)

	logger.Verbose("hidden %d", 1)
	logger.Info("rendered %s", "telemetry")
	logger.Error("failed: %v", errors.New("boom"))
	require.NoError(t, logger.Sync())

	records := decodeRecords(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "info", records[0]["level"])
	assert.Equal(t, "rendered telemetry", records[0]["msg"])
	assert.Equal(t, "glamgen", records[0]["logger"])
	assert.Equal(t, "error", records[1]["level"])
	assert.Equal(t, "failed: boom", records[1]["msg"])
}

func TestZapLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLoggerTo(&buf, true)
	logger.Verbose("resolving %s", "glam/clients_scalar_aggregates_v1.sql")

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "debug", records[0]["level"])
	assert.Equal(t, "resolving glam/clients_scalar_aggregates_v1.sql", records[0]["msg"])
}

func TestNew(t *testing.T) {
	l, err := New(io.Discard, "", false)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleLogger{}, l)

	l, err = New(io.Discard, FormatJSON, true)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	_, err = New(io.Discard, "xml", false)
	assert.True(t, errors.Is(err, glamgen.ErrInvalidConfig))
}

func ExampleNewConsoleLoggerTo() {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)
	logger.Info("wrote %s", "sql/telemetry_derived/clients_scalar_aggregates_v1/query.sql")
	logger.Verbose("not shown")
	fmt.Print(buf.String())
	// Output: wrote sql/telemetry_derived/clients_scalar_aggregates_v1/query.sql
}

func TestNullLogger(t *testing.T) {
	var l glamgen.Logger = NewNullLogger()
	assert.NotPanics(t, func() {
		l.Verbose("v %d", 1)
		l.Info("i")
		l.Error("e %s", "x")
	})
}
