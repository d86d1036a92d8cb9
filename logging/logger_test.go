package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/logging"
)

func TestNoopLogger_Disabled(t *testing.T) {
	l := logging.NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, logging.OrNoop(nil))
	assert.Same(t, l, logging.OrNoop(l))
}

func TestJSONLogger_Stage(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewJSONLogger(&buf, slog.LevelDebug).WithComponent("reduce").WithPersistence(0.5)

	l.LogStage(context.Background(), "reduce", time.Now(), nil, "cancelled", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "stage completed", rec["msg"])
	assert.Equal(t, "reduce", rec["component"])
	assert.Equal(t, 0.5, rec["persistence"])
	assert.Equal(t, float64(3), rec["cancelled"])

	buf.Reset()
	l.LogStage(context.Background(), "reduce", time.Now(), errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}

func TestTextLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewTextLogger(&buf, slog.LevelInfo)
	l.LogCancellation(context.Background(), "min", 1, 2, 0.25)
	assert.Empty(t, buf.String())
	l.LogCounts(context.Background(), "critical cells", 1, 0, 1)
	assert.Contains(t, buf.String(), "minima=1")
}
