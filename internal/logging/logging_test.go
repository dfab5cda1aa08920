package logging

import (
	"testing"

	"github.com/hhplan/household-planner/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{"", "console", zapcore.InfoLevel},
		{"debug", "console", zapcore.DebugLevel},
		{"WARN", "json", zapcore.WarnLevel},
		{"error", "json", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("chatty", "console")
	assert.Error(t, err)
}

func TestNew_SugarSatisfiesEngineLogger(t *testing.T) {
	logger, err := New("info", "json")
	require.NoError(t, err)
	sugar := logger.Sugar()

	var l calculation.Logger = sugar
	ce := calculation.NewCalculationEngine()
	ce.SetLogger(l)
	assert.Same(t, sugar, ce.Logger)
}
