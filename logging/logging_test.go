package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{"debug", "json", zapcore.DebugLevel},
		{"warn", "console", zapcore.WarnLevel},
		{"ERROR", "json", zapcore.ErrorLevel},
		{"verbose", "console", zapcore.InfoLevel},
		{"", "json", zapcore.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := New(tc.level, tc.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.want-1))
			}
		})
	}
}
