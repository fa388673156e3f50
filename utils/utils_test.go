package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := make(Set[int])
	assert.True(t, s.Add(1))
	assert.True(t, s.Add(3))
	assert.False(t, s.Add(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())
}

func TestGenIDs(t *testing.T) {
	assert.NotEqual(t, GenID(), GenID())
	assert.NotEqual(t, GenShortID(), GenShortID())
	assert.True(t, strings.HasPrefix(GenCacheID(), "lru-"))
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	logger := Logger(slog.LevelInfo, path)

	logger.Debug("hidden")
	logger.Info("cache: started", "cache", "lru-1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache: started")
	assert.Contains(t, string(data), "cache=lru-1")
	assert.NotContains(t, string(data), "hidden")
}
