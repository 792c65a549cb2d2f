package model

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	testCases := []struct {
		file string
		want Config
	}{
		{"search.toml", Config{
			Log:    LogConfig{Level: "debug"},
			Search: SearchConfig{MaxExpansions: 500000, RecordPath: true, ProgressEvery: 1000},
			Cache:  CacheConfig{Size: 256},
			Input:  InputConfig{Unfold: true},
		}},
		{"search.yaml", Config{
			Log:    LogConfig{Level: "warn"},
			Search: SearchConfig{MaxExpansions: 1000, RecordPath: true},
			Cache:  CacheConfig{Size: 64},
		}},
		{"search.json", Config{
			Log:    LogConfig{Level: "info"},
			Search: SearchConfig{ProgressEvery: 50},
			Cache:  CacheConfig{Size: 10000},
			Input:  InputConfig{Unfold: true},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			cfg, err := LoadConfigFromFile(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join("testdata", "search.ini"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadConfigFromFile(filepath.Join("testdata", "missing.toml"))
	require.Error(t, err)

	_, err = LoadConfigFromFile(filepath.Join("testdata", "negative.toml"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseConfigEmptyYAML(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestBuildExecutorRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MaxExpansions = -1
	_, err := cfg.BuildExecutor(parseBoard(t, exampleDiagram), nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogLevel(t *testing.T) {
	testCases := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"info", zerolog.InfoLevel},
		{"trace", zerolog.TraceLevel},
		{"warn", zerolog.WarnLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Log.Level = tc.level
			assert.Equal(t, tc.want, cfg.LogLevel())
		})
	}
}
