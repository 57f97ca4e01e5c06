package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{
		"UNREACH_RETAIN_PUBLIC",
		"UNREACH_RETAIN_OBJC_ACCESSIBLE",
		"UNREACH_RETAIN_ASSIGN_ONLY_PROPERTIES",
		"UNREACH_RETAIN_UNUSED_PROTOCOL_FUNC_PARAMS",
		"UNREACH_IGNORE_COMMENT_COMMANDS",
		"UNREACH_RUN_STORE_DSN",
	} {
		os.Unsetenv(name)
	}

	cfg := LoadConfig()
	assert.Equal(t, ".", cfg.RootDir)
	assert.False(t, cfg.Analyzer.Passes.RetainPublic)
	assert.Equal(t, "unreach-runs.db", cfg.RunStoreDSN)
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("UNREACH_RETAIN_PUBLIC", "true")
	os.Setenv("UNREACH_RUN_STORE_DSN", "libsql://example.turso.io")
	defer os.Unsetenv("UNREACH_RETAIN_PUBLIC")
	defer os.Unsetenv("UNREACH_RUN_STORE_DSN")

	cfg := LoadConfig()
	assert.True(t, cfg.Analyzer.Passes.RetainPublic)
	assert.Equal(t, "libsql://example.turso.io", cfg.RunStoreDSN)
}

func TestEnvBool(t *testing.T) {
	assert.True(t, envBool("UNREACH_TEST_MISSING_BOOL", true))
	os.Setenv("UNREACH_TEST_BOOL", "yes")
	defer os.Unsetenv("UNREACH_TEST_BOOL")
	assert.True(t, envBool("UNREACH_TEST_BOOL", false))
}
