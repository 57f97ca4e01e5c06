package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfigFromFlagsOverridesBase(t *testing.T) {
	base := &Config{RootDir: "."}
	cfg, err := BuildConfigFromFlags(base, []string{
		"--root", "./testdata",
		"--include", "**/*.go",
		"--exclude", "**/*_test.go",
		"--json",
		"--retain-public",
	})
	require.NoError(t, err)
	assert.Equal(t, "./testdata", cfg.RootDir)
	assert.Equal(t, []string{"**/*.go"}, cfg.Include)
	assert.Equal(t, []string{"**/*_test.go"}, cfg.Exclude)
	assert.True(t, cfg.JSONOutput)
	assert.True(t, cfg.Analyzer.Passes.RetainPublic)
}

func TestBuildConfigFromFlagsKeepsBaseWhenUnset(t *testing.T) {
	base := &Config{RootDir: "/srv/project", RunStoreDSN: "custom.db"}
	cfg, err := BuildConfigFromFlags(base, nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/project", cfg.RootDir)
	assert.Equal(t, "custom.db", cfg.RunStoreDSN)
}

func TestBuildConfigFromFlagsHelp(t *testing.T) {
	base := &Config{}
	_, err := BuildConfigFromFlags(base, []string{"--help"})
	assert.Error(t, err)
}
