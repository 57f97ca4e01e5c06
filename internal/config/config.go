// Package config loads the §6 recognized options from environment
// variables, an optional .env file, and command-line flags, grounded on
// the teacher's LoadConfig (env-first) / BuildConfigFromFlags (pflag)
// split.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/oxhq/unreach/internal/analyzer"
)

// Config is the fully resolved run configuration: the §6 option table plus
// the file-selection and output settings the CLI needs around the core
// (project/target discovery and output formatting are external
// collaborators, §1, but the CLI still has to own them).
type Config struct {
	Analyzer analyzer.Config

	Include []string
	Exclude []string
	RootDir string

	JSONOutput bool
	Verbose    bool

	RunStoreDSN string
}

// LoadConfig loads configuration from environment variables (and an
// optional .env file via godotenv), the base layer that BuildConfigFromFlags
// then overrides with any explicitly passed flag.
func LoadConfig() *Config {
	_ = godotenv.Load() // .env is optional; a missing file is not an error

	cfg := &Config{RootDir: "."}
	cfg.Analyzer.Passes.RetainPublic = envBool("UNREACH_RETAIN_PUBLIC", false)
	cfg.Analyzer.Passes.RetainObjcAccessible = envBool("UNREACH_RETAIN_OBJC_ACCESSIBLE", false)
	cfg.Analyzer.RetainObjcAccessible = cfg.Analyzer.Passes.RetainObjcAccessible
	cfg.Analyzer.Passes.RetainAssignOnlyProperties = envBool("UNREACH_RETAIN_ASSIGN_ONLY_PROPERTIES", false)
	cfg.Analyzer.Passes.RetainUnusedProtocolFuncParams = envBool("UNREACH_RETAIN_UNUSED_PROTOCOL_FUNC_PARAMS", false)
	cfg.Analyzer.Passes.IgnoreCommentCommands = envBool("UNREACH_IGNORE_COMMENT_COMMANDS", false)
	cfg.RunStoreDSN = envDefault("UNREACH_RUN_STORE_DSN", "unreach-runs.db")
	return cfg
}

func envBool(name string, def bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

func envDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
