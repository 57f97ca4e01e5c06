package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// BuildConfigFromFlags parses command-line flags over the environment-layer
// base (LoadConfig), following the teacher's flags-override-env layering.
func BuildConfigFromFlags(base *Config, args []string) (*Config, error) {
	fs := pflag.NewFlagSet("unreach", pflag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs) }

	help := fs.BoolP("help", "h", false, "Show this help message and exit.")
	root := fs.String("root", base.RootDir, "Root directory to scan for source files.")
	include := fs.StringSlice("include", base.Include, "Include file patterns (glob, repeatable).")
	exclude := fs.StringSlice("exclude", base.Exclude, "Exclude file patterns (glob, repeatable).")
	jsonOutput := fs.BoolP("json", "j", base.JSONOutput, "Output results as JSON records.")
	verbose := fs.BoolP("verbose", "v", base.Verbose, "Enable verbose logging.")
	runStore := fs.String("run-store", base.RunStoreDSN, "DSN for the run-history store (sqlite file path or libsql:// URL).")

	retainPublic := fs.Bool("retain-public", base.Analyzer.Passes.RetainPublic, "Treat public accessibility as implicitly retained (library-mode).")
	retainObjc := fs.Bool("retain-objc-accessible", base.Analyzer.Passes.RetainObjcAccessible, "Retain declarations reachable from Objective-C-style dynamic dispatch.")
	retainAssignOnly := fs.Bool("retain-assign-only-properties", base.Analyzer.Passes.RetainAssignOnlyProperties, "Do not report properties that are only ever assigned, never read.")
	retainUnusedParams := fs.Bool("retain-unused-protocol-func-params", base.Analyzer.Passes.RetainUnusedProtocolFuncParams, "Do not report unused parameters on protocol-required functions.")
	ignoreComments := fs.Bool("ignore-comment-commands", base.Analyzer.Passes.IgnoreCommentCommands, "Ignore periphery: comment commands entirely.")
	externalEncodable := fs.StringSlice("external-encodable-protocols", base.Analyzer.Passes.ExternalEncodableProtocols, "Additional protocol names treated as Encodable-like for synthesis retention.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *help {
		fs.Usage()
		return nil, flag.ErrHelp
	}

	cfg := *base
	cfg.RootDir = *root
	cfg.Include = *include
	cfg.Exclude = *exclude
	cfg.JSONOutput = *jsonOutput
	cfg.Verbose = *verbose
	cfg.RunStoreDSN = *runStore
	cfg.Analyzer.Passes.RetainPublic = *retainPublic
	cfg.Analyzer.Passes.RetainObjcAccessible = *retainObjc
	cfg.Analyzer.RetainObjcAccessible = *retainObjc
	cfg.Analyzer.Passes.RetainAssignOnlyProperties = *retainAssignOnly
	cfg.Analyzer.Passes.RetainUnusedProtocolFuncParams = *retainUnusedParams
	cfg.Analyzer.Passes.IgnoreCommentCommands = *ignoreComments
	cfg.Analyzer.Passes.ExternalEncodableProtocols = *externalEncodable

	return &cfg, nil
}

func PrintUsage(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "\nUsage: unreach [flags]\n")
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	fs.PrintDefaults()
}
