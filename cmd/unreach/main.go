// Command unreach runs the dead-code analyzer over a Go package tree and
// reports every declaration that is never used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/unreach/internal/analyzer"
	"github.com/oxhq/unreach/internal/config"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/index"
	"github.com/oxhq/unreach/internal/langgo"
	"github.com/oxhq/unreach/internal/runstore"
)

// root wraps the §6 flag surface (bound directly with pflag in
// internal/config.BuildConfigFromFlags) in a cobra command tree, grounded
// on demo/cmd/main.go's command-tree shape and cmd/morfx/main.go's
// flags-over-env layering. Cobra owns process lifecycle (usage, exit
// codes); the flag parsing itself stays in internal/config so tests can
// drive it without a cobra.Command in the loop.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "unreach [flags]",
		Short:         "Find unused declarations in a Go source tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}
	cmd.Flags().SetInterspersed(true)
	cmd.DisableFlagParsing = true // internal/config owns the real flag set
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	base := config.LoadConfig()
	cfg, err := config.BuildConfigFromFlags(base, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	files, err := cfg.ResolveFiles()
	if err != nil {
		return fmt.Errorf("resolving source files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files matched under %s", cfg.RootDir)
	}

	contents := make(map[string][]byte, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			config.PrintFatal(graphmodel.Wrap(graphmodel.ErrIndexReadFailure, "reading "+f, err), cfg.JSONOutput)
			os.Exit(1)
		}
		contents[f] = b
	}

	table, err := langgo.Build(ctx, contents)
	if err != nil {
		config.PrintFatal(graphmodel.Wrap(graphmodel.ErrIndexReadFailure, "parsing source set", err), cfg.JSONOutput)
		os.Exit(1)
	}
	store := langgo.NewStore(table)
	visitor := langgo.Visitor{}

	units := make([]analyzer.SourceUnit, 0, len(files))
	for _, f := range files {
		unit, err := store.NewUnit(f)
		if err != nil {
			config.PrintFatal(graphmodel.Wrap(graphmodel.ErrIndexReadFailure, "building unit for "+f, err), cfg.JSONOutput)
			os.Exit(1)
		}
		units = append(units, analyzer.SourceUnit{
			File:    f,
			Units:   []index.UnitRef{{Store: store, Unit: unit}},
			Content: contents[f],
		})
	}

	driver := analyzer.New(cfg.Analyzer, visitor)
	records, err := driver.Run(ctx, units)
	if err != nil {
		config.PrintFatal(err, cfg.JSONOutput)
		os.Exit(1)
	}

	config.PrintResults(records, cfg)
	config.PrintSummary(records, cfg)

	if cfg.RunStoreDSN != "" {
		if rs, err := runstore.Open(cfg.RunStoreDSN, cfg.Verbose); err == nil {
			_, _ = rs.RecordRun(cfg.RootDir, len(files),
				cfg.Analyzer.Passes.RetainPublic, cfg.Analyzer.Passes.RetainObjcAccessible,
				cfg.Analyzer.Passes.RetainAssignOnlyProperties, records)
			rs.Close()
		} else if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "run-store unavailable: %v\n", err)
		}
	}

	if len(records) > 0 {
		os.Exit(1)
	}
	return nil
}
