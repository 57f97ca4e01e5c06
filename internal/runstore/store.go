package runstore

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	libsql "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oxhq/unreach/internal/result"
)

// Store is a thin gorm-backed handle scoped to one driver invocation,
// grounded on the teacher's db.Connect/db.Migrate pair (db/sqlite.go) but
// deliberately not a package-level singleton: each caller opens its own
// Store, so tests can run concurrently, echoing §9's "process-wide cache
// ... scope this cache to the driver object".
type Store struct {
	db *gorm.DB
}

// Open connects to dsn, which is either a local sqlite file path or a
// libsql:// / https:// remote DSN (Turso), and migrates the schema.
func Open(dsn string, debug bool) (*Store, error) {
	if !isRemoteDSN(dsn) {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("runstore: create directory: %w", err)
			}
		}
	}

	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		dialector gorm.Dialector
		conn      *sql.DB
	)
	if isRemoteDSN(dsn) {
		var (
			connector driver.Connector
			err       error
		)
		if token := os.Getenv("UNREACH_LIBSQL_AUTH_TOKEN"); token != "" {
			connector, err = libsql.NewConnector(dsn, libsql.WithAuthToken(token))
		} else {
			connector, err = libsql.NewConnector(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("runstore: libsql connector: %w", err)
		}
		conn = sql.OpenDB(connector)
		dialector = sqlite.New(sqlite.Config{DriverName: "libsql", Conn: conn, DSN: dsn})
	} else {
		dialector = sqlite.Open(dsn)
	}

	gdb, err := gorm.Open(dialector, cfg)
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		return nil, fmt.Errorf("runstore: connect: %w", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Exec("PRAGMA foreign_keys = ON")
	}

	if err := gdb.AutoMigrate(&Run{}, &Finding{}); err != nil {
		return nil, fmt.Errorf("runstore: migrate: %w", err)
	}

	return &Store{db: gdb}, nil
}

func isRemoteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "http://") || strings.HasPrefix(dsn, "https://") || strings.HasPrefix(dsn, "libsql")
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordRun persists one completed analyzer invocation and its result
// records as a single Run with its Findings, appended only after the
// run has finished (§A.4: "only ever appends after a run finishes").
func (s *Store) RecordRun(rootDir string, fileCount int, retainPublic, retainObjc, retainAssignOnly bool, records []result.Record) (string, error) {
	now := time.Now()
	run := Run{
		ID:                         uuid.NewString(),
		RootDir:                    rootDir,
		FileCount:                  fileCount,
		RetainPublic:               retainPublic,
		RetainObjcAccessible:       retainObjc,
		RetainAssignOnlyProperties: retainAssignOnly,
		FindingCount:               len(records),
		StartedAt:                  now,
		FinishedAt:                 &now,
	}
	for _, r := range records {
		run.Findings = append(run.Findings, Finding{
			SymbolID:   r.SymbolID,
			Kind:       string(r.Kind),
			Name:       r.Name,
			File:       r.Location.File,
			Line:       r.Location.Line,
			Column:     r.Location.Column,
			Category:   string(r.Category),
			Confidence: string(r.Confidence),
			Detail:     r.Detail,
		})
	}
	if err := s.db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("runstore: record run: %w", err)
	}
	return run.ID, nil
}

// LatestRun returns the most recently recorded run for rootDir, if any,
// with its findings preloaded — the read side a future baseline-diff CLI
// command would build on (diffing itself stays out of core scope, §1).
func (s *Store) LatestRun(rootDir string) (*Run, error) {
	var run Run
	err := s.db.Preload("Findings").
		Where("root_dir = ?", rootDir).
		Order("started_at DESC").
		First(&run).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("runstore: latest run: %w", err)
	}
	return &run, nil
}
