// Package runstore persists analysis run history, grounded on the
// teacher's gorm-backed run store (db/sqlite.go, models/models.go):
// same Connect/Migrate shape, same libsql remote-DSN support, adapted
// from staged-edit bookkeeping to dead-declaration result bookkeeping.
package runstore

import (
	"time"

	"gorm.io/datatypes"
)

// Run is one completed analyzer invocation (§1 Non-goals: "one full
// analysis per invocation" — each Run row is exactly one of those).
type Run struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	RootDir   string `gorm:"type:varchar(1024)"`
	FileCount int

	RetainPublic               bool
	RetainObjcAccessible       bool
	RetainAssignOnlyProperties bool

	FindingCount int
	StartedAt    time.Time `gorm:"autoCreateTime"`
	FinishedAt   *time.Time

	Findings []Finding `gorm:"foreignKey:RunID"`
}

// Finding is one reported dead-declaration or secondary-analyzer record
// (§6 "Result output"), stored flat so a later run's results can be
// diffed against it (baseline-diffing itself stays an external concern,
// §1 Non-goals, but the history this package keeps is what such a tool
// would diff against).
type Finding struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	RunID string `gorm:"type:varchar(36);index"`

	SymbolID string `gorm:"type:varchar(255)"`
	Kind     string `gorm:"type:varchar(50)"`
	Name     string `gorm:"type:varchar(255)"`

	File   string `gorm:"type:varchar(1024)"`
	Line   int
	Column int

	Category   string `gorm:"type:varchar(50)"`
	Confidence string `gorm:"type:varchar(20)"`
	Detail     string `gorm:"type:text"`

	Extra datatypes.JSON `gorm:"type:jsonb"`
}

func (Run) TableName() string     { return "runs" }
func (Finding) TableName() string { return "findings" }
