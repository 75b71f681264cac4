package workflows

import (
	"context"
	"strings"
	"time"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	"github.com/PolarWolf314/pasteportal/internal/configs"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Outcome filters entries by outcome ("success" or "failure").
	Outcome string

	// Since filters entries on or after this date (YYYY-MM-DD format).
	Since string

	// Until filters entries on or before this date (YYYY-MM-DD format).
	Until string

	// Config overrides the configuration on disk when set.
	Config *configs.Config
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the audit log.
//
// Returns ErrNoAuditLog if auditing is disabled or no log exists.
// Returns ErrInvalidDateFormat if a date filter is invalid.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	since, err := parseDate(opts.Since)
	if err != nil {
		return nil, err
	}
	until, err := parseDate(opts.Until)
	if err != nil {
		return nil, err
	}
	if !until.IsZero() {
		// Inclusive of the whole day.
		until = until.Add(24 * time.Hour)
	}

	entries, err := audit.ReadEntries(cfg.AuditLogPath())
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, kerrors.ErrNoAuditLog
	}

	ops := make(map[string]bool)
	for _, op := range strings.Split(opts.Operations, ",") {
		if op = strings.TrimSpace(op); op != "" {
			ops[op] = true
		}
	}

	var filtered []audit.Entry
	for _, e := range entries {
		if len(ops) > 0 && !ops[e.Operation] {
			continue
		}
		if opts.Outcome != "" && e.Outcome != opts.Outcome {
			continue
		}
		if !since.IsZero() || !until.IsZero() {
			ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
			if err != nil {
				continue
			}
			if !since.IsZero() && ts.Before(since) {
				continue
			}
			if !until.IsZero() && !ts.Before(until) {
				continue
			}
		}
		filtered = append(filtered, e)
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	return &LogResult{
		Entries:                  filtered,
		TotalEntriesBeforeFilter: len(entries),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, kerrors.ErrInvalidDateFormat
	}
	return t, nil
}
