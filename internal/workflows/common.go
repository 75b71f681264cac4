package workflows

import (
	"fmt"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	"github.com/PolarWolf314/pasteportal/internal/configs"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
)

// loadConfig returns cfg if set, otherwise the configuration on disk.
func loadConfig(cfg *configs.Config) (*configs.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	loaded, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return loaded, nil
}

// record appends an audit entry describing the outcome of op.
func record(cfg *configs.Config, entry audit.Entry, err error) {
	entry.Outcome = audit.OutcomeSuccess
	if err != nil {
		entry.Outcome = audit.OutcomeFailure
		if kind := kerrors.KindOf(err); kind != kerrors.KindUnknown {
			entry.ErrorKind = kind.String()
		}
	}
	audit.Log(cfg.AuditLogPath(), entry)
}
