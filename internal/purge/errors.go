package purge

import (
	"errors"
	"fmt"

	"github.com/clusterwm/acctarchive/internal/errcode"
)

// ErrMissingArchiveDir is the INVALID_ARG condition from spec.md §6/§7:
// some kind wants archiving but there's neither an archive_dir nor an
// archive_script to hand off to.
var ErrMissingArchiveDir = fmt.Errorf("archive_dir required when any kind has archive enabled: %w", errcode.ErrInvalidArg)

// IsMissingArchiveDir reports whether err is (or wraps) ErrMissingArchiveDir.
func IsMissingArchiveDir(err error) bool {
	return errors.Is(err, ErrMissingArchiveDir)
}
