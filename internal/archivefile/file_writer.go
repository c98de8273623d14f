package archivefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clusterwm/acctarchive/internal/acct"
	"github.com/clusterwm/acctarchive/internal/errcode"
)

// FileWriter is the concrete Writer: one file per window under Dir,
// written with O_EXCL so a repeat write for the same window fails
// instead of clobbering an existing archive.
type FileWriter struct {
	Dir string
}

// NewFileWriter returns a FileWriter rooted at dir. It does not create
// dir; per spec.md §4.3 that's the caller's job.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir}
}

func (w *FileWriter) Write(cluster string, kind acct.Kind, periodStart, periodEnd int64, granularity Granularity, data []byte) (string, error) {
	name := FileName(cluster, kind, periodStart, periodEnd)
	path := filepath.Join(w.Dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644) // #nosec G302,G304 - controlled path, archive files readable by operator tooling
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", errcode.Wrap(errcode.IOError, "archivefile.Write", fmt.Errorf("archive already exists: %s: %w", path, err))
		}
		return "", errcode.Wrap(errcode.IOError, "archivefile.Write", fmt.Errorf("open %s: %w", path, err))
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", errcode.Wrap(errcode.IOError, "archivefile.Write", fmt.Errorf("write %s: %w", path, err))
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", errcode.Wrap(errcode.IOError, "archivefile.Write", fmt.Errorf("sync %s: %w", path, err))
	}
	if err := f.Close(); err != nil {
		return "", errcode.Wrap(errcode.IOError, "archivefile.Write", fmt.Errorf("close %s: %w", path, err))
	}
	return path, nil
}
