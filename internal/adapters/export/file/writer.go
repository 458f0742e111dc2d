// Package file saves export documents to disk.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/windsurf-accounts-cli/internal/atomicfile"
)

const (
	exportFileMode = 0o600
	exportDirMode  = 0o700
	tempPattern    = ".export-*.json.tmp"
)

// ErrExists reports a refused overwrite.
var ErrExists = errors.New("export file already exists")

type Writer struct {
	Force bool
}

// Save writes data to path atomically. Without Force an existing file is
// left alone and ErrExists is returned. The file is created with mode 0600.
func (w Writer) Save(path string, data []byte) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve export path: %w", err)
	}

	if !w.Force {
		if _, err := os.Stat(absPath); err == nil {
			return "", fmt.Errorf("%s: %w", absPath, ErrExists)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat export file: %w", err)
		}
	}

	if err := atomicfile.Write(absPath, data, exportFileMode, exportDirMode, tempPattern); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return absPath, nil
}
