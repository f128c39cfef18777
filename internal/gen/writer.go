package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// sidecarSuffix replaces ".go" in the name of a destination file whose
	// source could not be formatted.
	sidecarSuffix = ".unformatted.go"
)

// WriteFiles writes the generated navigation files into outputDir, creating
// it when missing. A sidecar left by an earlier failed run is removed once
// its file has been written.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating navigation output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)
		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing navigation file %s: %w", file.Filename, err)
		}

		stale := filepath.Join(outputDir, sidecarName(file.Filename))
		if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing stale sidecar %s: %w", sidecarName(file.Filename), err)
		}
	}

	return nil
}

// writeSidecar saves source that go/format rejected next to where filename
// would go, so the broken template output can be inspected. Without an
// output directory there is nowhere to put it.
func writeSidecar(outputDir, filename string, content []byte) {
	if outputDir == "" || filename == "" {
		return
	}

	name := sidecarName(filename)

	err := os.MkdirAll(outputDir, dirPerm)
	if err == nil {
		err = os.WriteFile(filepath.Join(outputDir, name), content, filePerm)
	}

	if err != nil {
		Logger().Warn("writing unformatted sidecar", zap.String("file", name), zap.Error(err))
		return
	}

	Logger().Debug("wrote unformatted sidecar", zap.String("file", name))
}

// sidecarName maps "search_nav.go" to "search_nav.unformatted.go".
func sidecarName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + sidecarSuffix
}
