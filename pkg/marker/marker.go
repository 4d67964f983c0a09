// Package marker restricts cleanup scope to files carrying a sentinel
// comment marker and clears the marker once a file has been processed.
package marker

import (
	"fmt"
	"strings"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/fs"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/logger"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=marker.go -destination=mockmarker.gen.go -package=marker

// Sentinel is the literal marker comment. Its presence as the first syntactic
// element of a file is the sole persisted record of scope membership.
const Sentinel = "//Controller Cleaner"

// Coordinator manages sentinel markers on source files.
type Coordinator interface {
	// Mark inserts the sentinel as the file's first line. Marking a marked
	// file is a no-op.
	Mark(file string) error

	// IsMarked reports whether the file's first syntactic element is the sentinel.
	IsMarked(file string) (bool, error)

	// ListMarkedFiles returns the files in scope whose first syntactic
	// element is the sentinel.
	ListMarkedFiles(scope model.Scope) ([]string, error)

	// Unmark removes the sentinel from each file. Unmarked files are left alone.
	Unmark(files []string) error
}

type realCoordinator struct {
	fs        fs.FS
	codeModel model.CodeModel
	logger    logger.Logger
}

// NewCoordinator creates a Coordinator over the given filesystem and model.
func NewCoordinator(filesystem fs.FS, codeModel model.CodeModel, log logger.Logger) Coordinator {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realCoordinator{
		fs:        filesystem,
		codeModel: codeModel,
		logger:    log,
	}
}

// Mark inserts the sentinel as the file's first line.
func (c *realCoordinator) Mark(file string) error {
	marked, err := c.IsMarked(file)
	if err != nil {
		return err
	}
	if marked {
		return nil
	}

	data, err := c.fs.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	content := Sentinel + "\n" + string(data)
	if err := c.fs.WriteFileAtomic(file, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to mark %s: %w", file, err)
	}

	c.logger.Logf("marked %s for cleanup", file)
	return nil
}

// IsMarked reports whether the file's first non-blank line is the sentinel.
func (c *realCoordinator) IsMarked(file string) (bool, error) {
	data, err := c.fs.ReadFile(file)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", file, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return trimmed == Sentinel, nil
	}
	return false, nil
}

// ListMarkedFiles returns the marked files in scope.
func (c *realCoordinator) ListMarkedFiles(scope model.Scope) ([]string, error) {
	files, err := c.codeModel.ListFiles(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var marked []string
	for _, file := range files {
		ok, err := c.IsMarked(file)
		if err != nil {
			return nil, err
		}
		if ok {
			marked = append(marked, file)
		}
	}
	return marked, nil
}

// Unmark removes the sentinel line from each file.
func (c *realCoordinator) Unmark(files []string) error {
	for _, file := range files {
		marked, err := c.IsMarked(file)
		if err != nil {
			return err
		}
		if !marked {
			continue
		}

		data, err := c.fs.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			// First non-blank line is the sentinel, IsMarked just said so
			lines = append(lines[:i], lines[i+1:]...)
			break
		}

		content := strings.Join(lines, "\n")
		if err := c.fs.WriteFileAtomic(file, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to unmark %s: %w", file, err)
		}

		c.logger.Logf("cleared cleanup marker from %s", file)
	}
	return nil
}
