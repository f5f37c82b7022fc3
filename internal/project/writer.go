// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project materializes a generated project on disk.
package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/investigator/internal/generate"
	"github.com/pdiddy/investigator/internal/logger"
)

const dirMode fs.FileMode = 0o755

var (
	// ErrExists is returned when the project root is already present.
	ErrExists = errors.New("project directory already exists")
	// ErrUnsafePath is returned for a directory or artifact path that would
	// resolve outside the project root.
	ErrUnsafePath = errors.New("path escapes project root")
)

// Writer creates project trees.
type Writer struct {
	log logger.Logger
}

// NewWriter returns a Writer logging to log. A nil log discards output.
func NewWriter(log logger.Logger) *Writer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Writer{log: log}
}

// Write creates root and every directory and artifact of p beneath it.
// root must not exist yet. Paths are checked before anything is created; a
// failure after that point leaves the partial tree in place.
func (w *Writer) Write(ctx context.Context, root string, p *generate.Project) error {
	for _, d := range p.Dirs {
		if err := checkLocal(d); err != nil {
			return err
		}
	}
	for _, a := range p.Artifacts {
		if err := checkLocal(a.Path); err != nil {
			return err
		}
	}

	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("%s: %w", root, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking project directory: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(root, dirMode); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	w.log.Debug("created project root", logger.String("root", root))

	for _, d := range p.Dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), dirMode); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	for _, a := range p.Artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
			return fmt.Errorf("creating directory for %s: %w", a.Path, err)
		}
		if err := os.WriteFile(path, a.Content, a.Mode); err != nil {
			return fmt.Errorf("writing %s: %w", a.Path, err)
		}
		// WriteFile applies the umask; the executable bit must survive it.
		if err := os.Chmod(path, a.Mode); err != nil {
			return fmt.Errorf("setting mode on %s: %w", a.Path, err)
		}
		w.log.Debug("wrote artifact", logger.String("path", a.Path), logger.Int("bytes", len(a.Content)))
	}

	w.log.Info("project written",
		logger.String("root", root),
		logger.Int("dirs", len(p.Dirs)),
		logger.Int("files", len(p.Artifacts)),
	)
	return nil
}

func checkLocal(p string) error {
	if !filepath.IsLocal(filepath.FromSlash(p)) {
		return fmt.Errorf("%q: %w", p, ErrUnsafePath)
	}
	return nil
}
