// Package download delivers exported project files into a local directory.
package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir writes downloads into a directory. It implements project.Downloader.
type Dir struct {
	root string
}

// NewDir creates a Dir rooted at root, creating it if needed.
func NewDir(root string) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("download directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}
	return &Dir{root: root}, nil
}

// Download writes content to fileName inside the directory and returns the
// full path. An existing file with the same name is replaced.
func (d *Dir) Download(ctx context.Context, fileName string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fileName == "" || fileName != filepath.Base(fileName) || fileName == "." || fileName == ".." {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}

	path := filepath.Join(d.root, fileName)
	tmp, err := os.CreateTemp(d.root, "."+fileName+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", fileName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", fileName, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move %s into place: %w", fileName, err)
	}
	return path, nil
}
