// Package assets delivers the static resume: a copy into a download
// directory for the terminal shell, and a single-file HTTP server.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ResumePath is the well-known URL path of the resume.
const ResumePath = "/resume.pdf"

// ResumeName is the file name used for downloaded copies.
const ResumeName = "resume.pdf"

// ErrNoResume is returned when no resume file is configured.
var ErrNoResume = errors.New("no resume file configured")

// CheckResume verifies that path names a readable regular file.
func CheckResume(path string) error {
	if path == "" {
		return ErrNoResume
	}
	info, err := os.Stat(path)
	if err != nil {
		return apperrors.NewStorageError("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return apperrors.NewStorageError("stat", path, fmt.Errorf("not a regular file"))
	}
	return nil
}

// DefaultDownloadDir returns ~/Downloads, or the working directory when the
// home directory cannot be resolved.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// CopyResume copies src into dir as resume.pdf and returns the written
// path. The copy is atomic: a partially written file is never visible.
func CopyResume(ctx context.Context, src, dir string) (string, error) {
	if err := CheckResume(src); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir == "" {
		dir = DefaultDownloadDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.NewStorageError("mkdir", dir, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", apperrors.NewStorageError("open", src, err)
	}
	defer in.Close()

	dst := filepath.Join(dir, ResumeName)
	if err := atomic.WriteFile(dst, in); err != nil {
		return "", apperrors.NewStorageError("write", dst, err)
	}
	return dst, nil
}

// IsMissing reports whether err means the resume file does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, ErrNoResume) || errors.Is(err, fs.ErrNotExist)
}
