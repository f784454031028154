// Package archive provides extraction of JDK release archives with support
// for stripping the wrapping root folder, plus archive creation for tests and
// tooling.
package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/fsutil"
	"github.com/mholt/archives"
)

// Manager handles archive extraction and creation operations.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// Extract extracts every entry of the archive into destDir, removing the
// first stripLevels path components from each entry's path. Entries fully
// consumed by stripping (e.g. the wrapping root folder itself) are skipped.
// Existing files of the same relative path are overwritten; files present in
// destDir but absent from the archive are left alone. destDir must already
// exist and be writable.
func (am *Manager) Extract(ctx context.Context, archivePath, destDir string, stripLevels int) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(errors.ErrExtraction, "failed to open archive %s: %v", archivePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return am.extractEntry(fsys, path, destDir, stripLevels, d)
	}

	if err := fs.WalkDir(fsys, ".", walkFn); err != nil {
		return errors.Wrapf(errors.ErrExtraction, "failed to extract %s into %s: %v", archivePath, destDir, err)
	}
	return nil
}

// Create creates a zip archive from the specified source directory. Entry
// paths are relative to sourceDir.
func (am *Manager) Create(ctx context.Context, sourceDir, archivePath string) error {
	absolutePath, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for source directory: %w", err)
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolutePath + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read files from disk: %w", err)
	}

	file, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", archivePath, err)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.Zip{}
	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	return nil
}

// stripPath removes the first stripLevels slash-separated components from an
// archive entry path. The second return value is false when the entry has no
// remaining components.
func stripPath(entryPath string, stripLevels int) (string, bool) {
	if stripLevels <= 0 {
		return entryPath, true
	}
	parts := strings.Split(entryPath, "/")
	if len(parts) <= stripLevels {
		return "", false
	}
	return strings.Join(parts[stripLevels:], "/"), true
}

// extractEntry processes a single archive entry and writes it to destDir.
func (am *Manager) extractEntry(fsys fs.FS, path, destDir string, stripLevels int, d fs.DirEntry) error {
	if path == "." {
		return nil
	}

	stripped, ok := stripPath(path, stripLevels)
	if !ok {
		return nil
	}
	targetPath := filepath.Join(destDir, filepath.FromSlash(stripped))

	if d.IsDir() {
		return os.MkdirAll(targetPath, fsutil.DirModeDefault)
	}

	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("failed to get file info for %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return am.writeSymlink(fsys, path, targetPath)
	}
	return am.writeRegularFile(fsys, path, targetPath, info)
}

// writeSymlink creates a symlink at targetPath with contents from the archive entry at path.
func (am *Manager) writeSymlink(fsys fs.FS, path, targetPath string) error {
	linkTarget, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read symlink %s: %w", path, err)
	}
	defer func() { _ = linkTarget.Close() }()

	targetBytes, err := io.ReadAll(linkTarget)
	if err != nil {
		return fmt.Errorf("failed to read symlink target %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for symlink %s: %w", path, err)
	}

	// Overwrite an existing file or symlink of the same path.
	_ = os.Remove(targetPath)

	return os.Symlink(string(targetBytes), targetPath)
}

// writeRegularFile writes a regular file from the archive entry to targetPath and preserves metadata.
func (am *Manager) writeRegularFile(fsys fs.FS, path, targetPath string, info fs.FileInfo) error {
	srcFile, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer func() { _ = srcFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	dstFile, err := fsutil.CreateFilePerm(targetPath, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", targetPath, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", path, err)
	}

	if err := os.Chmod(targetPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions for %s: %w", targetPath, err)
	}
	if err := os.Chtimes(targetPath, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set modification time for %s: %w", targetPath, err)
	}
	return nil
}
