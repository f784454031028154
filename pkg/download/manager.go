// Package download implements the HTTP archive acquirer.
package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	pkgerrors "github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/fsutil"
)

// ManagerImpl is a simple HTTP-based download manager. It makes a single
// attempt per fetch; retries, resume and mirror selection are deliberately out
// of scope.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
}

// NewManager creates a new download manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "jdkup/1.0"
	}
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch streams the resource at item.URL into opts.Dir, named after the URL's
// final path segment, and returns the absolute path. Ownership of the file
// transfers to the caller.
func (m *ManagerImpl) Fetch(ctx context.Context, item Item, opts Options) (string, error) {
	if item.URL == nil {
		return "", pkgerrors.Wrap(pkgerrors.ErrAcquisition, "nil URL")
	}
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := fsutil.EnsureDir(dir); err != nil {
		return "", pkgerrors.Wrap(err, "could not create download dir")
	}

	absPath := filepath.Join(dir, selectFilename(item))

	resp, err := m.doRequest(ctx, item)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := writeBodyToTemp(resp.Body, dir)
	if err != nil {
		return "", err
	}
	if err := fsutil.Move(tmpPath, absPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not finalize file")
	}
	return absPath, nil
}

// selectFilename derives the local filename from the item, preferring the
// explicit name over the URL's last path segment.
func selectFilename(item Item) string {
	if item.Filename != "" {
		return item.Filename
	}
	name := path.Base(item.URL.Path)
	if name == "." || name == "/" || name == "" {
		name = "download"
	}
	return name
}

func (m *ManagerImpl) doRequest(ctx context.Context, item Item) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrAcquisition, "download of %s failed: %v", item.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, pkgerrors.Wrapf(pkgerrors.ErrAcquisition, "unexpected status code %d for %s", resp.StatusCode, item.URL)
	}
	return resp, nil
}

func writeBodyToTemp(body io.Reader, dir string) (string, error) {
	tmp, err := os.CreateTemp(dir, "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}
