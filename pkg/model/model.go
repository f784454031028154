// Package model provides the transient data types exchanged between the
// jdkup pipeline stages.
package model

import (
	"github.com/glorpus-work/jdkup/pkg/errors"
)

// Release represents one published release as returned by the release-listing
// endpoint.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// InstallRequest describes one installation run. It is built once from caller
// input and not mutated afterwards.
type InstallRequest struct {
	// ArchivePath is a local archive to install from. Mutually exclusive with
	// DownloadLatest.
	ArchivePath string

	// DownloadLatest selects fetching the newest matching release asset.
	DownloadLatest bool

	// DestDir is the installation destination directory.
	DestDir string

	// UpdatePath requests the machine-scoped JAVA_HOME/Path update after
	// extraction.
	UpdatePath bool
}

// Validate checks that exactly one acquisition mode is selected and a
// destination is present. It performs no I/O.
func (r *InstallRequest) Validate() error {
	if r.ArchivePath == "" && !r.DownloadLatest {
		return errors.Wrap(errors.ErrConfiguration, "either an archive file or --latest must be given")
	}
	if r.ArchivePath != "" && r.DownloadLatest {
		return errors.Wrap(errors.ErrConfiguration, "an archive file and --latest are mutually exclusive")
	}
	if r.DestDir == "" {
		return errors.Wrap(errors.ErrConfiguration, "destination directory must not be empty")
	}
	return nil
}
