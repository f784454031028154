//go:generate mockgen -destination=mocks/orchestrator.go -package=mocks . ReleaseResolver,Downloader,Extractor,EnvConfigurator,Verifier

package orchestrator

import (
	"context"

	"github.com/glorpus-work/jdkup/pkg/download"
	"github.com/glorpus-work/jdkup/pkg/model"
)

// ReleaseResolver is the subset of the release resolver used by the orchestrator.
type ReleaseResolver interface {
	ResolveLatest(ctx context.Context, repository, pattern string) (*model.Asset, error)
}

// Downloader is the subset of the download manager used by the orchestrator.
type Downloader interface {
	Fetch(ctx context.Context, item download.Item, opts download.Options) (string, error)
}

// Extractor is the subset of the archive manager used by the orchestrator.
type Extractor interface {
	Extract(ctx context.Context, archivePath, destDir string, stripLevels int) error
}

// EnvConfigurator applies the machine environment update.
type EnvConfigurator interface {
	Apply(installRoot string) error
}

// Verifier confirms a usable installation and reports its version string.
type Verifier interface {
	Verify(ctx context.Context, destDir string) (string, error)
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // preparing|resolving|downloading|extracting|environment|verifying|done
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// InstallOptions control orchestrator install execution.
type InstallOptions struct {
	// Repository and AssetPattern select the release asset in
	// download-latest mode.
	Repository   string
	AssetPattern string

	// TempDir overrides the directory for the transient downloaded archive.
	// Empty means the system temp directory.
	TempDir string

	// StripLevels is the number of leading path components removed from
	// archive entries. Zero means the default of one wrapping root folder.
	StripLevels int
}

func (o *InstallOptions) stripLevels() int {
	if o.StripLevels == 0 {
		return 1
	}
	return o.StripLevels
}
