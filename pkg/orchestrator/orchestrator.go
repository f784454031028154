// Package orchestrator sequences the installation pipeline: prepare the
// destination, acquire the archive, extract it, optionally update the machine
// environment, and verify the result.
package orchestrator

import (
	"context"
	"fmt"
	"os"

	"github.com/glorpus-work/jdkup/pkg/download"
	pkgerrors "github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/fsutil"
	"github.com/glorpus-work/jdkup/pkg/hooks"
	"github.com/glorpus-work/jdkup/pkg/model"
)

// Orchestrator ties the resolver, downloader, extractor, environment
// configurator and verifier together for one installation per call.
type Orchestrator struct {
	Resolver ReleaseResolver
	DL       Downloader
	Archive  Extractor
	Env      EnvConfigurator
	Verifier Verifier
	HookExec hooks.Executor // optional pre/post-install scripts
	Hooks    Hooks          // progress and event notifications
}

// New constructs an Orchestrator from existing managers. Helper for wiring.
// HookExec and hooks can be nil when not needed.
func New(resolver ReleaseResolver, dl Downloader, archive Extractor, env EnvConfigurator, verifier Verifier, hookExec hooks.Executor, h Hooks) *Orchestrator {
	return &Orchestrator{
		Resolver: resolver,
		DL:       dl,
		Archive:  archive,
		Env:      env,
		Verifier: verifier,
		HookExec: hookExec,
		Hooks:    h,
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Install runs one installation and returns the detected version string. The
// request is validated before any network or filesystem side effect. A
// temporary archive downloaded by the run is removed on every exit path once
// it exists; an archive supplied by the caller is never deleted.
func (o *Orchestrator) Install(ctx context.Context, req *model.InstallRequest, opts InstallOptions) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if o.Archive == nil {
		return "", fmt.Errorf("archive extractor is not configured")
	}
	if o.Verifier == nil {
		return "", fmt.Errorf("verifier is not configured")
	}

	if err := o.prepareDestination(req.DestDir); err != nil {
		return "", err
	}

	archivePath, cleanup, err := o.resolveSource(ctx, req, opts)
	if err != nil {
		return "", err
	}
	if cleanup != nil {
		defer cleanup()
	}

	if err := o.runHook(hooks.PreInstall, req.DestDir, ""); err != nil {
		return "", err
	}

	emit(o.Hooks, Event{Phase: "extracting", Msg: archivePath})
	if err := o.Archive.Extract(ctx, archivePath, req.DestDir, opts.stripLevels()); err != nil {
		return "", err
	}

	if req.UpdatePath {
		if o.Env == nil {
			return "", fmt.Errorf("environment configurator is not configured")
		}
		emit(o.Hooks, Event{Phase: "environment", Msg: req.DestDir})
		if err := o.Env.Apply(req.DestDir); err != nil {
			return "", fmt.Errorf("%w: %w", pkgerrors.ErrEnvironment, err)
		}
	}

	emit(o.Hooks, Event{Phase: "verifying", Msg: req.DestDir})
	version, err := o.Verifier.Verify(ctx, req.DestDir)
	if err != nil {
		return "", err
	}

	if err := o.runHook(hooks.PostInstall, req.DestDir, version); err != nil {
		return "", err
	}

	emit(o.Hooks, Event{Phase: "done", Msg: version})
	return version, nil
}

// prepareDestination creates the destination directory if absent. A
// pre-existing directory is reported and kept; its contents are merged into,
// never cleared.
func (o *Orchestrator) prepareDestination(destDir string) error {
	if _, err := os.Stat(destDir); err == nil {
		emit(o.Hooks, Event{Phase: "preparing", Msg: destDir + " already exists, merging into it"})
		return nil
	}
	emit(o.Hooks, Event{Phase: "preparing", Msg: destDir})
	if err := fsutil.EnsureDir(destDir); err != nil {
		return pkgerrors.Wrapf(err, "failed to create destination directory %s", destDir)
	}
	return nil
}

// resolveSource produces the local archive path for the selected acquisition
// mode. The returned cleanup func is non-nil only when the run itself created
// a temporary file.
func (o *Orchestrator) resolveSource(ctx context.Context, req *model.InstallRequest, opts InstallOptions) (string, func(), error) {
	if !req.DownloadLatest {
		return req.ArchivePath, nil, nil
	}
	if o.Resolver == nil {
		return "", nil, fmt.Errorf("release resolver is not configured")
	}
	if o.DL == nil {
		return "", nil, fmt.Errorf("download manager is not configured")
	}

	emit(o.Hooks, Event{Phase: "resolving", Msg: opts.Repository})
	asset, err := o.Resolver.ResolveLatest(ctx, opts.Repository, opts.AssetPattern)
	if err != nil {
		return "", nil, err
	}

	item, err := download.NewItem(asset.BrowserDownloadURL)
	if err != nil {
		return "", nil, err
	}
	emit(o.Hooks, Event{Phase: "downloading", Msg: asset.Name})
	tmpPath, err := o.DL.Fetch(ctx, item, download.Options{Dir: opts.TempDir})
	if err != nil {
		return "", nil, err
	}
	return tmpPath, func() { _ = os.Remove(tmpPath) }, nil
}

// runHook executes the hook script of the given type when one is registered.
func (o *Orchestrator) runHook(hookType hooks.HookType, installRoot, version string) error {
	if o.HookExec == nil || !o.HookExec.HasScript(hookType) {
		return nil
	}
	return o.HookExec.Execute(hookType, hooks.HookContext{
		InstallRoot: installRoot,
		Version:     version,
	})
}
