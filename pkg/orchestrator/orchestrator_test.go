package orchestrator

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/jdkup/pkg/download"
	pkgerrors "github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/hooks"
	"github.com/glorpus-work/jdkup/pkg/model"
	"github.com/glorpus-work/jdkup/pkg/orchestrator/mocks"
)

func collectEvents(events *[]Event) Hooks {
	return Hooks{OnEvent: func(e Event) { *events = append(*events, e) }}
}

func phases(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Phase)
	}
	return out
}

func TestInstall_ConfigurationErrorBeforeSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: any network or filesystem component use would fail the test.
	orch := &Orchestrator{
		Resolver: mocks.NewMockReleaseResolver(ctrl),
		DL:       mocks.NewMockDownloader(ctrl),
		Archive:  mocks.NewMockExtractor(ctrl),
		Env:      mocks.NewMockEnvConfigurator(ctrl),
		Verifier: mocks.NewMockVerifier(ctrl),
	}

	destDir := filepath.Join(t.TempDir(), "never-created")
	req := &model.InstallRequest{DestDir: destDir}

	_, err := orch.Install(context.Background(), req, InstallOptions{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, pkgerrors.ErrConfiguration))

	_, statErr := os.Stat(destDir)
	assert.True(t, os.IsNotExist(statErr), "destination must not be created on a configuration error")
}

func TestInstall_ExplicitFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), "jdk.zip", destDir, 1).Return(nil).Times(1)

	ver := mocks.NewMockVerifier(ctrl)
	ver.EXPECT().Verify(gomock.Any(), destDir).Return(`openjdk version "21.0.3"`, nil).Times(1)

	var events []Event
	orch := &Orchestrator{Archive: ext, Verifier: ver, Hooks: collectEvents(&events)}

	req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir}
	version, err := orch.Install(context.Background(), req, InstallOptions{})
	require.NoError(t, err)
	assert.Equal(t, `openjdk version "21.0.3"`, version)

	// Destination is created before extraction.
	info, err := os.Stat(destDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, []string{"preparing", "extracting", "verifying", "done"}, phases(events))
}

func TestInstall_PreExistingDestinationIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := t.TempDir()
	unrelated := filepath.Join(destDir, "keep.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0o644))

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), "jdk.zip", destDir, 1).Return(nil)
	ver := mocks.NewMockVerifier(ctrl)
	ver.EXPECT().Verify(gomock.Any(), destDir).Return("v", nil)

	var events []Event
	orch := &Orchestrator{Archive: ext, Verifier: ver, Hooks: collectEvents(&events)}

	req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	require.NoError(t, err)

	assert.Contains(t, events[0].Msg, "already exists")
	content, err := os.ReadFile(unrelated)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestInstall_DownloadLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")
	tmpArchive := filepath.Join(t.TempDir(), "jdk_x64_windows.zip")

	res := mocks.NewMockReleaseResolver(ctrl)
	res.EXPECT().ResolveLatest(gomock.Any(), "example/jdk-builds", "jdk_*.zip").
		Return(&model.Asset{Name: "jdk_x64_windows.zip", BrowserDownloadURL: "https://example.com/dl/jdk_x64_windows.zip"}, nil)

	dl := mocks.NewMockDownloader(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item download.Item, _ download.Options) (string, error) {
			assert.Equal(t, "https://example.com/dl/jdk_x64_windows.zip", item.URL.String())
			require.NoError(t, os.WriteFile(tmpArchive, []byte("zip"), 0o644))
			return tmpArchive, nil
		})

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), tmpArchive, destDir, 1).Return(nil)
	ver := mocks.NewMockVerifier(ctrl)
	ver.EXPECT().Verify(gomock.Any(), destDir).Return("v21", nil)

	var events []Event
	orch := &Orchestrator{Resolver: res, DL: dl, Archive: ext, Verifier: ver, Hooks: collectEvents(&events)}

	req := &model.InstallRequest{DownloadLatest: true, DestDir: destDir}
	opts := InstallOptions{Repository: "example/jdk-builds", AssetPattern: "jdk_*.zip"}

	version, err := orch.Install(context.Background(), req, opts)
	require.NoError(t, err)
	assert.Equal(t, "v21", version)

	// The transient archive is removed after a successful run.
	_, statErr := os.Stat(tmpArchive)
	assert.True(t, os.IsNotExist(statErr))

	assert.Equal(t, []string{"preparing", "resolving", "downloading", "extracting", "verifying", "done"}, phases(events))
}

func TestInstall_TempArchiveRemovedOnExtractionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")
	tmpArchive := filepath.Join(t.TempDir(), "jdk.zip")

	res := mocks.NewMockReleaseResolver(ctrl)
	res.EXPECT().ResolveLatest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.Asset{Name: "jdk.zip", BrowserDownloadURL: "https://example.com/dl/jdk.zip"}, nil)

	dl := mocks.NewMockDownloader(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, download.Item, download.Options) (string, error) {
			require.NoError(t, os.WriteFile(tmpArchive, []byte("zip"), 0o644))
			return tmpArchive, nil
		})

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), tmpArchive, destDir, 1).
		Return(pkgerrors.Wrap(pkgerrors.ErrExtraction, "corrupt archive"))

	orch := &Orchestrator{Resolver: res, DL: dl, Archive: ext, Verifier: mocks.NewMockVerifier(ctrl)}

	req := &model.InstallRequest{DownloadLatest: true, DestDir: destDir}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, pkgerrors.ErrExtraction))

	// Cleanup runs on the failure path too.
	_, statErr := os.Stat(tmpArchive)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstall_ExplicitFileIsNeverDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")
	archivePath := filepath.Join(t.TempDir(), "local.zip")
	require.NoError(t, os.WriteFile(archivePath, []byte("zip"), 0o644))

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), archivePath, destDir, 1).
		Return(pkgerrors.Wrap(pkgerrors.ErrExtraction, "corrupt archive"))

	orch := &Orchestrator{Archive: ext, Verifier: mocks.NewMockVerifier(ctrl)}

	req := &model.InstallRequest{ArchivePath: archivePath, DestDir: destDir}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	require.Error(t, err)

	// The caller-supplied archive was not created by the run, so it survives.
	_, statErr := os.Stat(archivePath)
	assert.NoError(t, statErr)
}

func TestInstall_UpdatePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), "jdk.zip", destDir, 1).Return(nil)
	env := mocks.NewMockEnvConfigurator(ctrl)
	env.EXPECT().Apply(destDir).Return(nil)
	ver := mocks.NewMockVerifier(ctrl)
	ver.EXPECT().Verify(gomock.Any(), destDir).Return("v", nil)

	orch := &Orchestrator{Archive: ext, Env: env, Verifier: ver}

	req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir, UpdatePath: true}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	assert.NoError(t, err)
}

func TestInstall_EnvFailureIsEnvironmentError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), "jdk.zip", destDir, 1).Return(nil)
	env := mocks.NewMockEnvConfigurator(ctrl)
	env.EXPECT().Apply(destDir).Return(stderrors.New("access denied"))

	orch := &Orchestrator{Archive: ext, Env: env, Verifier: mocks.NewMockVerifier(ctrl)}

	req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir, UpdatePath: true}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, pkgerrors.ErrEnvironment))
}

func TestInstall_PostInstallHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), "jdk.zip", destDir, 1).Return(nil)
	ver := mocks.NewMockVerifier(ctrl)
	ver.EXPECT().Verify(gomock.Any(), destDir).Return("v21", nil)

	exec := hooks.NewTengoExecutor()
	exec.AddScript(hooks.PostInstall, `
		err := ""
		if version != "v21" {
			err = "missing version"
		}
		if installRoot == "" {
			err = "missing install root"
		}
	`)

	orch := &Orchestrator{Archive: ext, Verifier: ver, HookExec: exec}

	req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	assert.NoError(t, err)
}

func TestInstall_FailingHookAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destDir := filepath.Join(t.TempDir(), "jdk")

	ext := mocks.NewMockExtractor(ctrl)
	ext.EXPECT().Extract(gomock.Any(), "jdk.zip", destDir, 1).Return(nil)
	ver := mocks.NewMockVerifier(ctrl)
	ver.EXPECT().Verify(gomock.Any(), destDir).Return("v21", nil)

	exec := hooks.NewTengoExecutor()
	exec.AddScript(hooks.PostInstall, `err := "post-install check failed"`)

	orch := &Orchestrator{Archive: ext, Verifier: ver, HookExec: exec}

	req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir}
	_, err := orch.Install(context.Background(), req, InstallOptions{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, pkgerrors.ErrHookScript))
}

func TestInstall_MissingComponents(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "jdk")

	t.Run("no extractor", func(t *testing.T) {
		orch := &Orchestrator{}
		req := &model.InstallRequest{ArchivePath: "jdk.zip", DestDir: destDir}
		_, err := orch.Install(context.Background(), req, InstallOptions{})
		assert.Error(t, err)
	})

	t.Run("download mode without resolver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := &Orchestrator{Archive: mocks.NewMockExtractor(ctrl), Verifier: mocks.NewMockVerifier(ctrl)}
		req := &model.InstallRequest{DownloadLatest: true, DestDir: destDir}
		_, err := orch.Install(context.Background(), req, InstallOptions{})
		assert.Error(t, err)
	})
}
