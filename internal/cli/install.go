package cli

import (
	"fmt"

	"github.com/glorpus-work/jdkup/internal/logger"
	"github.com/glorpus-work/jdkup/pkg/archive"
	"github.com/glorpus-work/jdkup/pkg/config"
	"github.com/glorpus-work/jdkup/pkg/download"
	"github.com/glorpus-work/jdkup/pkg/envstore"
	"github.com/glorpus-work/jdkup/pkg/hooks"
	"github.com/glorpus-work/jdkup/pkg/model"
	"github.com/glorpus-work/jdkup/pkg/orchestrator"
	"github.com/glorpus-work/jdkup/pkg/release"
	"github.com/glorpus-work/jdkup/pkg/verify"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		archiveFile string
		latest      bool
		destDir     string
		updatePath  bool
		minVersion  string
		preScript   string
		postScript  string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a JDK into a destination directory",
		Long: `Install a JDK from a local release archive or from the latest matching
release asset of the configured repository. The archive's wrapping root
folder is stripped, so the destination directory becomes the JDK home.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, archiveFile, latest, destDir, updatePath, minVersion, preScript, postScript)
		},
	}

	cmd.Flags().StringVarP(&archiveFile, "file", "f", "", "Install from this local release archive")
	cmd.Flags().BoolVar(&latest, "latest", false, "Download and install the latest matching release asset")
	cmd.Flags().StringVarP(&destDir, "dest", "d", "", "Destination directory (defaults to config)")
	cmd.Flags().BoolVar(&updatePath, "update-path", false, "Update the machine-scoped JAVA_HOME and Path variables (requires administrative privilege)")
	cmd.Flags().StringVar(&minVersion, "min-version", "", "Reject installations older than this version (defaults to config)")
	cmd.Flags().StringVar(&preScript, "pre-script", "", "Tengo script to run before extraction")
	cmd.Flags().StringVar(&postScript, "post-script", "", "Tengo script to run after verification")

	return cmd
}

func runInstall(cmd *cobra.Command, archiveFile string, latest bool, destDir string, updatePath bool, minVersion, preScript, postScript string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if destDir == "" {
		destDir = cfg.DestDir
	}
	if minVersion == "" {
		minVersion = cfg.MinJavaVersion
	}

	logger.Debug("resolved configuration",
		"repository", cfg.Repository,
		"asset_pattern", cfg.AssetPattern,
		"dest", destDir)

	req := &model.InstallRequest{
		ArchivePath:    archiveFile,
		DownloadLatest: latest,
		DestDir:        destDir,
		UpdatePath:     updatePath,
	}

	orch, err := buildOrchestrator(cfg, minVersion, preScript, postScript)
	if err != nil {
		return err
	}

	opts := orchestrator.InstallOptions{
		Repository:   cfg.Repository,
		AssetPattern: cfg.AssetPattern,
	}

	version, err := orch.Install(cmd.Context(), req, opts)
	if err != nil {
		return fmt.Errorf("installation failed: %w", err)
	}

	fmt.Printf("installed: %s\n", version)
	return nil
}

// buildOrchestrator wires the concrete pipeline components from the
// configuration.
func buildOrchestrator(cfg *config.Config, minVersion, preScript, postScript string) (*orchestrator.Orchestrator, error) {
	verifier, err := verify.NewVerifier(minVersion)
	if err != nil {
		return nil, err
	}

	var hookExec hooks.Executor
	if preScript != "" || postScript != "" {
		exec := hooks.NewTengoExecutor()
		if preScript != "" {
			if err := exec.AddScriptFile(hooks.PreInstall, preScript); err != nil {
				return nil, err
			}
		}
		if postScript != "" {
			if err := exec.AddScriptFile(hooks.PostInstall, postScript); err != nil {
				return nil, err
			}
		}
		hookExec = exec
	}

	return orchestrator.New(
		release.NewResolver(cfg.APIBase, cfg.HTTPTimeout),
		download.NewManager(cfg.HTTPTimeout, ""),
		archive.NewManager(),
		envstore.NewConfigurator(envstore.NewMachineStore()),
		verifier,
		hookExec,
		progressHooks(),
	), nil
}
