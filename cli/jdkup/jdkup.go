package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/jdkup/internal/cli"
	"github.com/glorpus-work/jdkup/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	jsonOutput bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jdkup",
		Short: "A local JDK installation utility",
		Long: `jdkup installs a JDK binary release into a destination directory:
- acquire a release archive (local file or latest matching release asset)
- extract it, stripping the archive's wrapping root folder
- optionally point the machine-scoped JAVA_HOME and Path at the install
- verify the install by invoking the java executable`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.InitLogger(verbose, jsonOutput)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json-log", false, "log in JSON format")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.JSONOutput = &jsonOutput

	// Add subcommands
	cmd.AddCommand(
		cli.NewInstallCmd(),
		cli.NewVerifyCmd(),
		cli.NewEnvCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
