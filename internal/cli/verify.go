package cli

import (
	"fmt"

	"github.com/glorpus-work/jdkup/pkg/verify"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	var minVersion string

	cmd := &cobra.Command{
		Use:   "verify [DIR]",
		Short: "Verify an installed JDK",
		Long: `Verify that the directory contains a usable JDK installation by invoking
its java executable and reporting the version string.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			destDir := cfg.DestDir
			if len(args) == 1 {
				destDir = args[0]
			}
			if minVersion == "" {
				minVersion = cfg.MinJavaVersion
			}

			verifier, err := verify.NewVerifier(minVersion)
			if err != nil {
				return err
			}
			version, err := verifier.Verify(cmd.Context(), destDir)
			if err != nil {
				return err
			}
			fmt.Println(version)
			return nil
		},
	}

	cmd.Flags().StringVar(&minVersion, "min-version", "", "Reject installations older than this version (defaults to config)")

	return cmd
}
