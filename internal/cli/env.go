package cli

import (
	"fmt"

	"github.com/glorpus-work/jdkup/pkg/envstore"
	"github.com/spf13/cobra"
)

// NewEnvCmd creates the env command.
func NewEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env [DIR]",
		Short: "Point the machine environment at an installed JDK",
		Long: `Set the machine-scoped JAVA_HOME variable to the installation directory and
append it to the system Path. Both writes are idempotent: re-running against
the same directory changes nothing. Requires administrative privilege.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			destDir := cfg.DestDir
			if len(args) == 1 {
				destDir = args[0]
			}

			configurator := envstore.NewConfigurator(envstore.NewMachineStore())
			if err := configurator.Apply(destDir); err != nil {
				return err
			}
			fmt.Printf("%s=%s\n", envstore.HomeVariable, destDir)
			return nil
		},
	}

	return cmd
}
