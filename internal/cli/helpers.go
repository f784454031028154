package cli

import (
	"fmt"

	"github.com/glorpus-work/jdkup/pkg/config"
	"github.com/glorpus-work/jdkup/pkg/orchestrator"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	JSONOutput *bool
)

// loadConfig loads the effective configuration, honoring the global
// --config flag.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}
	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// progressHooks returns event hooks printing simple, human-friendly progress.
func progressHooks() orchestrator.Hooks {
	return orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		if e.Msg != "" {
			fmt.Printf("%s: %s\n", e.Phase, e.Msg)
		} else {
			fmt.Printf("%s\n", e.Phase)
		}
	}}
}
