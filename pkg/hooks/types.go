// Package hooks runs user-supplied Tengo scripts around an installation.
package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PreInstall  HookType = "pre-install"
	PostInstall HookType = "post-install"
)

// HookContext contains information passed to hook scripts.
type HookContext struct {
	InstallRoot string
	Version     string
	Vars        map[string]interface{}
}

// Executor defines the interface for running hook scripts.
type Executor interface {
	// Execute runs the script registered for the hook type, if any.
	Execute(hookType HookType, ctx HookContext) error

	// HasScript checks if a script exists for the hook type.
	HasScript(hookType HookType) bool
}
