package hooks

import (
	"fmt"
	"os"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	pkgerrors "github.com/glorpus-work/jdkup/pkg/errors"
)

// TengoExecutor handles the execution of Tengo hook scripts.
type TengoExecutor struct {
	scripts map[HookType]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]string),
	}
}

// Execute runs the script registered for the hook type with the given context.
func (e *TengoExecutor) Execute(hookType HookType, ctx HookContext) error {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	script, exists := e.scripts[hookType]
	if !exists {
		return nil // No script for this hook type
	}

	scriptInstance := tengo.NewScript([]byte(script))
	scriptInstance.SetImports(stdlib.GetModuleMap("fmt", "os", "text", "times"))

	if err := scriptInstance.Add("installRoot", ctx.InstallRoot); err != nil {
		return fmt.Errorf("failed to add installRoot to script: %w", err)
	}
	if err := scriptInstance.Add("version", ctx.Version); err != nil {
		return fmt.Errorf("failed to add version to script: %w", err)
	}
	for k, v := range ctx.Vars {
		if err := scriptInstance.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable %q to script: %w", k, err)
		}
	}

	compiled, err := scriptInstance.Run()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hookType, pkgerrors.ErrHookExecution, err)
	}

	// A script signals failure by assigning the global "err".
	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return fmt.Errorf("%w: %w", pkgerrors.ErrHookScript, v)
		case string:
			if v != "" {
				return fmt.Errorf("%w: %s", pkgerrors.ErrHookScript, v)
			}
		}
	}
	return nil
}

// AddScript adds or updates a script for the specified hook type.
func (e *TengoExecutor) AddScript(hookType HookType, script string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hookType] = script
}

// AddScriptFile loads a script from path and registers it for the hook type.
func (e *TengoExecutor) AddScriptFile(hookType HookType, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load hook script %s: %w", path, err)
	}
	e.AddScript(hookType, string(content))
	return nil
}

// HasScript checks if a script exists for the specified hook type.
func (e *TengoExecutor) HasScript(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}
