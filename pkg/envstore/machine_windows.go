//go:build windows

package envstore

import (
	"github.com/glorpus-work/jdkup/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

// machineEnvironmentKey is the registry key backing machine-scoped
// environment variables. Writing it requires administrative privilege.
const machineEnvironmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// MachineStore reads and writes machine-scoped environment variables through
// the Windows registry.
type MachineStore struct{}

// NewMachineStore returns the registry-backed machine environment store.
func NewMachineStore() *MachineStore {
	return &MachineStore{}
}

// Get returns the current value of the variable, or "" when unset.
func (s *MachineStore) Get(name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, machineEnvironmentKey, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open machine environment key")
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(name)
	if err == registry.ErrNotExist {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read machine environment variable %s", name)
	}
	return value, nil
}

// Set writes the variable as REG_EXPAND_SZ so values referencing other
// variables keep expanding for consumers.
func (s *MachineStore) Set(name, value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, machineEnvironmentKey, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, "failed to open machine environment key for writing")
	}
	defer func() { _ = k.Close() }()

	if err := k.SetExpandStringValue(name, value); err != nil {
		return errors.Wrapf(err, "failed to write machine environment variable %s", name)
	}
	return nil
}
