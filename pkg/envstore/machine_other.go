//go:build !windows

package envstore

import (
	"github.com/glorpus-work/jdkup/pkg/errors"
)

// MachineStore is only functional on Windows, where machine-scoped
// environment variables live in the registry. On other systems every
// operation fails.
type MachineStore struct{}

// NewMachineStore returns a machine environment store stub.
func NewMachineStore() *MachineStore {
	return &MachineStore{}
}

// Get always fails on non-Windows systems.
func (s *MachineStore) Get(string) (string, error) {
	return "", errors.Wrap(errors.ErrEnvironment, "machine-scoped environment variables are only supported on windows")
}

// Set always fails on non-Windows systems.
func (s *MachineStore) Set(string, string) error {
	return errors.Wrap(errors.ErrEnvironment, "machine-scoped environment variables are only supported on windows")
}
