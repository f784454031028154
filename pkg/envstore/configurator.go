package envstore

import (
	"strings"

	"github.com/glorpus-work/jdkup/pkg/errors"
)

const (
	// HomeVariable is the home-path variable pointing installed software to
	// its root installation directory.
	HomeVariable = "JAVA_HOME"

	// PathVariable is the machine-scoped executable search path.
	PathVariable = "Path"

	// PathSeparator delimits segments of the Path variable.
	PathSeparator = ";"
)

// Configurator applies the post-install environment update against an
// injected variable store, idempotently.
type Configurator struct {
	store Store
}

// NewConfigurator creates a configurator writing through the given store.
func NewConfigurator(store Store) *Configurator {
	return &Configurator{store: store}
}

// Apply points the home variable at installRoot and appends installRoot to
// the Path list. Both writes are skipped when the store already carries the
// wanted value, so repeated runs leave the environment unchanged. The two
// writes are independent; a failure of the second does not roll back the
// first.
func (c *Configurator) Apply(installRoot string) error {
	if err := c.applyHome(installRoot); err != nil {
		return err
	}
	return c.applyPath(installRoot)
}

func (c *Configurator) applyHome(installRoot string) error {
	current, err := c.store.Get(HomeVariable)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", HomeVariable)
	}
	if current == installRoot {
		return nil
	}
	if err := c.store.Set(HomeVariable, installRoot); err != nil {
		return errors.Wrapf(err, "failed to set %s", HomeVariable)
	}
	return nil
}

func (c *Configurator) applyPath(installRoot string) error {
	current, err := c.store.Get(PathVariable)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", PathVariable)
	}
	if containsSegment(current, installRoot) {
		return nil
	}
	updated := installRoot
	if current != "" {
		updated = strings.TrimRight(current, PathSeparator) + PathSeparator + installRoot
	}
	if err := c.store.Set(PathVariable, updated); err != nil {
		return errors.Wrapf(err, "failed to set %s", PathVariable)
	}
	return nil
}

// containsSegment reports whether list already carries dir as a delimited
// segment. Comparison is case-insensitive, matching Windows path semantics.
func containsSegment(list, dir string) bool {
	for _, segment := range strings.Split(list, PathSeparator) {
		if strings.EqualFold(strings.TrimSpace(segment), dir) {
			return true
		}
	}
	return false
}
