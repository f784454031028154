// Package verify confirms that an extracted JDK tree is a usable installation
// by invoking its java launcher.
package verify

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/platform"
)

// versionPattern matches the version marker line printed by `java -version`.
var versionPattern = regexp.MustCompile(`(?i)(?:java|openjdk) version "([^"]+)"`)

// Verifier locates and invokes the installed java executable.
type Verifier struct {
	minVersion *goversion.Version
}

// NewVerifier creates a verifier. When minVersion is non-empty, installations
// reporting an older version are rejected.
func NewVerifier(minVersion string) (*Verifier, error) {
	v := &Verifier{}
	if minVersion != "" {
		parsed, err := goversion.NewVersion(minVersion)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrConfiguration, "invalid minimum version %q: %v", minVersion, err)
		}
		v.minVersion = parsed
	}
	return v, nil
}

// Verify resolves the expected executable below destDir, runs it with
// -version and returns the version marker line. A missing executable is proof
// the extraction did not produce a valid installation layout.
//
// Note that this executes a binary that was just extracted from a downloaded
// archive; the release channel publishes no checksums the tool could verify
// beforehand.
func (v *Verifier) Verify(ctx context.Context, destDir string) (string, error) {
	javaPath := filepath.Join(destDir, platform.JavaExecutable())
	if _, err := os.Stat(javaPath); err != nil {
		return "", errors.Wrapf(errors.ErrVerification, "binary not found at %s", javaPath)
	}

	// java prints its version banner to stderr, so capture both streams.
	output, err := exec.CommandContext(ctx, javaPath, "-version").CombinedOutput()
	if err != nil {
		return "", errors.Wrapf(errors.ErrVerification, "failed to run %s: %v", javaPath, err)
	}

	line, number, ok := extractVersion(string(output))
	if !ok {
		return "", errors.Wrapf(errors.ErrVerification, "no version marker in output of %s", javaPath)
	}

	if v.minVersion != nil {
		if err := v.checkMinimum(number); err != nil {
			return "", err
		}
	}
	return line, nil
}

// checkMinimum rejects versions below the configured minimum.
func (v *Verifier) checkMinimum(number string) error {
	installed, err := goversion.NewVersion(normalizeVersion(number))
	if err != nil {
		return errors.Wrapf(errors.ErrVerification, "unparseable version %q: %v", number, err)
	}
	if installed.LessThan(v.minVersion) {
		return errors.Wrapf(errors.ErrVerification, "installed version %s is older than required %s", number, v.minVersion)
	}
	return nil
}

// extractVersion returns the first line carrying a version marker and the
// quoted version number it contains.
func extractVersion(output string) (line, number string, ok bool) {
	for _, l := range strings.Split(output, "\n") {
		if m := versionPattern.FindStringSubmatch(l); m != nil {
			return strings.TrimSpace(l), m[1], true
		}
	}
	return "", "", false
}

// normalizeVersion strips legacy update suffixes ("1.8.0_392") that the
// semantic version parser rejects.
func normalizeVersion(number string) string {
	if i := strings.IndexAny(number, "_+"); i >= 0 {
		return number[:i]
	}
	return number
}
