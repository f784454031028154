// Package errors defines the sentinel errors shared across jdkup packages.
package errors

import "fmt"

// Stage errors. Every failure of an installation run wraps exactly one of
// these so callers can tell which stage aborted the pipeline.
var (
	// ErrConfiguration indicates an invalid installation request (e.g. neither
	// an archive file nor download-latest was selected).
	ErrConfiguration = fmt.Errorf("invalid configuration")

	// ErrResolution indicates the release listing was unreachable, unparseable
	// or contained no matching asset.
	ErrResolution = fmt.Errorf("release resolution failed")

	// ErrAcquisition indicates the archive download failed.
	ErrAcquisition = fmt.Errorf("archive acquisition failed")

	// ErrExtraction indicates the archive could not be extracted into the
	// destination directory.
	ErrExtraction = fmt.Errorf("archive extraction failed")

	// ErrEnvironment indicates the machine environment update failed.
	ErrEnvironment = fmt.Errorf("environment update failed")

	// ErrVerification indicates the installed executable is missing or did not
	// report a usable version.
	ErrVerification = fmt.Errorf("installation verification failed")
)

// Hook errors.
var (
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
