// Package platform holds the OS and architecture conventions of the single
// supported JDK release channel.
package platform

import (
	"path/filepath"
	"runtime"
)

const (
	OSWindows = "windows"
	OSLinux   = "linux"
	OSDarwin  = "darwin"
)

// archNames maps Go architecture names to the names used in JDK release asset
// filenames.
var archNames = map[string]string{
	"amd64": "x64",
	"386":   "x86-32",
	"arm64": "aarch64",
}

// AssetArch returns the release-asset architecture token for the current
// process architecture.
func AssetArch() string {
	if name, ok := archNames[runtime.GOARCH]; ok {
		return name
	}
	return runtime.GOARCH
}

// JavaExecutable returns the path of the java launcher relative to an
// installation root.
func JavaExecutable() string {
	name := "java"
	if runtime.GOOS == OSWindows {
		name += ".exe"
	}
	return filepath.Join("bin", name)
}

// DefaultInstallDir returns the well-known destination directory used when the
// caller does not supply one.
func DefaultInstallDir() string {
	if runtime.GOOS == OSWindows {
		return `C:\Program Files\Java\jdk`
	}
	return "/opt/java/jdk"
}
