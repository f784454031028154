package platform

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaExecutable(t *testing.T) {
	exe := JavaExecutable()
	assert.Equal(t, "bin", filepath.Dir(exe))
	if runtime.GOOS == OSWindows {
		assert.Equal(t, "java.exe", filepath.Base(exe))
	} else {
		assert.Equal(t, "java", filepath.Base(exe))
	}
}

func TestAssetArch(t *testing.T) {
	arch := AssetArch()
	assert.NotEmpty(t, arch)
	if runtime.GOARCH == "amd64" {
		assert.Equal(t, "x64", arch)
	}
}

func TestDefaultInstallDir(t *testing.T) {
	assert.NotEmpty(t, DefaultInstallDir())
}
