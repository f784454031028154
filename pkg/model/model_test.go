package model

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glorpus-work/jdkup/pkg/errors"
)

func TestInstallRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     InstallRequest
		wantErr bool
	}{
		{
			name: "explicit file",
			req:  InstallRequest{ArchivePath: "jdk.zip", DestDir: "/out"},
		},
		{
			name: "download latest",
			req:  InstallRequest{DownloadLatest: true, DestDir: "/out"},
		},
		{
			name:    "neither mode",
			req:     InstallRequest{DestDir: "/out"},
			wantErr: true,
		},
		{
			name:    "both modes",
			req:     InstallRequest{ArchivePath: "jdk.zip", DownloadLatest: true, DestDir: "/out"},
			wantErr: true,
		},
		{
			name:    "missing destination",
			req:     InstallRequest{ArchivePath: "jdk.zip"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.True(t, stderrors.Is(err, errors.ErrConfiguration))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
