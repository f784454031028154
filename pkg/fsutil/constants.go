package fsutil

// File and directory permission constants, used consistently throughout the
// application.
const (
	// FileModeDefault is the default mode for regular files (-rw-r--r--).
	FileModeDefault = 0o644
	// FileModeExec is the mode for executable files (-rwxr-xr-x).
	FileModeExec = 0o755
	// DirModeDefault is the default mode for directories (drwxr-xr-x).
	DirModeDefault = 0o755
)
