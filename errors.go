package ytscan

import (
	"ytscan/internal/config"
	"ytscan/internal/storage"
	"ytscan/internal/youtube"
)

// Error handling types exported for library users.
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytscan.ErrYtdlpNotInstalled) {
//		fmt.Println("yt-dlp missing")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var toolErr *ytscan.ToolError
//	if errors.As(err, &toolErr) {
//		fmt.Printf("%s failed: %v\n", toolErr.Tool, toolErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// ToolError wraps failures to run an external tool.
	ToolError = youtube.ToolError
	// StorageError wraps errors while writing result files.
	StorageError = storage.StorageError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrYtdlpNotInstalled indicates yt-dlp binary was not found.
	ErrYtdlpNotInstalled = youtube.ErrYtdlpNotInstalled
	// ErrInvalidURL indicates the channel input is not a URL, @handle or channel ID.
	ErrInvalidURL = youtube.ErrInvalidURL
	// ErrInvalidConfig indicates a configuration value failed validation.
	ErrInvalidConfig = config.ErrInvalidConfig

	// ErrInvalidInput indicates an empty output path.
	ErrInvalidInput = storage.ErrInvalidInput
	// ErrLockTimeout indicates a timeout acquiring a result file lock.
	ErrLockTimeout = storage.ErrLockTimeout
)
