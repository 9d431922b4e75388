package youtube

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultYtdlpPath    = "yt-dlp"
	defaultYtdlpTimeout = 300 * time.Second

	// waitDelay bounds how long a killed yt-dlp may hold its output pipes.
	waitDelay = 2 * time.Second
)

// Runner executes yt-dlp with the given arguments and returns its stdout.
//
// Implementations only return an error for conditions that must stop a scan:
// a missing binary or a canceled parent context. Timeouts and failed runs
// yield whatever output was produced, usually none.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// Ytdlp runs yt-dlp as a subprocess.
type Ytdlp struct {
	// Path is the path to the yt-dlp executable. Defaults to "yt-dlp".
	Path string

	// Timeout bounds a single invocation. Defaults to 300 seconds.
	Timeout time.Duration

	// ExtraArgs are passed to every invocation, before the query arguments.
	ExtraArgs []string

	// Limiter paces invocations when set. Nil means no pacing.
	Limiter *rate.Limiter

	// Logger receives timeout and exit diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewYtdlp creates a runner with default path and timeout.
func NewYtdlp() *Ytdlp {
	return &Ytdlp{
		Path:    defaultYtdlpPath,
		Timeout: defaultYtdlpTimeout,
	}
}

// CheckInstalled verifies that yt-dlp is available.
func (y *Ytdlp) CheckInstalled(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, y.path(), "--version")
	if err := cmd.Run(); err != nil {
		return &ToolError{Tool: y.path(), Err: ErrYtdlpNotInstalled}
	}
	return nil
}

// Run executes yt-dlp once and returns its standard output.
func (y *Ytdlp) Run(ctx context.Context, args ...string) (string, error) {
	if y.Limiter != nil {
		if err := y.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	timeout := y.Timeout
	if timeout <= 0 {
		timeout = defaultYtdlpTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	argv := make([]string, 0, len(y.ExtraArgs)+len(args))
	argv = append(argv, y.ExtraArgs...)
	argv = append(argv, args...)

	cmd := exec.CommandContext(cmdCtx, y.path(), argv...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	if isNotFound(err) {
		return "", &ToolError{Tool: y.path(), Err: ErrYtdlpNotInstalled}
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		y.logger().Warn("yt-dlp timed out",
			slog.Duration("timeout", timeout),
			slog.String("target", target(args)),
		)
		return "", nil
	}

	// yt-dlp exits non-zero when a listing contains entries it could not
	// resolve; the lines it did print are still usable.
	y.logger().Debug("yt-dlp exited with error",
		slog.String("target", target(args)),
		slog.Any("error", err),
		slog.String("stderr", strings.TrimSpace(stderr.String())),
	)
	return stdout.String(), nil
}

func (y *Ytdlp) path() string {
	if y.Path != "" {
		return y.Path
	}
	return defaultYtdlpPath
}

func (y *Ytdlp) logger() *slog.Logger {
	if y.Logger != nil {
		return y.Logger
	}
	return slog.Default()
}

// isNotFound reports whether err means the executable could not be started
// because it does not exist.
func isNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist)
}

// target returns the last argument, which is the URL for every query we build.
func target(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1]
}
