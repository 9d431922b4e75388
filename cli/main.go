// Command ytscan scans a YouTube channel's playlists for videos that are not
// in its public listing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"ytscan"
	"ytscan/internal/config"
	"ytscan/internal/scan"
	"ytscan/internal/storage"
	"ytscan/internal/youtube"
)

// tool is the yt-dlp surface the command needs.
type tool interface {
	youtube.Runner
	CheckInstalled(ctx context.Context) error
}

// app carries the command's collaborators so tests can replace them.
type app struct {
	stdout, stderr io.Writer
	now            func() time.Time
	loadConfig     func() (*config.Config, error)
	newTool        func(cfg *config.Config, log *slog.Logger) tool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		now:        time.Now,
		loadConfig: config.Load,
		newTool:    newYtdlp,
	}
	os.Exit(a.run(ctx, os.Args[1:]))
}

func newYtdlp(cfg *config.Config, log *slog.Logger) tool {
	y := youtube.NewYtdlp()
	y.Path = cfg.YtdlpPath
	y.Timeout = cfg.YtdlpTimeout
	y.ExtraArgs = cfg.ExtraArgs
	y.Limiter = cfg.Limiter()
	y.Logger = log
	return y
}

var errUsage = errors.New("usage")

type options struct {
	channel       string
	output        string
	playlistsOnly bool
	detailed      bool
	verbose       bool
}

// parseArgs accepts flags both before and after the channel argument.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("ytscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.output, "o", "", "Output JSON file (default: youtube_scan_YYYY-MM-DD_HHMMSS.json)")
	fs.StringVar(&opts.output, "output", "", "Output JSON file (same as -o)")
	fs.BoolVar(&opts.playlistsOnly, "playlists-only", false, "Scan playlists only (faster, flags nothing)")
	fs.BoolVar(&opts.detailed, "detailed", false, "Fetch metadata for each flagged video (slower, more accurate dates)")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ytscan [flags] <channel-url>\n\nScan a YouTube channel to find unlisted videos.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	switch len(positional) {
	case 0:
		fmt.Fprintf(stderr, "Error: missing channel-url\n")
	case 1:
		opts.channel = positional[0]
		return opts, nil
	default:
		fmt.Fprintf(stderr, "Error: expected one channel-url, got %d arguments\n", len(positional))
	}
	fs.Usage()
	return nil, errUsage
}

func (a *app) run(ctx context.Context, args []string) int {
	opts, err := parseArgs(args, a.stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error loading config: %v\n", err)
		return 1
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error loading config: %v\n", err)
		return 1
	}
	log := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	channelURL, err := youtube.NormalizeChannelURL(opts.channel)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %q is not a channel URL, @handle or channel id\n", opts.channel)
		return 1
	}

	yt := a.newTool(cfg, log)
	if err := yt.CheckInstalled(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		fmt.Fprintf(a.stderr, "Install yt-dlp: https://github.com/yt-dlp/yt-dlp\n")
		return 1
	}

	started := a.now()
	output := opts.output
	if output == "" {
		output = filepath.Join(cfg.OutputDir, storage.DefaultResultPath(started))
	}

	mode := scan.Options{IncludePublic: !opts.playlistsOnly, Detailed: opts.detailed}
	printBanner(a.stdout, channelURL, started, mode)

	scanner := scan.NewScanner(youtube.NewFetcher(yt))
	scanner.Observer = newConsoleObserver(a.stderr)
	scanner.Logger = log
	scanner.Now = func() time.Time { return started }

	res, err := scanner.Scan(ctx, channelURL, mode)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(a.stderr, "Scan interrupted\n")
		} else {
			fmt.Fprintf(a.stderr, "Error scanning channel: %v\n", err)
		}
		return 1
	}

	printResults(a.stdout, res)

	if err := ytscan.SaveResult(output, res); err != nil {
		fmt.Fprintf(a.stderr, "Error saving results: %v\n", err)
		return 1
	}
	fmt.Fprintf(a.stdout, "\nResults saved to: %s\n", output)
	fmt.Fprintf(a.stdout, "Links saved to: %s\n", storage.LinksPath(output))
	return 0
}
