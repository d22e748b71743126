package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/tubetui/tubetui/internal/commands"
	"github.com/tubetui/tubetui/internal/core/config"
	"github.com/tubetui/tubetui/internal/core/styles"
	"github.com/tubetui/tubetui/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set so
	// version remains "dev". Fall back to runtime/debug.BuildInfo.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tubetui",
		Usage:     "Explore YouTube comments and chat about them with an AI assistant",
		UsageText: "tubetui [global options] command [command options]",
		Description: `tubetui fetches the comments of a YouTube video and lets you search,
paginate, and expand them in the terminal. Any comment can be handed off
to an AI chat session to discuss or solve the problem it raises.

Run 'tubetui' with no arguments to open the comment explorer.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TUBETUI_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tubetui.log)",
				Sources:     cli.EnvVars("TUBETUI_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "base URL of the backend services (overrides config)",
				Sources:     cli.EnvVars("TUBETUI_API_URL"),
				Destination: &flags.APIURL,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TUBETUI_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TUBETUI_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file so the TUI's display is never corrupted.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "tubetui.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.APIURL != "" {
				cfg.API.BaseURL = flags.APIURL
			}
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("validate config: %w", err)
			}
			flags.Config = &cfg

			// Apply configured theme; fall back to the default on unknown names.
			palette, ok := styles.GetPalette(cfg.TUI.Theme)
			if !ok {
				log.Warn().Str("theme", cfg.TUI.Theme).Msg("unknown theme, using default")
				palette, _ = styles.GetPalette(styles.DefaultTheme)
			}
			styles.SetTheme(palette)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	browseCmd := commands.NewBrowseCmd(flags)

	app = browseCmd.Register(app)
	app = commands.NewAskCmd(flags).Register(app)
	app = commands.NewAuthCmd(flags).Register(app)

	// Open the explorer when no subcommand is given. A bare argument is
	// treated as the video reference to load.
	app.Action = browseCmd.Run

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
