// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Termfolio using the
// Cobra library. It defines the root command, which runs the portfolio on
// the selected backend, its flags and the main entry point for execution.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/termfolio/termfolio/buildvars"
	"github.com/termfolio/termfolio/internal/app"
	"github.com/termfolio/termfolio/internal/config"
	"github.com/termfolio/termfolio/internal/i18n"
	"github.com/termfolio/termfolio/internal/logging"
	"github.com/termfolio/termfolio/ui/tcellhost"
	"github.com/termfolio/termfolio/ui/tui"
	"github.com/termfolio/termfolio/ui/tui/models/views/root"
)

const modulePath = "github.com/termfolio/termfolio"

var ErrUnknownBackend = errors.New("unknown backend")

var cfgFile string
var appConfig config.Config
var logFile *os.File

// backend runs the assembled portfolio until the user quits.
type backend func(ctx context.Context, a *app.App) error

var backends = map[string]backend{
	"bubbletea": runBubbletea,
	"tcell":     runTcell,
}

func runBubbletea(ctx context.Context, a *app.App) error {
	model, err := root.New(a.State, a.Handler, a.Renderer)
	if err != nil {
		return err
	}
	return tui.Run(ctx, model)
}

func runTcell(ctx context.Context, a *app.App) error {
	return tcellhost.Run(ctx, a.State, a.Handler, a.Renderer)
}

// Backends lists the names accepted by --backend.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupBackend(name string) (backend, error) {
	run, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return run, nil
}

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	// Load optional config file argument from cli
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optional_config_path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// The TUI owns stdout, so logs only go to a file when one is configured.
	closeLogFile()
	if appConfig.Log.File != "" {
		logFile, err = logging.OpenFile(appConfig.Log.File)
		if err != nil {
			return err
		}
		if err := logging.Configure(appConfig.Log.Level, logFile); err != nil {
			return err
		}
	} else if err := logging.Configure(appConfig.Log.Level, nil); err != nil {
		return err
	}

	// Initialize i18n
	if err := i18n.Init(appConfig.Language); err != nil {
		return err
	}
	logging.Debugf("config loaded, backend %s, language %s", appConfig.Backend, appConfig.Language)
	return nil
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Execute runs the CLI entrypoint. The cmd/termfolio main package should
// call this function and handle process exit.
func Execute() error {
	if buildvars.Version == "" {
		v, c, _ := resolveBuildVersion(nil)
		buildvars.Version = v
		if buildvars.Commit == "" {
			buildvars.Commit = c
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeLogFile()

	return NewRootCmd().ExecuteContext(ctx)
}

func applyDefaultFlags(cmd *cobra.Command) {
	// pflag panics on duplicate definitions, so check first.
	flags := cmd.PersistentFlags()
	if flags.Lookup("config") == nil {
		flags.StringVar(&cfgFile, "config", "", "config file")
	}
	if flags.Lookup("backend") == nil {
		flags.String("backend", "bubbletea", fmt.Sprintf("Terminal backend (%s)", strings.Join(Backends(), ", ")))
	}
	if flags.Lookup("language") == nil {
		flags.String("language", "en", `UI language ("en", "de")`)
	}
	if flags.Lookup("tabs") == nil {
		flags.StringSlice("tabs", nil, "Comma separated tab labels")
	}
	if flags.Lookup("initial_tab") == nil {
		flags.String("initial_tab", "", "Label of the tab selected on start")
	}
	if flags.Lookup("log.file") == nil {
		flags.String("log.file", "", "Write logs to this file")
	}
	if flags.Lookup("log.level") == nil {
		flags.String("log.level", "info", "Log level (debug, info, warn, error)")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "termfolio",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := lookupBackend(appConfig.Backend)
			if err != nil {
				return err
			}
			a, err := app.New(appConfig)
			if err != nil {
				return err
			}
			return run(cmd.Context(), a)
		},
	}

	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	applyDefaultFlags(cmd)
	cmd.AddCommand(newVersionCmd(), newConfigCmd(), newKeysCmd())
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	return compositeVersion
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.Commit
	resolvedDate := ""

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
