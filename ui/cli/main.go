// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the global flags and the configuration
// shared by every subcommand.

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/psu-tools/psu/buildvars"
	"github.com/psu-tools/psu/internal/clipboard"
	"github.com/psu-tools/psu/internal/config"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/model"
	"github.com/psu-tools/psu/internal/screen"
	"github.com/psu-tools/psu/internal/store"
	"github.com/psu-tools/psu/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const logFileName = "psu.log"

// app holds what PersistentPreRunE resolved for the running command.
type app struct {
	cfg   config.Config
	store *store.Store
}

// runTUI is swapped in tests so the root command can run without a terminal.
var runTUI = tui.Run

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// setup loads the configuration, writing a default file on first run, and
// prepares logging, localisation and the data store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	explicit, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	firstRun := errors.As(err, &viper.ConfigFileNotFoundError{})
	if err != nil && !firstRun {
		return fmt.Errorf("error loading config: %w", err)
	}

	logging.SetDebug(a.cfg.Debug)
	i18n.Init(a.cfg.Language)

	if firstRun {
		def := config.Default()
		if path, writeErr := config.WriteConfigFile(&def); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("%s", i18n.T("cli.config_written", path))
		}
	}

	dir, err := config.ResolveDataDir(a.cfg.Path)
	if err != nil {
		return err
	}
	a.store = store.New(dir)
	logging.Debugf("data file: %s", a.store.Path())
	return nil
}

// load reads the data file and logs every skipped row.
func (a *app) load() ([]model.Entry, int) {
	entries, warnings := a.store.Load()
	for _, w := range warnings {
		logging.Warnf("%s: skipped %s", a.store.Path(), w)
	}
	return entries, len(warnings)
}

// runInteractive hands the terminal to the TUI. Logging goes to a file while
// it runs.
func (a *app) runInteractive(*cobra.Command, []string) error {
	if dir, err := config.Dir(); err == nil {
		closer, err := logging.ToFile(filepath.Join(dir, logFileName))
		if err != nil {
			logging.Warnf("%v", err)
		} else {
			defer func() {
				logging.SetOutput(os.Stderr)
				_ = closer.Close()
			}()
		}
	}

	entries, skipped := a.load()
	ctrl := screen.New(entries, a.store, clipboard.New(a.cfg.Clipboard.OSC52))
	return runTUI(ctrl, skipped)
}

// normalizeFlags accepts --lang as an alias of --language.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "lang" {
		name = "language"
	}
	return pflag.NormalizedName(name)
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns an independent command tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "psu",
		Short: "psu keeps service, login and password triples in a terminal table.",
		Long: `psu stores credentials as rows of a plain CSV file and edits them in a
keyboard-driven terminal table. Every change is written back atomically.

Running without a subcommand will launch the interactive TUI.`,
		Version:           resolveVersion(nil),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Args:              cobra.NoArgs,
		RunE:              a.runInteractive,
	}

	cmd.SetGlobalNormalizationFunc(normalizeFlags)
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.String("path", "", "directory holding "+store.FileName)
	flags.String("language", "", `interface language ("en", "de")`)
	flags.Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newAddCmd(a),
		newShowCmd(a),
		newModifyCmd(a),
		newRemoveCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newImportSQLiteCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// Needs neither config nor data file.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), resolveVersion(nil))
		},
	}
}

// resolveVersion returns the link-time version, falling back to the module
// version recorded by the Go toolchain, with the short VCS revision appended
// when known. If info is nil it is read from the running binary.
func resolveVersion(info *debug.BuildInfo) string {
	version := buildvars.VersionOrDefault("dev")
	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info == nil {
		return version
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 && !strings.Contains(version, s.Value[:7]) {
			version += " (" + s.Value[:7] + ")"
		}
	}
	return version
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}
