// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	cfg "github.com/psu-tools/psu/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got %T %v", err, err)
	}
	if c.Path != "~/" || c.Language != "en" || !c.Clipboard.OSC52 || c.Debug {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "custom.yaml")
	yaml := "path: /srv/psu\nlanguage: de\nclipboard:\n  osc52: false\n"
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Path != "/srv/psu" || c.Language != "de" || c.Clipboard.OSC52 {
		t.Fatalf("file values not applied: %+v", c)
	}
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	isolate(t)
	t.Setenv("PSU_LANGUAGE", "de")

	cmd := &cobra.Command{}
	cmd.Flags().String("path", "", "")
	if err := cmd.Flags().Set("path", "/from/flag"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if c.Language != "de" {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.Path != "/from/flag" {
		t.Fatalf("flag not applied: %+v", c)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	want := cfg.Config{Path: "~/vault", Language: "de"}
	want.Clipboard.OSC52 = true
	path, err := cfg.WriteConfigFile(&want)
	if err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig after write: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestResolveDataDir(t *testing.T) {
	home := isolate(t)
	homedir.Reset()
	t.Cleanup(homedir.Reset)

	for _, in := range []string{"", "~", "~/"} {
		got, err := cfg.ResolveDataDir(in)
		if err != nil {
			t.Fatalf("ResolveDataDir(%q): %v", in, err)
		}
		if got != home {
			t.Fatalf("ResolveDataDir(%q) = %q, want %q", in, got, home)
		}
	}

	got, err := cfg.ResolveDataDir("~/vault")
	if err != nil || got != filepath.Join(home, "vault") {
		t.Fatalf("ResolveDataDir(~/vault) = %q, %v", got, err)
	}
}
