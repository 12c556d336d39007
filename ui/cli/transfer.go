// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/store"
	"github.com/psu-tools/psu/internal/store/legacy"
	"github.com/spf13/cobra"
)

// defaultBackupName returns the file name used when `psu backup` gets no
// argument.
func defaultBackupName(now time.Time) string {
	return fmt.Sprintf("psu-backup-%s.json.zst", now.Format("2006-01-02"))
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [file]",
		Short: "Write a compressed JSON backup of all entries",
		Long: `Writes every entry to a Zstandard-compressed JSON file. Without an argument
the file is named after the current date, e.g. psu-backup-2026-10-16.json.zst.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := defaultBackupName(time.Now())
			if len(args) == 1 {
				out = args[0]
			}
			entries, _ := a.load()

			f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			if err := store.WriteBackup(f, entries); err != nil {
				_ = f.Close()
				return fmt.Errorf("write backup: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close backup file: %w", err)
			}
			logging.Infof("backup of %d entries written to %s", len(entries), out)
			noticeColor.Fprintln(cmd.OutOrStdout(), i18n.T("cli.backup_written", out))
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "restore <backup-file.zst>",
		Short: "Restore entries from a compressed JSON backup",
		Long: `By default the entries of the backup are appended to the current table.
With --full the current table is replaced by the backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open backup: %w", err)
			}
			defer func() { _ = f.Close() }()

			data, err := store.ReadBackup(f)
			if err != nil {
				return err
			}

			entries := data.Entries
			if !full {
				current, _ := a.load()
				entries = append(current, data.Entries...)
			}
			if err := a.store.Persist(entries); err != nil {
				return err
			}
			noticeColor.Fprintln(cmd.OutOrStdout(), i18n.T("cli.restored", len(data.Entries)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "replace all entries instead of appending")
	return cmd
}

func newImportSQLiteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import-sqlite <db>",
		Short: "Append the entries of a legacy SQLite password store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := legacy.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			imported, err := db.Entries(cmd.Context())
			if err != nil {
				return err
			}
			current, _ := a.load()
			if err := a.store.Persist(append(current, imported...)); err != nil {
				return err
			}
			noticeColor.Fprintln(cmd.OutOrStdout(), i18n.T("cli.imported", len(imported)))
			return nil
		},
	}
}
