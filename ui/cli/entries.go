// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/model"
	"github.com/psu-tools/psu/internal/security"
	"github.com/psu-tools/psu/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	oldEntryColor = color.New(color.FgRed)
	newEntryColor = color.New(color.FgGreen)
	noticeColor   = color.New(color.FgCyan)
)

// parseID parses a position id as printed by `psu show`.
func parseID(s string) (int, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return int(id), nil
}

// readPassword prompts for a password. On a terminal the input is not
// echoed; otherwise one line is read from in.
func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), i18n.T("cli.password_prompt"))
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		secret := security.Secret(b)
		defer secret.Zero()
		return string(secret.Bytes()), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// renderEntries formats entries as a bordered table with the position id in
// the first column.
func renderEntries(entries []model.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(i18n.T("table.header.id"), i18n.T("table.header.service"), i18n.T("table.header.login"), i18n.T("table.header.password"))
	for _, e := range entries {
		t.Row(strconv.FormatUint(uint64(e.ID), 10), e.Service(), e.Login(), e.Password())
	}
	return t.Render()
}

func printEntry(w io.Writer, c *color.Color, e model.Entry) {
	c.Fprintf(w, "%d   %s\n", e.ID, e)
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <service> <login> [password]",
		Short: "Add an entry",
		Long: `Appends an entry to the table. When the password is omitted it is read
from the terminal without echo.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 3 {
				password = args[2]
			} else {
				var err error
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			entries, _ := a.load()
			e := model.NewEntry(0, args[0], args[1], password)
			entries = store.Add(entries, e)
			if err := a.store.Persist(entries); err != nil {
				return err
			}
			logging.Debugf("added %s/%s password %v", e.Service(), e.Login(), security.FromString(e.Password()))
			noticeColor.Fprintln(cmd.OutOrStdout(), i18n.T("cli.added", e.Service(), e.Login(), e.Password()))
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one or all entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New("specify an id or --all")
			}
			entries, _ := a.load()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.empty"))
				return nil
			}
			if all {
				fmt.Fprintln(cmd.OutOrStdout(), renderEntries(entries))
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if id >= len(entries) {
				return fmt.Errorf("%s: %w", i18n.T("cli.not_found", id), store.ErrOutOfRange)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEntries(entries[id:id+1]))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show every entry")
	return cmd
}

func newModifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "modify <id> <service> <login> <password>",
		Short: "Overwrite an entry",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			entries, _ := a.load()
			if id >= len(entries) {
				return fmt.Errorf("%s: %w", i18n.T("cli.not_found", id), store.ErrOutOfRange)
			}

			old := entries[id]
			if err := store.Update(entries, id, model.NewEntry(0, args[1], args[2], args[3])); err != nil {
				return err
			}
			if err := a.store.Persist(entries); err != nil {
				return err
			}
			logging.Debugf("modified entry %d: %s/%s password %v", id, entries[id].Service(), entries[id].Login(), security.FromString(entries[id].Password()))

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, i18n.T("cli.old_entry"))
			printEntry(w, oldEntryColor, old)
			fmt.Fprintln(w, i18n.T("cli.new_entry"))
			printEntry(w, newEntryColor, entries[id])
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove one or all entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New("specify an id or --all")
			}
			if all {
				if err := a.store.Persist(nil); err != nil {
					return err
				}
				oldEntryColor.Fprintln(cmd.OutOrStdout(), i18n.T("cli.removed_all"))
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			entries, _ := a.load()
			if id >= len(entries) {
				return fmt.Errorf("%s: %w", i18n.T("cli.not_found", id), store.ErrOutOfRange)
			}
			removed := entries[id]
			if entries, err = store.Remove(entries, id); err != nil {
				return err
			}
			if err := a.store.Persist(entries); err != nil {
				return err
			}
			oldEntryColor.Fprintln(cmd.OutOrStdout(), i18n.T("cli.removed", removed.ID, removed.Service(), removed.Login(), removed.Password()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "remove every entry")
	return cmd
}
