// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package store owns the persisted entry collection. Entries live in a small
// comma-delimited file that is always replaced atomically: the full
// collection is written to a temporary file which is then renamed over the
// real one.
package store // import "github.com/psu-tools/psu/internal/store"

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/model"
)

const (
	// FileName is the name of the entry file inside the data directory.
	FileName = "psu.csv"
	// TempFileName is written first and renamed over FileName on success.
	TempFileName = "psu.csv.temp"
)

// header is the column order written by Persist. Load matches columns by
// name, so older files with a different order still read correctly.
var header = []string{"Id", "Service", "Login", "Password"}

// ErrOutOfRange is returned when a position does not address an entry.
var ErrOutOfRange = errors.New("entry position out of range")

// LoadWarning describes a row that could not be read and was skipped.
type LoadWarning struct {
	Line   int
	Reason string
}

func (w LoadWarning) String() string {
	if w.Line <= 0 {
		return w.Reason
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// Store is the handle to one entry file. It is created from the data
// directory and passed explicitly to whoever needs to load or persist.
type Store struct {
	dir      string
	path     string
	tempPath string

	// rename commits a written temp file. Tests swap it to simulate a crash
	// between the write and the rename.
	rename func(oldpath, newpath string) error
}

// New returns a store whose file lives in dir.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		path:     filepath.Join(dir, FileName),
		tempPath: filepath.Join(dir, TempFileName),
		rename:   os.Rename,
	}
}

// Path returns the location of the persisted file.
func (s *Store) Path() string { return s.path }

// TempPath returns the location of the temporary file used by Persist.
func (s *Store) TempPath() string { return s.tempPath }

// Load reads the persisted collection. It never fails: a missing or
// unreadable file yields an empty collection, and rows that cannot be parsed
// are skipped and reported as warnings. Ids are renumbered to positions.
func (s *Store) Load() ([]model.Entry, []LoadWarning) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debugf("store: %s does not exist yet, starting empty", s.path)
			return nil, nil
		}
		return nil, []LoadWarning{{Reason: fmt.Sprintf("could not open %s: %v", s.path, err)}}
	}
	defer func() { _ = f.Close() }()

	entries, warnings := decode(f)
	Reindex(entries)
	logging.Debugf("store: loaded %d entries from %s (%d skipped)", len(entries), s.path, len(warnings))
	return entries, warnings
}

// decode reads CSV rows from r. The first row must be a header naming the
// id, service, login and password columns in any order.
func decode(r io.Reader) ([]model.Entry, []LoadWarning) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, []LoadWarning{{Line: 1, Reason: fmt.Sprintf("unreadable header: %v", err)}}
	}

	cols := map[string]int{}
	for i, name := range head {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	idx := make([]int, len(header))
	for i, name := range header {
		c, ok := cols[strings.ToLower(name)]
		if !ok {
			return nil, []LoadWarning{{Line: 1, Reason: fmt.Sprintf("header has no %q column", name)}}
		}
		idx[i] = c
	}

	var (
		entries  []model.Entry
		warnings []LoadWarning
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				warnings = append(warnings, LoadWarning{Line: perr.StartLine, Reason: perr.Err.Error()})
				continue
			}
			warnings = append(warnings, LoadWarning{Reason: fmt.Sprintf("read aborted: %v", err)})
			break
		}
		line, _ := cr.FieldPos(0)

		e, reason := parseRow(rec, idx)
		if reason != "" {
			warnings = append(warnings, LoadWarning{Line: line, Reason: reason})
			continue
		}
		entries = append(entries, e)
	}
	return entries, warnings
}

func parseRow(rec []string, idx []int) (model.Entry, string) {
	for _, c := range idx {
		if c >= len(rec) {
			return model.Entry{}, fmt.Sprintf("expected at least %d fields, got %d", c+1, len(rec))
		}
	}
	id, err := strconv.ParseUint(strings.TrimSpace(rec[idx[0]]), 10, 32)
	if err != nil {
		return model.Entry{}, fmt.Sprintf("invalid id %q", rec[idx[0]])
	}
	return model.NewEntry(uint32(id), rec[idx[1]], rec[idx[2]], rec[idx[3]]), ""
}

// Persist writes the whole collection to the temporary file, flushes it to
// disk and renames it over the real file. The rename is the only commit
// point: if anything fails before it, the previous file is left untouched
// (a stray temp file may remain and is truncated by the next Persist).
func (s *Store) Persist(entries []model.Entry) error {
	Reindex(entries)
	for i := range entries {
		normalizeNewlines(&entries[i])
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("could not create data directory %s: %w", s.dir, err)
	}

	f, err := os.OpenFile(s.tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not open temp file: %w", err)
	}
	if err := encode(f, entries); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close temp file: %w", err)
	}

	if err := s.rename(s.tempPath, s.path); err != nil {
		return fmt.Errorf("could not replace %s: %w", s.path, err)
	}
	logging.Debugf("store: persisted %d entries to %s", len(entries), s.path)
	return nil
}

// encode writes the header and one row per entry. Text fields are always
// quoted; the id is written bare.
func encode(w io.Writer, entries []model.Entry) error {
	bw := bufio.NewWriter(w)
	quoted := make([]string, len(header))
	for i, h := range header {
		quoted[i] = quote(h)
	}
	if _, err := bw.WriteString(strings.Join(quoted, ",") + "\n"); err != nil {
		return err
	}
	for _, e := range entries {
		row := strconv.FormatUint(uint64(e.ID), 10) + "," +
			quote(e.Svc) + "," + quote(e.Usr) + "," + quote(e.Secret) + "\n"
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// normalizeNewlines rewrites CRLF pairs to LF. The CSV reader drops the CR of
// a CRLF inside a quoted field, so only LF round-trips through the file.
func normalizeNewlines(e *model.Entry) {
	if !strings.Contains(e.Svc+e.Usr+e.Secret, "\r\n") {
		return
	}
	e.Svc = strings.ReplaceAll(e.Svc, "\r\n", "\n")
	e.Usr = strings.ReplaceAll(e.Usr, "\r\n", "\n")
	e.Secret = strings.ReplaceAll(e.Secret, "\r\n", "\n")
}

// Reindex sets every entry's id to its position.
func Reindex(entries []model.Entry) {
	for i := range entries {
		entries[i].ID = uint32(i)
	}
}

// Add appends e and reindexes the collection.
func Add(entries []model.Entry, e model.Entry) []model.Entry {
	normalizeNewlines(&e)
	entries = append(entries, e)
	Reindex(entries)
	return entries
}

// Update overwrites the text fields of the entry at pos. Its id is unchanged.
func Update(entries []model.Entry, pos int, c model.Credentials) error {
	if pos < 0 || pos >= len(entries) {
		return fmt.Errorf("update %d of %d: %w", pos, len(entries), ErrOutOfRange)
	}
	entries[pos].Overwrite(c)
	normalizeNewlines(&entries[pos])
	return nil
}

// Remove deletes the entry at pos and reindexes the entries after it.
func Remove(entries []model.Entry, pos int) ([]model.Entry, error) {
	if pos < 0 || pos >= len(entries) {
		return entries, fmt.Errorf("remove %d of %d: %w", pos, len(entries), ErrOutOfRange)
	}
	entries = append(entries[:pos], entries[pos+1:]...)
	Reindex(entries)
	return entries, nil
}
