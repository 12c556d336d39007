// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/psu-tools/psu/internal/model"
)

// BackupVersion is bumped whenever the backup layout changes.
const BackupVersion = 1

// BackupData is the document stored inside a compressed backup.
type BackupData struct {
	Version   int           `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	Entries   []model.Entry `json:"entries"`
}

// WriteBackup streams entries as zstd-compressed JSON to w.
func WriteBackup(w io.Writer, entries []model.Entry) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	data := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC(),
		Entries:   entries,
	}
	if data.Entries == nil {
		data.Entries = []model.Entry{}
	}

	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zw.Close()
}

// ReadBackup decodes a backup written by WriteBackup. The returned entries
// are reindexed.
func ReadBackup(r io.Reader) (*BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if data.Version > BackupVersion {
		return nil, fmt.Errorf("backup version %d is newer than supported version %d", data.Version, BackupVersion)
	}
	Reindex(data.Entries)
	return &data, nil
}
