// Package storage persists the address book as a versioned JSON snapshot.
// The format is a flat list of records rather than a dump of internal memory
// layout, so the on-disk bytes are decoupled from the in-memory types.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/config"
)

type recordSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"` // DD.MM.YYYY, same layout the prompt accepts
}

type snapshot struct {
	Version int              `json:"version"`
	Records []recordSnapshot `json:"records"`
}

// Load reads the snapshot at path and rebuilds the address book from it.
// A missing file is not an error: it yields an empty book. Records are rebuilt
// through the public constructors, so corrupted field values are rejected.
func Load(path string) (*book.AddressBook, error) {
	ab := book.NewAddressBook()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info(config.MsgSnapshotNone,
				config.LogKeyComponent, config.CompStorage,
				config.LogKeyFile, path,
			)
			return ab, nil
		}
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotRead, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}
	if snap.Version != config.SnapshotVersion {
		return nil, fmt.Errorf("%s: %d", config.ErrSnapshotVersion, snap.Version)
	}

	for _, rs := range snap.Records {
		r := book.NewRecord(rs.Name)
		for _, p := range rs.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("%s %q: %w", config.ErrSnapshotRecord, rs.Name, err)
			}
		}
		if rs.Birthday != "" {
			if err := r.AddBirthday(rs.Birthday); err != nil {
				return nil, fmt.Errorf("%s %q: %w", config.ErrSnapshotRecord, rs.Name, err)
			}
		}
		ab.AddRecord(r)
	}

	slog.Info(config.MsgSnapshotLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyRecords, ab.Len(),
	)
	return ab, nil
}

// Save writes the whole address book to path, replacing any previous snapshot.
func Save(path string, ab *book.AddressBook) error {
	snap := snapshot{
		Version: config.SnapshotVersion,
		Records: make([]recordSnapshot, 0, ab.Len()),
	}

	for _, r := range ab.Records() {
		rs := recordSnapshot{Name: r.Name().String()}
		for _, p := range r.Phones() {
			rs.Phones = append(rs.Phones, p.String())
		}
		if b := r.Birthday(); b != nil {
			rs.Birthday = b.Date().Format(config.DateFormatInput)
		}
		snap.Records = append(snap.Records, rs)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}

	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Info(config.MsgSnapshotSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyRecords, ab.Len(),
	)
	return nil
}
