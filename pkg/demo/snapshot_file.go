package demo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const defaultPollInterval = time.Second

// FileSnapshotStore persists the snapshot as a JSON file, the server-side
// stand-in for the browser's localStorage key. Watch polls the file's
// modification time so that separate processes sharing the path converge.
type FileSnapshotStore struct {
	path         string
	pollInterval time.Duration
}

func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path, pollInterval: defaultPollInterval}
}

func (s *FileSnapshotStore) Load(_ context.Context) (*Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *FileSnapshotStore) Save(_ context.Context, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return err
	}

	// Write-then-rename so a concurrent reader never sees a partial file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileSnapshotStore) Watch(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	go func() {
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		var lastMod time.Time
		if info, err := os.Stat(s.path); err == nil {
			lastMod = info.ModTime()
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				info, err := os.Stat(s.path)
				if err != nil {
					continue
				}
				if info.ModTime().After(lastMod) {
					lastMod = info.ModTime()
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			}
		}
	}()

	return ch
}
