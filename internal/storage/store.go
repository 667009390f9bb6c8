// Package storage persists recorded render sessions: one directory per
// session holding metadata.json plus the exported artifacts.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID         string    `json:"id"`
	Scene      string    `json:"scene"`
	Timestamp  time.Time `json:"timestamp"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	PixelRatio float64   `json:"pixel_ratio"`
	Frames     int       `json:"frames"`
	Artifacts  []string  `json:"artifacts"`
}

// Save creates a session directory named <scene>_<unixtime> and writes
// the artifacts plus metadata.json into it. The returned ID names the
// directory.
func (s *Store) Save(meta SessionMetadata, artifacts map[string][]byte) (string, error) {
	id := fmt.Sprintf("%s_%d", meta.Scene, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), artifacts[name], 0644); err != nil {
			return "", err
		}
	}

	meta.ID = id
	meta.Timestamp = time.Now()
	meta.Artifacts = names

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return id, nil
}

// List reads every session's metadata, skipping directories it cannot
// parse.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sessions = append(sessions, meta)
	}

	return sessions, nil
}

func (s *Store) Load(id string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// ArtifactPath returns the on-disk path of a stored artifact.
func (s *Store) ArtifactPath(id, name string) string {
	return filepath.Join(s.baseDir, id, name)
}
