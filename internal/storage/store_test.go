package storage

import (
	"os"
	"strings"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := s.Save(SessionMetadata{
		Scene:      "growth-blue",
		Width:      800,
		Height:     400,
		PixelRatio: 2,
		Frames:     36,
	}, map[string][]byte{
		"capture.gif": []byte("GIF89a"),
		"frame.svg":   []byte("<svg/>"),
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(id, "growth-blue_") {
		t.Errorf("unexpected session id %q", id)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scene != "growth-blue" || meta.Frames != 36 {
		t.Errorf("metadata round trip lost fields: %+v", meta)
	}
	if len(meta.Artifacts) != 2 || meta.Artifacts[0] != "capture.gif" {
		t.Errorf("expected sorted artifact names, got %v", meta.Artifacts)
	}

	data, err := os.ReadFile(s.ArtifactPath(id, "frame.svg"))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("artifact content mangled: %q", data)
	}
}

func TestListEmpty(t *testing.T) {
	s := New(t.TempDir() + "/nonexistent")

	sessions, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestListSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if _, err := s.Save(SessionMetadata{Scene: "frontier"}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.MkdirAll(dir+"/garbage", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir+"/garbage/metadata.json", []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	sessions, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 parseable session, got %d", len(sessions))
	}
}
