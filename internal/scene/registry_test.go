package scene

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Shashwat-deb/finmotif/internal/motif"
)

func TestRegistryNew(t *testing.T) {
	for _, name := range Names() {
		sc, err := New(name)
		if err != nil {
			t.Fatalf("constructor for %q failed: %v", name, err)
		}
		if sc.Name() != name {
			t.Errorf("expected scene name %q, got %q", name, sc.Name())
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := New("lava-lamp")
	if !errors.Is(err, motif.ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestRegistryNames(t *testing.T) {
	want := []string{"frontier", "growth-blue", "growth-green"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("scene names (-want +got):\n%s", diff)
	}
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	a, _ := New("growth-blue")
	b, _ := New("growth-blue")
	if a == b {
		t.Error("constructors must not share scene state")
	}
}
