package scene

import (
	"fmt"
	"sort"

	"github.com/Shashwat-deb/finmotif/internal/motif"
)

var constructors = map[string]func() motif.Scene{
	"frontier":     func() motif.Scene { return NewFrontier() },
	"growth-blue":  func() motif.Scene { return NewGrowth(Blue()) },
	"growth-green": func() motif.Scene { return NewGrowth(Green()) },
}

// New builds a fresh scene by name.
func New(name string) (motif.Scene, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", motif.ErrUnknownScene, name)
	}
	return fn(), nil
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
