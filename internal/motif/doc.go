// Package motif provides core primitives for decorative chart animations.
//
// The package defines the fundamental types shared by scenes, frontends,
// and exporters:
//
//   - [Op]: a single draw instruction ([Stroke], [Dot], [Label])
//   - [Frame]: the ordered draw list for one animation frame
//   - [Polyline]: an open point chain with arc-length truncation
//   - [Scene]: a deterministic animation stepped by a host loop
//
// # Frames
//
// Scenes are pure in (state, size, elapsed): stepping a scene yields a
// [Frame] value describing everything the frame draws, in logical pixel
// space. Backends clear to Frame.Background and replay Ops in order.
// A returned Frame is never mutated by its scene.
//
// # Example
//
//	sc, _ := scene.New("growth-blue")
//	f := sc.Step(curve.Size{Width: 800, Height: 400}, 900*time.Millisecond)
//	svg := export.FrameSVG(f)
//
// # Thread Safety
//
// Scene instances are NOT thread-safe. Each host loop owns one scene and
// steps it from a single goroutine.
package motif
