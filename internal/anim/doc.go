// Package anim provides the pacing primitives behind scene hosts.
//
// Every timing decision flows through a [Clock], so frame acceptance,
// draw-in progress, and resize debouncing are reproducible in tests and
// offline captures without sleeping:
//
//   - [Throttle]: frame-budget cap (skip the draw, keep scheduling)
//   - [Phase]: fixed-step accumulator for perpetual scenes
//   - [Reveal]: eased draw-in progress for one-shot scenes
//   - [Debouncer]: coalesces resize bursts into one firing
package anim
