// Package scene implements the bundled background animations.
//
// Two scene families exist:
//
//   - [Frontier]: a perpetually animated efficient-frontier chart with
//     hairline grid, inset axes, a drifting curve, a dashed tangent
//     line, and portfolio dots. Capped at 20 accepted frames/second.
//   - [Growth]: a one-shot performance-curve draw-in, revealed left to
//     right by arc length with a cubic ease-out, then held. The blue
//     and green variants share one implementation and differ only in
//     [Params].
//
// All geometry is closed-form in the sample parameter t; every frame is
// reproducible from (size, state, elapsed).
package scene
