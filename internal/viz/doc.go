// Package viz previews motif scenes in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view of a single scene with pacing stats
//   - [RunInteractive]: scene picker that launches the live view
//
// Scenes draw onto a braille canvas sized to the terminal, so a window
// resize changes the logical canvas the same way it would on a real
// page. Resizes are debounced; focus loss pauses stepping without
// dropping state.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart the scene
//	S     - Cycle scenes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// The live view records accepted frames as a looping GIF with the G
// key. Recordings are saved to the current directory.
package viz
