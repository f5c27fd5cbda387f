// Package viz provides the terminal frontend for the maze viewer.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [Model]: Bubble Tea model wiring the render pipeline, the
//     animation controller and a Braille canvas
//   - Theme cycling across the built-in color schemes
//   - GIF recording of the animation
//
// # Key Bindings
//
//	S     - Animate the path (reveal, or erase when fully shown)
//	T     - Cycle color themes
//	R     - Reset the animation
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
package viz
