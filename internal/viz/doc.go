// Package viz draws sorting runs in the terminal.
//
// A [Renderer] keeps the last snapshot of the sequence, the indices touched
// by the latest step and the run statistics, and redraws the whole frame
// on every step. Two layouts are available:
//
//   - [ModeList]: a bracketed row with a marker row beneath it
//   - [ModeGraph]: a bottom-up bar chart with markers under touched bars
//
// Renderers write to a [Screen]. [Terminal] clears with ANSI escapes only
// when attached to a TTY; [Capture] records frames in memory.
//
// # Replay
//
// A [Recorder] sink stores every frame of a run in a [Trace], which the
// bubbletea [Player] steps through interactively:
//
//	Space - Pause/Resume
//	←/→   - Step back/forward
//	+/-   - Faster/slower
//	R     - Restart
//	T     - Cycle color themes
//	Q     - Quit
package viz
