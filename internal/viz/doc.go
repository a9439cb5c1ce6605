// Package viz renders particle simulations in the terminal. A braille
// canvas gives 2x4 sub-pixel resolution per character cell, and a
// bubbletea model drives the live view with pause, replay, parameter
// tuning, and GIF recording.
package viz
