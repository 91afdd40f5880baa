package tui

import (
	"os"

	"golang.org/x/term"
)

// widthHeight is the first guess at the screen size; Bubble Tea sends a
// WindowSizeMsg right after start.
func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 && th > 0 {
		w, h = tw, th
	}
	return w, h
}
