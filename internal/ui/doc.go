// Package ui provides the shared terminal styling for rangepick.
//
// It holds the color palette, status symbols, small line printers for
// command output, color-profile switching for --no-color, and terminal
// detection. The calendar widget builds its own cell styles on top of the
// palette defined here.
package ui
