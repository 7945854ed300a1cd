package cli

import (
	"fmt"
	"io"
)

// formatOptions holds the flags of the format command.
type formatOptions struct {
	Range   RangeFlags
	Display DisplayFlags
}

// formatCommand prints the label the picker's trigger would show.
func formatCommand(w io.Writer, opts formatOptions) error {
	s, err := loadSettings(opts.Display, BoundsFlags{})
	if err != nil {
		return err
	}

	r, err := ParseRange(opts.Range)
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, newRangeOutput(s, r))
	}
	_, err = fmt.Fprintln(w, rangeLabel(s, r))
	return err
}
