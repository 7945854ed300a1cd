package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/ui"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickCommand_NeedsTerminal(t *testing.T) {
	if ui.IsTerminal(os.Stdin) {
		t.Skip("stdin is a terminal")
	}
	isolate(t)
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	err := pickCommand(cmd, pickOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTerm))
	assert.Empty(t, buf.String())
}

func TestPickCommand_BadFlagsFirst(t *testing.T) {
	isolate(t)

	err := pickCommand(&cobra.Command{}, pickOptions{Range: RangeFlags{From: "2024-01-15", To: "2024-01-12"}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRange), "flags are validated before the terminal check")

	err = pickCommand(&cobra.Command{}, pickOptions{Display: DisplayFlags{Mode: "multi"}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}
