package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/rangepick/internal/daterange"
	"github.com/rileyhilliard/rangepick/internal/errors"
	"github.com/rileyhilliard/rangepick/internal/ui"
)

// presetOptions holds the flags of the preset command.
type presetOptions struct {
	List    bool
	Display DisplayFlags
}

// PresetListing is one row of 'preset --list --json'.
type PresetListing struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	RangeOutput
}

// presetCommand prints the range a preset selects today.
func presetCommand(w io.Writer, args []string, opts presetOptions) error {
	s, err := loadSettings(opts.Display, BoundsFlags{})
	if err != nil {
		return err
	}
	today := s.Today()

	if opts.List {
		return listPresets(w, s, today)
	}

	var p daterange.Preset
	if len(args) > 0 {
		if p, err = daterange.ParsePreset(args[0]); err != nil {
			return err
		}
	} else {
		if p, err = choosePreset(s); err != nil {
			return err
		}
	}

	return writeRange(w, s, p.Range(today))
}

// choosePreset asks for a preset with a select prompt.
func choosePreset(s *settings) (daterange.Preset, error) {
	if !ui.IsTerminal(os.Stdin) {
		return 0, errors.New(errors.ErrInput,
			"No preset given",
			"Name one: rangepick preset last7 (or run 'rangepick preset --list').")
	}

	options := make([]huh.Option[daterange.Preset], len(daterange.Presets))
	for i, p := range daterange.Presets {
		options[i] = huh.NewOption(s.Locale.PresetLabel(p), p)
	}

	var chosen daterange.Preset
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[daterange.Preset]().
				Title("Preset").
				Options(options...).
				Value(&chosen),
		),
	).WithOutput(os.Stderr)

	if err := form.Run(); err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Name the preset instead: rangepick preset last7")
	}
	return chosen, nil
}

func listPresets(w io.Writer, s *settings, today daterange.Date) error {
	if machineMode {
		listing := make([]PresetListing, len(daterange.Presets))
		for i, p := range daterange.Presets {
			listing[i] = PresetListing{
				Name:        p.String(),
				Title:       s.Locale.PresetLabel(p),
				RangeOutput: newRangeOutput(s, p.Range(today)),
			}
		}
		return WriteJSONSuccess(w, listing)
	}

	rows := make([][]string, len(daterange.Presets))
	for i, p := range daterange.Presets {
		r := p.Range(today)
		rows[i] = []string{p.String(), s.Locale.PresetLabel(p), fmt.Sprintf("%s %s", r.From, r.To), fmt.Sprint(r.Days())}
	}
	_, err := fmt.Fprintln(w, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "Name", Width: 8},
		{Title: "Label", Width: 18},
		{Title: "Range", Width: 22},
		{Title: "Days", Width: 5},
	}, rows))
	return err
}
