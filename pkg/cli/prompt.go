package cli

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

// promptLine asks for one field value. The current value is shown in the
// prompt and kept when the input is empty.
func promptLine(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open prompt")
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return "", goerr.Wrap(err, "prompt aborted")
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

// promptForm walks through every editable field of an item form
func promptForm(form catalog.ItemForm) (catalog.ItemForm, error) {
	fields := []struct {
		label string
		value *string
	}{
		{"Name", &form.Name},
		{"Description", &form.Description},
		{"Estimated price (e.g. $123.45)", &form.EstimatedPrice},
		{"Category", &form.Category},
	}

	for _, f := range fields {
		v, err := promptLine(f.label, *f.value)
		if err != nil {
			return form, err
		}
		*f.value = v
	}

	return form, nil
}

// promptYesNo asks for confirmation, defaulting to no
func promptYesNo(label string) (bool, error) {
	rl, err := readline.New(label + " (y/N): ")
	if err != nil {
		return false, goerr.Wrap(err, "failed to open prompt")
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return false, goerr.Wrap(err, "prompt aborted")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
