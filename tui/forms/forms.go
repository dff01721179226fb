// Package forms provides huh-based prompts for the extraction session.
package forms

import (
	"github.com/charmbracelet/huh"
)

// Prompter asks the operator questions through huh forms. It satisfies
// session.Prompter.
type Prompter struct{}

// Input shows a single text input and returns the value as entered.
func (Prompter) Input(title, description string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(&value),
		),
	).WithTheme(Theme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm shows a yes/no question and returns the choice.
func (Prompter) Confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(Theme())
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
