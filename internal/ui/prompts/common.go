package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptDescription prompts for an optional description text
func PromptDescription(message string) (string, error) {
	var desc string

	err := huh.NewInput().
		Title(message).
		Value(&desc).
		Run()
	return strings.TrimSpace(desc), err
}

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount).
		Validate(validator).
		Run()
	return amount, err
}

// PromptInput prompts for a free text input
func PromptInput(message string) (string, error) {
	var inputVal string

	err := huh.NewInput().
		Title(message).
		Value(&inputVal).
		Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(inputVal), nil
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}
