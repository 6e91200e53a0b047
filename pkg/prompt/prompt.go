package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is one selectable option of PromptSelect.
type Choice struct {
	Value       string
	Description string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptForValue prompts the user for a free-form value, returning defaultValue on empty input.
	PromptForValue(message, defaultValue string) (string, error)

	// PromptSelect lets the user pick one of choices.
	PromptSelect(title string, choices []Choice) (Choice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptForValue prompts the user for a free-form value.
func (p *realPrompt) PromptForValue(message, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "%s [default: %s]: ", message, defaultValue)

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// PromptSelect lets the user pick one of choices with an interactive selector.
func (p *realPrompt) PromptSelect(title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}
	return runSelect(title, choices)
}

// readLine reads one line and trims it. A final line without newline is accepted.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
