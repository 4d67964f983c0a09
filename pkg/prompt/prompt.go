// Package prompt provides the user confirmation port for cleanup runs.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// Confirmer interface provides user confirmation functionality.
type Confirmer interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Confirmer reading from stdin.
func NewPrompt() Confirmer {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// autoConfirmer answers every confirmation with a fixed response,
// used for non-interactive runs.
type autoConfirmer struct {
	answer bool
}

// NewAutoConfirmer creates a Confirmer that always returns the given answer.
func NewAutoConfirmer(answer bool) Confirmer {
	return &autoConfirmer{answer: answer}
}

// PromptForConfirmation returns the fixed answer without prompting.
func (a *autoConfirmer) PromptForConfirmation(_ string, _ bool) (bool, error) {
	return a.answer, nil
}
