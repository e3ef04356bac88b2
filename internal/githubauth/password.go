package githubauth

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	passwordPromptTemplateConstant       = "Password for %s: "
	noTerminalErrorMessageConstant       = "no terminal available for password prompt"
	passwordReadErrorTemplateConstant    = "unable to read password: %w"
	passwordPromptLineTerminatorConstant = "\n"
)

// ErrNoTerminal indicates a password was requested without an interactive terminal.
var ErrNoTerminal = errors.New(noTerminalErrorMessageConstant)

// PasswordPrompter reads a password for a login.
type PasswordPrompter interface {
	PromptPassword(login string) (string, error)
}

// TerminalPasswordPrompter reads a password from a terminal with echo disabled.
type TerminalPasswordPrompter struct {
	input  *os.File
	output io.Writer
}

// NewTerminalPasswordPrompter prompts on output and reads from input. Nil
// values select standard input and standard error.
func NewTerminalPasswordPrompter(input *os.File, output io.Writer) *TerminalPasswordPrompter {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stderr
	}
	return &TerminalPasswordPrompter{input: input, output: output}
}

// PromptPassword implements PasswordPrompter.
func (prompter *TerminalPasswordPrompter) PromptPassword(login string) (string, error) {
	inputFileDescriptor := int(prompter.input.Fd())
	if !term.IsTerminal(inputFileDescriptor) {
		return "", ErrNoTerminal
	}

	fmt.Fprintf(prompter.output, passwordPromptTemplateConstant, login)
	passwordBytes, readError := term.ReadPassword(inputFileDescriptor)
	fmt.Fprint(prompter.output, passwordPromptLineTerminatorConstant)
	if readError != nil {
		return "", fmt.Errorf(passwordReadErrorTemplateConstant, readError)
	}
	return string(passwordBytes), nil
}
