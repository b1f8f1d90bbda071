package interview

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

const responseLabel = "Candidate Response"

// TerminalChannel prints questions and reads typed answers.
type TerminalChannel struct {
	out    io.Writer
	prompt func(label string) (string, error)
}

// NewTerminalChannel returns a channel that writes to out and reads answers
// with an interactive prompt on the controlling terminal.
func NewTerminalChannel(out io.Writer) *TerminalChannel {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalChannel{
		out: out,
		prompt: func(label string) (string, error) {
			p := promptui.Prompt{Label: label}
			return p.Run()
		},
	}
}

func (t *TerminalChannel) Deliver(_ context.Context, text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// Obtain blocks until the candidate submits an answer. Empty answers are
// accepted; an interrupted prompt is returned as an error.
func (t *TerminalChannel) Obtain(_ context.Context, _ string) (string, error) {
	return t.prompt(responseLabel)
}
