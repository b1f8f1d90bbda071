package voice

import (
	"context"
	"fmt"
	"io"
	"os"
)

// WriterSpeaker "speaks" by printing each utterance on its own line. It
// stands in for a text-to-speech engine.
type WriterSpeaker struct {
	out io.Writer
}

func NewWriterSpeaker(out io.Writer) *WriterSpeaker {
	if out == nil {
		out = os.Stdout
	}
	return &WriterSpeaker{out: out}
}

func (s *WriterSpeaker) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintf(s.out, "[agent] %s\n", text)
	return err
}
