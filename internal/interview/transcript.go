package interview

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// EndOfInterview stands in for the question of a response recorded after the
// last question.
const EndOfInterview = "End of Interview"

// Entry is one question/answer block of a transcript.
type Entry struct {
	Question string
	Answer   string
}

// SaveResponses overwrites path with one "Q:/A:" block per recorded response.
func (a *Agent) SaveResponses(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating transcript: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i, response := range a.responses {
		question := EndOfInterview
		if i < len(a.questions) {
			question = a.questions[i]
		}
		if _, err := fmt.Fprintf(w, "Q: %s\nA: %s\n\n", question, response); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return file.Close()
}

// ReadTranscript parses a file written by SaveResponses.
func ReadTranscript(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	content := string(data)
	if content == "" {
		return []Entry{}, nil
	}
	if !strings.HasPrefix(content, "Q: ") {
		return nil, fmt.Errorf("transcript %q does not start with a question", path)
	}

	content = strings.TrimSuffix(strings.TrimPrefix(content, "Q: "), "\n\n")

	blocks := strings.Split(content, "\n\nQ: ")
	entries := make([]Entry, 0, len(blocks))
	for i, block := range blocks {
		question, answer, ok := strings.Cut(block, "\nA: ")
		if !ok {
			return nil, fmt.Errorf("transcript %q: block %d has no answer", path, i+1)
		}
		entries = append(entries, Entry{Question: question, Answer: answer})
	}
	return entries, nil
}
