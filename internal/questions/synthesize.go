// Package questions turns extracted keywords and document fields into a
// randomized list of interview questions.
package questions

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"time"
)

// DefaultContext is the label questions use to refer to the job.
const DefaultContext = "job requirements"

// List is an ordered, duplicate-free sequence of questions.
type List []string

// JobTitleQuestion renders the question that is asked in every interview.
func JobTitleQuestion(jobTitle, context string) string {
	return fmt.Sprintf("Can you describe your experience as a %s and how it relates to our %s?", jobTitle, context)
}

// KeywordQuestion renders the question for a single keyword.
func KeywordQuestion(keyword, context string) string {
	return fmt.Sprintf("Can you describe your experience with %s as it relates to our %s?", keyword, context)
}

// CoreValueQuestion renders the question for a single company value.
func CoreValueQuestion(value string) string {
	return fmt.Sprintf("How does our company's focus on %s align with you?", value)
}

// Synthesize builds the job title question, one question per keyword and one
// per core value, removes exact duplicates and shuffles the result with rng.
// A nil rng uses a time-seeded source.
func Synthesize(keywords []string, jobTitle string, coreValues []string, context string, rng *rand.Rand) List {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}

	rendered := make([]string, 0, 1+len(keywords)+len(coreValues))
	rendered = append(rendered, JobTitleQuestion(jobTitle, context))
	for _, keyword := range keywords {
		rendered = append(rendered, KeywordQuestion(keyword, context))
	}
	for _, value := range coreValues {
		rendered = append(rendered, CoreValueQuestion(value))
	}

	list := make(List, 0, len(rendered))
	seen := make(map[string]struct{}, len(rendered))
	for _, question := range rendered {
		if _, ok := seen[question]; ok {
			continue
		}
		seen[question] = struct{}{}
		list = append(list, question)
	}

	rng.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})

	return list
}

// Len returns the number of questions.
func (l List) Len() int {
	return len(l)
}

// DumpToTmpFile writes the list as indented JSON into a new temporary file
// and returns its name.
func (l List) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "questions_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return "", err
	}
	return file.Name(), nil
}
